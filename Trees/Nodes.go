package Trees

// Node in an AVLTree. A Node is owned by its parent, or by the tree when it's the root;
// p is a back-reference only used to walk upwards.
// The zero value is meaningless.
type Node[T any] struct {
	v       T
	h       uint // 1 for a leaf, 0 once the node left its tree.
	p, l, r *Node[T]
}

// Value held by n.
func (n *Node[T]) Value() T {
	return n.v
}

// Height of the subtree rooting at n.
func (n *Node[T]) Height() uint {
	return height(n)
}

func (n *Node[T]) Parent() *Node[T] {
	return n.p
}

func (n *Node[T]) Left() *Node[T] {
	return n.l
}

func (n *Node[T]) Right() *Node[T] {
	return n.r
}

// Next node in in-order, nil if n holds the maximum.
// Time: O(D); Space: O(1)
func (n *Node[T]) Next() *Node[T] {
	if n.r != nil {
		n = n.r
		for n.l != nil {
			n = n.l
		}
		return n
	}
	for n.p != nil && n.p.r == n {
		n = n.p
	}
	return n.p
}

// Prev node in in-order, nil if n holds the minimum.
// Time: O(D); Space: O(1)
func (n *Node[T]) Prev() *Node[T] {
	if n.l != nil {
		n = n.l
		for n.r != nil {
			n = n.r
		}
		return n
	}
	for n.p != nil && n.p.l == n {
		n = n.p
	}
	return n.p
}

// height of n where an absent node has height 0.
func height[T any](n *Node[T]) uint {
	if n == nil {
		return 0
	}
	return n.h
}

// fix the height of n from its children.
// Time: O(1); Space: O(1)
func (n *Node[T]) fix() {
	n.h = max(height(n.l), height(n.r)) + 1
}

// balance factor of n, height(left)-height(right).
func (n *Node[T]) balance() int {
	return int(height(n.l)) - int(height(n.r))
}

// replace links nw into the position of old: old's parent, or the root of u.
// old keeps its own links.
func (u *AVLTree[T]) replace(old, nw *Node[T]) {
	if p := old.p; p == nil {
		u.root = nw
	} else if p.l == old {
		p.l = nw
	} else {
		p.r = nw
	}
	if nw != nil {
		nw.p = old.p
	}
}

// rotateLeft at a, lifting its right child b. Returns b.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) rotateLeft(a *Node[T]) *Node[T] {
	b := a.r
	u.replace(a, b)
	a.r = b.l
	if b.l != nil {
		b.l.p = a
	}
	b.l, a.p = a, b
	a.fix()
	b.fix()
	return b
}

// rotateRight at b, lifting its left child a. Returns a.
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) rotateRight(b *Node[T]) *Node[T] {
	a := b.l
	u.replace(b, a)
	b.l = a.r
	if a.r != nil {
		a.r.p = b
	}
	a.r, b.p = b, a
	b.fix()
	a.fix()
	return a
}
