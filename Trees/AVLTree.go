package Trees

import (
	Go_Index "github.com/g-m-twostay/go-index"
)

// AVLTree is a binary search tree with no repeated values. It maintains
// balance through rotations by checking the heights of subtrees: after every
// Insert or Remove, the heights of the two subtrees of any node differ by at most 1,
// so the height D of the tree is less than 1.44*log2(n+2).
// Values are ordered by the comparator given to New; values comparing 0 are the same key.
// The tree is not safe for concurrent use, see Locked.
type AVLTree[T any] struct {
	root *Node[T]
	sz   uint
	cmp  Go_Index.Cmp[T]
}

// New empty AVLTree ordered by cmp.
func New[T any](cmp Go_Index.Cmp[T]) *AVLTree[T] {
	return &AVLTree[T]{cmp: cmp}
}

// NewWith returns an AVLTree ordered by cmp holding only v.
func NewWith[T any](cmp Go_Index.Cmp[T], v T) *AVLTree[T] {
	return &AVLTree[T]{root: &Node[T]{v: v, h: 1}, sz: 1, cmp: cmp}
}

// Build an AVLTree from the given sorted slice recursively. This is faster than
// repeatedly calling Insert. sli must be strictly ascending under cmp, otherwise
// an *InvalidSliceError is returned.
// Time: O(n).
func Build[T any](cmp Go_Index.Cmp[T], sli []T) (*AVLTree[T], error) {
	for i := 1; i < len(sli); i++ {
		if cmp(sli[i-1], sli[i]) >= 0 {
			return nil, &InvalidSliceError[T]{i, sli[i-1], sli[i]}
		}
	}
	var build func([]T, *Node[T]) *Node[T]
	build = func(s []T, p *Node[T]) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := &Node[T]{v: s[mid], p: p}
		n.l, n.r = build(s[:mid], n), build(s[mid+1:], n)
		n.fix()
		return n
	}
	return &AVLTree[T]{root: build(sli, nil), sz: uint(len(sli)), cmp: cmp}, nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Size() uint {
	return u.sz
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *AVLTree[T]) Height() uint {
	return height(u.root)
}

// Root node, nil if u is empty.
func (u *AVLTree[T]) Root() *Node[T] {
	return u.root
}

// Find the node holding a value equal to v. Returns nil if there's none.
// The node is only valid until the next Remove or Clear: removing a value held by a
// node with 2 children moves its successor's value into that node and detaches the
// successor's node. Its value shouldn't be modified in a way that changes its order.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Find(v T) *Node[T] {
	return u.findFrom(u.root, v)
}

func (u *AVLTree[T]) findFrom(cur *Node[T], v T) *Node[T] {
	for cur != nil {
		if c := u.cmp(v, cur.v); c > 0 {
			cur = cur.r
		} else if c < 0 {
			cur = cur.l
		} else {
			return cur
		}
	}
	return nil
}

// rebalance walks from n up to the root, fixing heights and rotating wherever the
// balance factor reached ±2.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) rebalance(n *Node[T]) {
	for n != nil {
		p := n.p
		n.fix()
		if bf := n.balance(); bf > 1 {
			if n.l.balance() < 0 {
				u.rotateLeft(n.l)
			}
			u.rotateRight(n)
		} else if bf < -1 {
			if n.r.balance() > 0 {
				u.rotateRight(n.r)
			}
			u.rotateLeft(n)
		}
		n = p
	}
}

// Insert [Tree.Insert]
// Inserting a value equal to a present one leaves the present value in place.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Insert(v T) bool {
	if u.root == nil {
		u.root, u.sz = &Node[T]{v: v, h: 1}, 1
		return true
	}
	for cur := u.root; ; {
		next := &cur.r
		if c := u.cmp(v, cur.v); c < 0 {
			next = &cur.l
		} else if c == 0 {
			return false
		}
		if *next == nil {
			*next = &Node[T]{v: v, h: 1, p: cur}
			u.sz++
			u.rebalance(cur)
			return true
		}
		cur = *next
	}
}

// Remove [Tree.Remove]. Recursive for nodes with 2 children.
// Removing an absent value is a no-op that returns false.
// Time: O(D)
func (u *AVLTree[T]) Remove(v T) bool {
	return u.removeFrom(u.root, v)
}

// removeFrom the subtree rooting at cur the value v.
func (u *AVLTree[T]) removeFrom(cur *Node[T], v T) bool {
	n := u.findFrom(cur, v)
	if n == nil {
		return false
	}
	if n.l != nil && n.r != nil {
		s := n.r
		for s.l != nil {
			s = s.l
		}
		n.v = s.v
		return u.removeFrom(n.r, s.v)
	}
	child, p := n.l, n.p
	if child == nil {
		child = n.r
	}
	u.replace(n, child)
	n.p, n.l, n.r, n.h = nil, nil, nil, 0
	u.sz--
	if p == nil {
		// child is the new root; with a single child n was of height 2 at most.
		p = child
	}
	u.rebalance(p)
	return true
}

// Clear the tree, detaching every node exactly once in post-order so nodes
// obtained from Find no longer reach the rest of the tree.
// Time: O(n)
func (u *AVLTree[T]) Clear() {
	var detach func(*Node[T])
	detach = func(n *Node[T]) {
		if n != nil {
			detach(n.l)
			detach(n.r)
			n.p, n.l, n.r, n.h = nil, nil, nil, 0
		}
	}
	detach(u.root)
	u.root, u.sz = nil, 0
}
