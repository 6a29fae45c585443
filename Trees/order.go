package Trees

import (
	"github.com/g-m-twostay/go-index/Queues"
)

// Has [Tree.Has]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Has(v T) bool {
	return u.Find(v) != nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Minimum() (v T, ok bool) {
	if cur := u.root; cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
		return cur.v, true
	}
	return
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Maximum() (v T, ok bool) {
	if cur := u.root; cur != nil {
		for cur.r != nil {
			cur = cur.r
		}
		return cur.v, true
	}
	return
}

// Predecessor [Tree.Predecessor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Predecessor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) <= 0 {
			cur = cur.l
		} else {
			p, cur = cur, cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// Successor [Tree.Successor]
// v doesn't need to be in the tree.
// Time: O(D); Space: O(1)
func (u *AVLTree[T]) Successor(v T) (T, bool) {
	var p *Node[T]
	for cur := u.root; cur != nil; {
		if u.cmp(v, cur.v) < 0 {
			p, cur = cur, cur.l
		} else {
			cur = cur.r
		}
	}
	if p == nil {
		return *new(T), false
	}
	return p.v, true
}

// InOrder [Tree.InOrder]
// Follows parent links, so the tree isn't touched during the iteration.
// Time: f(): amortized O(1) at each call to the returned function. Space: O(1)
func (u *AVLTree[T]) InOrder() func() (T, bool) {
	cur := u.root
	if cur != nil {
		for cur.l != nil {
			cur = cur.l
		}
	}
	return func() (v T, has bool) {
		if cur != nil {
			v, has = cur.v, true
			cur = cur.Next()
		}
		return
	}
}

// LevelOrder calls f on every value breadth first, root first and left to right within
// a level, until f returns false. depth of the root is 1.
// Time: O(n); Space: O(n)
func (u *AVLTree[T]) LevelOrder(f func(depth uint, v T) bool) {
	type item struct {
		n *Node[T]
		d uint
	}
	if u.root == nil {
		return
	}
	q := Queues.MakeArrayQueue[item](u.Height() + 1)
	for q.Push(item{u.root, 1}); !q.Empty(); {
		it, _ := q.Pop()
		if !f(it.d, it.n.v) {
			return
		}
		if it.n.l != nil {
			q.Push(item{it.n.l, it.d + 1})
		}
		if it.n.r != nil {
			q.Push(item{it.n.r, it.d + 1})
		}
	}
}

// Values of u in ascending order.
// Time: O(n)
func (u *AVLTree[T]) Values() []T {
	vs := make([]T, 0, u.sz)
	for n := u.InOrder(); ; {
		v, ok := n()
		if !ok {
			return vs
		}
		vs = append(vs, v)
	}
}

// Corrupt [Tree.Corrupt]
// Checks parent links, cached heights, the balance of every node, strict ordering
// of in-order values and the node count. Recursive.
// Time: O(n)
func (u *AVLTree[T]) Corrupt() bool {
	if u.root != nil && u.root.p != nil {
		return true
	}
	var cnt uint
	var check func(*Node[T]) (uint, bool)
	check = func(c *Node[T]) (uint, bool) {
		if c == nil {
			return 0, true
		}
		cnt++
		if (c.l != nil && c.l.p != c) || (c.r != nil && c.r.p != c) {
			return 0, false
		}
		lh, lok := check(c.l)
		rh, rok := check(c.r)
		if !lok || !rok || c.h != max(lh, rh)+1 || c.balance() > 1 || c.balance() < -1 {
			return 0, false
		}
		return c.h, true
	}
	if _, ok := check(u.root); !ok || cnt != u.sz {
		return true
	}
	n := u.InOrder()
	prev, _ := n()
	for cur, more := n(); more; cur, more = n() {
		if u.cmp(prev, cur) >= 0 {
			return true
		}
		prev = cur
	}
	return false
}
