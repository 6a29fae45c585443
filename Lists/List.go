package Lists

type node[T any] struct {
	v  T
	nx *node[T]
}

// List is an unordered singly linked list. The zero value is an empty list.
type List[T any] struct {
	head, tail *node[T]
	sz         uint
}

func New[T any]() *List[T] {
	return new(List[T])
}

// Append v at the back.
// Time: O(1)
func (u *List[T]) Append(v T) {
	n := &node[T]{v: v}
	if u.tail == nil {
		u.head = n
	} else {
		u.tail.nx = n
	}
	u.tail = n
	u.sz++
}

// Prepend v at the front.
// Time: O(1)
func (u *List[T]) Prepend(v T) {
	u.head = &node[T]{v, u.head}
	if u.tail == nil {
		u.tail = u.head
	}
	u.sz++
}

// Find the first value satisfying pred.
// Time: O(n)
func (u *List[T]) Find(pred func(T) bool) (T, bool) {
	for cur := u.head; cur != nil; cur = cur.nx {
		if pred(cur.v) {
			return cur.v, true
		}
	}
	return *new(T), false
}

// Remove the first value satisfying pred and return it.
// Time: O(n)
func (u *List[T]) Remove(pred func(T) bool) (T, bool) {
	for prev, cur := (*node[T])(nil), u.head; cur != nil; prev, cur = cur, cur.nx {
		if pred(cur.v) {
			if prev == nil {
				u.head = cur.nx
			} else {
				prev.nx = cur.nx
			}
			if u.tail == cur {
				u.tail = prev
			}
			u.sz--
			return cur.v, true
		}
	}
	return *new(T), false
}

// Range calls f on every value front to back until f returns false.
func (u *List[T]) Range(f func(T) bool) {
	for cur := u.head; cur != nil && f(cur.v); cur = cur.nx {
	}
}

func (u *List[T]) Len() uint {
	return u.sz
}

// Clear the list.
func (u *List[T]) Clear() {
	u.head, u.tail, u.sz = nil, nil, 0
}
