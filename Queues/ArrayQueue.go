package Queues

// circArrQ is a circular buffer; content[head] is the oldest item and content[tail] the
// next free slot.
type circArrQ[T any] struct {
	sz, head, tail uint
	content        []T
}

// MakeArrayQueue with room for initCap items before growing.
func MakeArrayQueue[T any](initCap uint) ArrayQueue[T] {
	return &circArrQ[T]{content: make([]T, max(initCap, 1))}
}

func (u *circArrQ[T]) Empty() bool {
	return u.sz == 0
}

// resize to newLen>=sz, moving the items to the front.
// Time: O(sz)
func (u *circArrQ[T]) resize(newLen uint) {
	nc := make([]T, newLen)
	if u.head < u.tail || u.sz == 0 {
		copy(nc, u.content[u.head:u.tail])
	} else {
		n := copy(nc, u.content[u.head:])
		copy(nc[n:], u.content[:u.tail])
	}
	u.content = nc
	u.head, u.tail = 0, u.sz%newLen
}

// Shrink the buffer to fit the items.
func (u *circArrQ[T]) Shrink() {
	u.resize(max(u.sz, 1))
}

func (u *circArrQ[T]) Clear() {
	clear(u.content)
	u.tail, u.head, u.sz = 0, 0, 0
}

func (u *circArrQ[T]) Size() uint {
	return u.sz
}

// Push item to the back, growing the buffer by half when it's full.
// Time: amortized O(1)
func (u *circArrQ[T]) Push(item T) {
	if l := uint(len(u.content)); u.sz == l {
		u.resize(l + l>>1 + 1)
	}
	u.content[u.tail] = item
	u.tail = (u.tail + 1) % uint(len(u.content))
	u.sz++
}

// Pop the front item, or fail with *EmptyQueueError.
// Time: O(1)
func (u *circArrQ[T]) Pop() (item T, e error) {
	if u.Empty() {
		return item, &EmptyQueueError{}
	}
	item = u.content[u.head]
	u.content[u.head] = *new(T)
	u.head = (u.head + 1) % uint(len(u.content))
	u.sz--
	return item, nil
}

func (u *circArrQ[T]) Peek() (item T, ok bool) {
	if u.Empty() {
		return
	}
	return u.content[u.head], true
}
