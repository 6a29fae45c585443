package Trees

import (
	"sync"

	Go_Index "github.com/g-m-twostay/go-index"
)

// Locked guards an AVLTree with a single RWMutex. Mutations take the write lock and
// queries the read lock. Nodes never leave the lock: Find returns a copy of the value.
type Locked[T any] struct {
	l sync.RWMutex
	t *AVLTree[T]
}

// NewLocked empty tree ordered by cmp.
func NewLocked[T any](cmp Go_Index.Cmp[T]) *Locked[T] {
	return &Locked[T]{t: New(cmp)}
}

func (u *Locked[T]) Insert(v T) bool {
	u.l.Lock()
	defer u.l.Unlock()
	return u.t.Insert(v)
}

func (u *Locked[T]) Remove(v T) bool {
	u.l.Lock()
	defer u.l.Unlock()
	return u.t.Remove(v)
}

func (u *Locked[T]) Clear() {
	u.l.Lock()
	defer u.l.Unlock()
	u.t.Clear()
}

// Find the stored value equal to v.
func (u *Locked[T]) Find(v T) (T, bool) {
	u.l.RLock()
	defer u.l.RUnlock()
	if n := u.t.Find(v); n != nil {
		return n.v, true
	}
	return *new(T), false
}

func (u *Locked[T]) Has(v T) bool {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Has(v)
}

func (u *Locked[T]) Size() uint {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Size()
}

func (u *Locked[T]) Height() uint {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Height()
}

// Values in ascending order at the time of the call.
func (u *Locked[T]) Values() []T {
	u.l.RLock()
	defer u.l.RUnlock()
	return u.t.Values()
}

// Do runs f with exclusive access to the underlying tree. f mustn't keep t or any of its
// nodes after returning.
func (u *Locked[T]) Do(f func(t *AVLTree[T])) {
	u.l.Lock()
	defer u.l.Unlock()
	f(u.t)
}
