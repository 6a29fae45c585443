package OrderedMap

import (
	Go_Index "github.com/g-m-twostay/go-index"
	"github.com/g-m-twostay/go-index/Maps"
	"github.com/g-m-twostay/go-index/Trees"
)

type entry[K, V any] struct {
	k K
	v V
}

// Map keeps its pairs ordered by key in an AVLTree, so Insert, Remove and
// lookups are O(log n). Entries are stored by pointer, a pointer from GetOrInsert stays
// valid until its key is removed.
// Lookups of absent keys through Get return the default value given to New.
type Map[K, V any] struct {
	t   *Trees.AVLTree[*entry[K, V]]
	cmp Go_Index.Cmp[K]
	def V
}

func byKey[K, V any](cmp Go_Index.Cmp[K]) Go_Index.Cmp[*entry[K, V]] {
	return func(a, b *entry[K, V]) int {
		return cmp(a.k, b.k)
	}
}

// New empty Map ordered by cmp, with def as the default value.
func New[K, V any](cmp Go_Index.Cmp[K], def V) *Map[K, V] {
	return &Map[K, V]{t: Trees.New(byKey[K, V](cmp)), cmp: cmp, def: def}
}

func (u *Map[K, V]) find(k K) *entry[K, V] {
	if n := u.t.Find(&entry[K, V]{k: k}); n != nil {
		return n.Value()
	}
	return nil
}

// Insert [Maps.Map.Insert]
// Time: O(log n)
func (u *Map[K, V]) Insert(k K, v V) {
	if e := u.find(k); e != nil {
		e.v = v
	} else {
		u.t.Insert(&entry[K, V]{k, v})
	}
}

// Remove [Maps.Map.Remove]
// Time: O(log n)
func (u *Map[K, V]) Remove(k K) error {
	if !u.t.Remove(&entry[K, V]{k: k}) {
		return &Maps.ElementNotFoundError[K]{Key: k}
	}
	return nil
}

// Find [Maps.Map.Find]
// Time: O(log n)
func (u *Map[K, V]) Find(k K) (V, error) {
	if e := u.find(k); e != nil {
		return e.v, nil
	}
	return *new(V), &Maps.ElementNotFoundError[K]{Key: k}
}

// Get the value of k, or the default value if k is absent. u isn't modified.
func (u *Map[K, V]) Get(k K) V {
	if e := u.find(k); e != nil {
		return e.v
	}
	return u.def
}

// GetOrInsert returns a pointer to the value of k, inserting k with the default value
// first if it's absent.
func (u *Map[K, V]) GetOrInsert(k K) *V {
	e := u.find(k)
	if e == nil {
		e = &entry[K, V]{k, u.def}
		u.t.Insert(e)
	}
	return &e.v
}

func (u *Map[K, V]) ContainsKey(k K) bool {
	return u.find(k) != nil
}

func (u *Map[K, V]) Size() uint {
	return u.t.Size()
}

func (u *Map[K, V]) Clear() {
	u.t.Clear()
}

// Range calls f on every pair in ascending key order until f returns false.
// u mustn't be modified by f.
func (u *Map[K, V]) Range(f func(k K, v V) bool) {
	for next := u.t.InOrder(); ; {
		e, ok := next()
		if !ok || !f(e.k, e.v) {
			return
		}
	}
}

// Keys in ascending order.
func (u *Map[K, V]) Keys() []K {
	ks := make([]K, 0, u.Size())
	u.Range(func(k K, _ V) bool {
		ks = append(ks, k)
		return true
	})
	return ks
}

// Clone u. Values are copied shallowly.
// Time: O(n)
func (u *Map[K, V]) Clone() *Map[K, V] {
	es := u.t.Values()
	for i, e := range es {
		es[i] = &entry[K, V]{e.k, e.v}
	}
	t, err := Trees.Build(byKey[K, V](u.cmp), es)
	if err != nil {
		panic(err) // in-order values of a tree are strictly ascending
	}
	return &Map[K, V]{t: t, cmp: u.cmp, def: u.def}
}
