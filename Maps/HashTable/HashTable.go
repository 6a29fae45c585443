package HashTable

import (
	"github.com/g-m-twostay/go-index/Lists"
)

// DefaultBuckets is used when New is given 0 buckets.
const DefaultBuckets = 24593

// HashTable stores values indexed by a key derived from each value, with chaining over
// a fixed number of Lists. It never resizes, so choose the number of buckets close to
// the expected size.
type HashTable[K comparable, V any] struct {
	bkt  []Lists.List[V]
	key  func(V) K
	hash func(K) uint
	sz   uint
}

// New HashTable with the given number of buckets. key gives the key of a value and hash
// hashes keys, for example Go_Index.Hasher.HashInt.
func New[K comparable, V any](buckets uint, key func(V) K, hash func(K) uint) *HashTable[K, V] {
	if buckets == 0 {
		buckets = DefaultBuckets
	}
	return &HashTable[K, V]{bkt: make([]Lists.List[V], buckets), key: key, hash: hash}
}

func (u *HashTable[K, V]) bucket(k K) *Lists.List[V] {
	return &u.bkt[u.hash(k)%uint(len(u.bkt))]
}

func (u *HashTable[K, V]) is(k K) func(V) bool {
	return func(v V) bool {
		return u.key(v) == k
	}
}

// Insert v. Returns false and leaves u unchanged if a value with the same key is present.
// Time: O(bucket)
func (u *HashTable[K, V]) Insert(v V) bool {
	k := u.key(v)
	b := u.bucket(k)
	if _, ok := b.Find(u.is(k)); ok {
		return false
	}
	b.Append(v)
	u.sz++
	return true
}

// Search the value with key k.
// Time: O(bucket)
func (u *HashTable[K, V]) Search(k K) (V, bool) {
	return u.bucket(k).Find(u.is(k))
}

// Remove the value with key k. Returns false if there's none.
// Time: O(bucket)
func (u *HashTable[K, V]) Remove(k K) bool {
	if _, ok := u.bucket(k).Remove(u.is(k)); ok {
		u.sz--
		return true
	}
	return false
}

func (u *HashTable[K, V]) Len() uint {
	return u.sz
}

// Range calls f on every value in bucket order until f returns false.
func (u *HashTable[K, V]) Range(f func(V) bool) {
	goOn := true
	for i := 0; i < len(u.bkt) && goOn; i++ {
		u.bkt[i].Range(func(v V) bool {
			goOn = f(v)
			return goOn
		})
	}
}
