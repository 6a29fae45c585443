package HashTable

import (
	"math/rand"
	"testing"

	"github.com/alphadose/haxmap"
	"github.com/cornelk/hashmap"
	Go_Index "github.com/g-m-twostay/go-index"
	"github.com/stretchr/testify/require"
)

type item struct {
	id, weight int
}

func itemID(v item) int {
	return v.id
}

const elementNum0 = 1 << 12

func TestHashTable_All(t *testing.T) {
	M := New[int, item](7, itemID, Go_Index.Hasher(1).HashInt)
	for i := 0; i < 100; i++ {
		require.True(t, M.Insert(item{i, i * 2}))
		require.False(t, M.Insert(item{i, -1}), "duplicate id %d", i)
	}
	require.Equal(t, uint(100), M.Len())
	for i := 0; i < 100; i++ {
		v, ok := M.Search(i)
		require.True(t, ok)
		require.Equal(t, i*2, v.weight)
	}
	for i := 0; i < 50; i++ {
		require.True(t, M.Remove(i))
		require.False(t, M.Remove(i))
	}
	_, ok := M.Search(10)
	require.False(t, ok)
	require.Equal(t, uint(50), M.Len())
	seen := 0
	M.Range(func(v item) bool {
		require.GreaterOrEqual(t, v.id, 50)
		seen++
		return true
	})
	require.Equal(t, 50, seen)
	seen = 0
	M.Range(func(item) bool {
		seen++
		return seen < 3
	})
	require.Equal(t, 3, seen)
}

func TestHashTable_Default(t *testing.T) {
	M := New[string, string](0, func(s string) string { return s }, Go_Index.Hasher(0).HashString)
	require.Len(t, M.bkt, DefaultBuckets)
	require.True(t, M.Insert("troll"))
	v, ok := M.Search("troll")
	require.True(t, ok)
	require.Equal(t, "troll", v)
}

func BenchmarkHashTable(b *testing.B) {
	keys := rand.Perm(elementNum0)
	for i := 0; i < b.N; i++ {
		M := New[int, item](elementNum0, itemID, Go_Index.Hasher(0).HashInt)
		for _, k := range keys {
			M.Insert(item{k, k})
		}
		for _, k := range keys {
			if _, ok := M.Search(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range keys {
			M.Remove(k)
		}
	}
}

func BenchmarkHashMap(b *testing.B) {
	keys := rand.Perm(elementNum0)
	for i := 0; i < b.N; i++ {
		M := hashmap.New[int, item]()
		for _, k := range keys {
			M.Insert(k, item{k, k})
		}
		for _, k := range keys {
			if _, ok := M.Get(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range keys {
			M.Del(k)
		}
	}
}

func BenchmarkHaxMap(b *testing.B) {
	keys := rand.Perm(elementNum0)
	for i := 0; i < b.N; i++ {
		M := haxmap.New[int, item]()
		for _, k := range keys {
			M.Set(k, item{k, k})
		}
		for _, k := range keys {
			if _, ok := M.Get(k); !ok {
				b.Error("key doesn't exist", k)
			}
		}
		for _, k := range keys {
			M.Del(k)
		}
	}
}
