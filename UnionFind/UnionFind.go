package UnionFind

import (
	Go_Index "github.com/g-m-twostay/go-index"
)

// Group of elements, with bookkeeping attached by the caller through Attach.
type Group[P any] struct {
	id, size, count int
	best            P
	has             bool
	better          Go_Index.Cmp[P]
}

// ID of the group. It's the element the group started from, or the ID of the first
// argument's group after a Union.
func (g *Group[P]) ID() int {
	return g.id
}

// Size is the number of elements in the group.
func (g *Group[P]) Size() int {
	return g.size
}

// Count of payloads attached to the group.
func (g *Group[P]) Count() int {
	return g.count
}

// Best payload attached so far; the later one wins ties.
func (g *Group[P]) Best() (P, bool) {
	return g.best, g.has
}

// Attach payload p to the group.
func (g *Group[P]) Attach(p P) {
	g.count++
	if !g.has || g.better(p, g.best) >= 0 {
		g.best, g.has = p, true
	}
}

func (g *Group[P]) absorb(o *Group[P]) {
	g.size += o.size
	g.count += o.count
	if o.has && (!g.has || g.better(o.best, g.best) > 0) {
		g.best, g.has = o.best, true
	}
}

// UnionFind over the elements [0,n), union by size with path compression.
type UnionFind[P any] struct {
	parent []int
	groups []*Group[P] // groups[r] is the group whose root is r, nil for non-roots.
	live   Go_Index.BitArray
}

// New UnionFind where every element is in its own group. better orders payloads,
// with the best being the greatest.
func New[P any](n int, better Go_Index.Cmp[P]) *UnionFind[P] {
	u := &UnionFind[P]{parent: make([]int, n), groups: make([]*Group[P], n), live: Go_Index.NewBitArray(n)}
	for i := range n {
		u.parent[i] = i
		u.groups[i] = &Group[P]{id: i, size: 1, better: better}
		u.live.Up(i)
	}
	return u
}

func (u *UnionFind[P]) in(i int) bool {
	return i >= 0 && i < len(u.parent)
}

// root of i, pointing every element on the way directly to it.
// Time: amortized O(α(n))
func (u *UnionFind[P]) root(i int) int {
	r := i
	for u.parent[r] != r {
		r = u.parent[r]
	}
	for u.parent[i] != r {
		u.parent[i], i = r, u.parent[i]
	}
	return r
}

// Find the group of i, nil if i is out of range.
func (u *UnionFind[P]) Find(i int) *Group[P] {
	if !u.in(i) {
		return nil
	}
	return u.groups[u.root(i)]
}

// Union the groups of a and b. The smaller group's root goes under the larger one's,
// a's under b's on ties. Returns the ID of the merged group, which keeps the ID of a's
// group, or -1 if a or b is out of range. Groups returned by Find before the call
// for the absorbed group must not be used afterwards.
func (u *UnionFind[P]) Union(a, b int) int {
	if !u.in(a) || !u.in(b) {
		return -1
	}
	ra, rb := u.root(a), u.root(b)
	id := u.groups[ra].id
	if ra == rb {
		return id
	}
	if u.groups[ra].size > u.groups[rb].size {
		ra, rb = rb, ra
	}
	u.parent[ra] = rb
	u.groups[rb].absorb(u.groups[ra])
	u.groups[rb].id = id
	u.groups[ra] = nil
	u.live.Down(ra)
	return id
}

// Groups is the number of disjoint groups.
func (u *UnionFind[P]) Groups() int {
	return u.live.Count()
}

// Len is the number of elements.
func (u *UnionFind[P]) Len() int {
	return len(u.parent)
}
