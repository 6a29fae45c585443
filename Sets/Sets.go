package Sets

// Set of distinct elements, where what "distinct" means is up to the implementation.
// Trees.AVLTree and Trees.Locked are Sets ordered by a comparator.
type Set[E any] interface {
	//Insert e, returning false if it's already in the Set.
	Insert(e E) bool
	Has(e E) bool
	//Remove e, returning false if it isn't in the Set.
	Remove(e E) bool
	Size() uint
	Clear()
}

// InsertAll elements of es to s, returning how many were added.
func InsertAll[E any](s Set[E], es ...E) (n uint) {
	for _, e := range es {
		if s.Insert(e) {
			n++
		}
	}
	return
}

// RemoveAll elements of es from s, returning how many were removed.
func RemoveAll[E any](s Set[E], es ...E) (n uint) {
	for _, e := range es {
		if s.Remove(e) {
			n++
		}
	}
	return
}
