package Trees

import "fmt"

// Tree represents an ordered set implemented using linked nodes. Ordering is given by a
// three-way comparator supplied when the tree is made, and two values comparing equal
// are the same key.
// Receivers that has a bool as a second return value indicates whether
// the first return value is defined. For example, if calling Minimum on
// an empty tree, the return value will be (x T, false bool). In this
// case x is the zero value of T and shouldn't be used.
// Methods implemented recursively should be noted, otherwise functions are implemented iteratively.
type Tree[T any] interface {
	//Insert v to the Tree. Returning true if a value was added, false if an equal
	//value is already present, in which case the Tree is unchanged.
	Insert(v T) bool
	//Remove v from the Tree. Returning true if v was present, false otherwise,
	//in which case the Tree is unchanged.
	Remove(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Has element v.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree, 0 when it's empty.
	Height() uint
	//InOrder returns a closure function f acting like an iterator. f
	//gives values in the in-order traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became false.
	//The tree must not be modified during the iteration of f.
	InOrder() func() (T, bool)
	//Corrupt returns whether the tree has corrupt structures, when the value
	//at some node violates the properties of that specific implementation.
	Corrupt() bool
	//Clear the tree.
	Clear()
}

// InvalidSliceError is returned when building a tree from a slice that isn't
// strictly ascending. Prev and Cur are the first offending pair, at Index-1 and Index.
type InvalidSliceError[T any] struct {
	Index     int
	Prev, Cur T
}

func (e *InvalidSliceError[T]) Error() string {
	return fmt.Sprintf("slice not strictly ascending at %d: %v then %v", e.Index, e.Prev, e.Cur)
}
