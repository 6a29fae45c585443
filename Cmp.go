package Go_Index

import (
	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Cmp is a three-way ordering function. It returns a negative number if a precedes b,
// 0 if a and b are the same key, and a positive number if a follows b.
// It must describe a strict total order; every container in this module treats a 0
// result as "the same key".
type Cmp[T any] func(a, b T) int

// Compare is the natural Cmp for ordered types.
func Compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if a > b {
		return 1
	}
	return 0
}

// Reverse order of c.
func (c Cmp[T]) Reverse() Cmp[T] {
	return func(a, b T) int {
		return c(b, a)
	}
}

// FromGods adapts a gods comparator, which shares the same three-way contract, to Cmp.
// c must accept values of type T.
func FromGods[T any](c utils.Comparator) Cmp[T] {
	return func(a, b T) int {
		return c(a, b)
	}
}

// Gods returns c as a gods comparator. Arguments not of type T panic.
func (c Cmp[T]) Gods() utils.Comparator {
	return func(a, b interface{}) int {
		return c(a.(T), b.(T))
	}
}
