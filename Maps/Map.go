package Maps

import "fmt"

// Map associates keys with values; a key is in the Map at most once.
type Map[K, V any] interface {
	//Insert k with value v, replacing the value of k if it's present.
	Insert(k K, v V)
	//Remove k, failing with *ElementNotFoundError if it's absent.
	Remove(k K) error
	//Find the value of k, failing with *ElementNotFoundError if it's absent.
	Find(k K) (V, error)
	ContainsKey(k K) bool
	Size() uint
	Clear()
}

// ElementNotFoundError is returned when looking up or removing an absent key.
type ElementNotFoundError[K any] struct {
	Key K
}

func (e *ElementNotFoundError[K]) Error() string {
	return fmt.Sprintf("element not found: %v", e.Key)
}
