package Queues

import (
	"errors"
	"testing"
)

func TestArrayQueue_All(t *testing.T) {
	Q := MakeArrayQueue[int](0)
	if _, e := Q.Pop(); !errors.As(e, new(*EmptyQueueError)) {
		t.Error("pop on empty queue didn't fail")
	}
	for r := 0; r < 3; r++ {
		next := 0
		for i := 0; i < 100; i++ {
			Q.Push(i)
			if i%3 == 0 {
				if v, e := Q.Pop(); e != nil || v != next {
					t.Error("wrong pop 1", v, e)
				}
				next++
			}
		}
		Q.Shrink()
		for ; !Q.Empty(); next++ {
			if v, e := Q.Pop(); e != nil || v != next {
				t.Error("wrong pop 2", v, e)
			}
		}
		if Q.Size() != 0 || next != 100 {
			t.Error("wrong size", Q.Size())
		}
	}
}

func TestArrayQueue_Order(t *testing.T) {
	Q := MakeArrayQueue[int](4)
	next := 0
	for i := 0; i < 1000; i++ {
		Q.Push(i)
		if i%2 == 1 {
			if v, _ := Q.Pop(); v != next {
				t.Fatalf("popped %d, want %d", v, next)
			}
			next++
		}
		if i%97 == 0 {
			Q.Shrink()
		}
	}
	if v, ok := Q.Peek(); !ok || v != next {
		t.Errorf("peek is %d, want %d", v, next)
	}
	if Q.Size() != 500 {
		t.Errorf("size is %d, want 500", Q.Size())
	}
	Q.Clear()
	if _, ok := Q.Peek(); ok || !Q.Empty() {
		t.Error("queue isn't empty after clear")
	}
}
