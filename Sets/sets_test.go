package Sets

import (
	"testing"

	Go_Index "github.com/g-m-twostay/go-index"
	"github.com/g-m-twostay/go-index/Trees"
)

func TestSets_All(t *testing.T) {
	for _, S := range []Set[int]{Trees.New(Go_Index.Compare[int]), Trees.NewLocked(Go_Index.Compare[int])} {
		if InsertAll(S, 1, 2, 3, 2, 1) != 3 {
			t.Error("wrong insert all")
		}
		if !S.Has(2) || S.Has(4) {
			t.Error("wrong has")
		}
		if RemoveAll(S, 2, 4, 2) != 1 {
			t.Error("wrong remove all")
		}
		if S.Size() != 2 {
			t.Error("wrong size", S.Size())
		}
		S.Clear()
		if S.Size() != 0 {
			t.Error("wrong clear")
		}
	}
}
