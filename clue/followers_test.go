package clue

import (
	"sort"
	"testing"
)

func TestFollowersBuild(t *testing.T) {
	// nh: point 0 has no higher neighbour (seed), 1 and 2 follow 0, 3 follows 1.
	nh := []int32{-1, 0, 0, 1}
	f := NewFollowers(len(nh))
	f.Build(NewSequentialQueue(), len(nh), func(i int) int32 { return nh[i] })

	of0 := f.Of(0)
	got := make([]int, 0, of0.Len())
	for i := 0; i < of0.Len(); i++ {
		got = append(got, int(of0.At(i)))
	}
	sort.Ints(got)
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Of(0) = %v, want [1 2]", got)
	}

	of1 := f.Of(1)
	if of1.Len() != 1 || of1.At(0) != 3 {
		t.Errorf("Of(1) = %v, want [3]", of1.Slice())
	}

	of2 := f.Of(2)
	if of2.Len() != 0 {
		t.Errorf("Of(2) = %v, want empty (point 2 has no followers)", of2.Slice())
	}
}
