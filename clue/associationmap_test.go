package clue

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssociationMapFillFromKeys(t *testing.T) {
	keys := []int32{2, 0, 0, 1, 2, 2}
	m := NewAssociationMap(3, len(keys))
	m.FillFromKeys(NewSequentialQueue(), keys)

	if m.Count(0) != 2 {
		t.Errorf("Count(0) = %d, want 2", m.Count(0))
	}
	if m.Count(1) != 1 {
		t.Errorf("Count(1) = %d, want 1", m.Count(1))
	}
	if m.Count(2) != 3 {
		t.Errorf("Count(2) = %d, want 3", m.Count(2))
	}

	for k := 0; k < 3; k++ {
		bin := m.Bin(k)
		for i := 0; i < bin.Len(); i++ {
			if keys[bin.At(i)] != int32(k) {
				t.Errorf("Bin(%d)[%d] = index %d, but keys[%d] = %d", k, i, bin.At(i), bin.At(i), keys[bin.At(i)])
			}
		}
	}
}

func TestAssociationMapFillDropsNegativeKeys(t *testing.T) {
	keys := []int32{0, -1, 1, -1, 0}
	m := NewAssociationMap(2, len(keys))
	m.FillFromKeys(NewSequentialQueue(), keys)

	total := 0
	for k := 0; k < 2; k++ {
		total += m.Count(k)
	}
	if total != 3 {
		t.Fatalf("total retained = %d, want 3 (two items dropped)", total)
	}
}

func TestAssociationMapConcurrentBuildMatchesSequential(t *testing.T) {
	n := 5000
	keys := make([]int32, n)
	for i := range keys {
		keys[i] = int32((i * 37) % 64)
	}

	seqMap := NewAssociationMap(64, n)
	seqMap.FillFromKeys(NewSequentialQueue(), keys)

	pool := NewPoolQueue(4)
	defer pool.Close()
	poolMap := NewAssociationMap(64, n)
	poolMap.FillFromKeys(pool, keys)

	for k := 0; k < 64; k++ {
		if seqMap.Count(k) != poolMap.Count(k) {
			t.Fatalf("Count(%d): sequential=%d pool=%d", k, seqMap.Count(k), poolMap.Count(k))
		}
		seqBin := append([]int32{}, seqMap.Bin(k).Slice()...)
		poolBin := append([]int32{}, poolMap.Bin(k).Slice()...)
		sort.Slice(seqBin, func(i, j int) bool { return seqBin[i] < seqBin[j] })
		sort.Slice(poolBin, func(i, j int) bool { return poolBin[i] < poolBin[j] })
		if diff := cmp.Diff(seqBin, poolBin); diff != "" {
			t.Fatalf("Bin(%d) mismatch (-sequential +pool):\n%s", k, diff)
		}
	}
}

func TestAssociationMapFillKeyFn(t *testing.T) {
	n := 10
	m := NewAssociationMap(2, n)
	m.Fill(NewSequentialQueue(), n, func(i int) int32 { return int32(i % 2) })

	if m.Count(0) != 5 || m.Count(1) != 5 {
		t.Fatalf("Count(0)=%d Count(1)=%d, want 5/5", m.Count(0), m.Count(1))
	}
}

func TestAssociationMapExtentsAndSize(t *testing.T) {
	m := NewAssociationMap(4, 10)
	k, v := m.Extents()
	if k != 4 || v != 10 {
		t.Fatalf("Extents() = (%d, %d), want (4, 10)", k, v)
	}
	if m.Size() != 4 {
		t.Fatalf("Size() = %d, want 4", m.Size())
	}
}
