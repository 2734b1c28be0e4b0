package clue

import "testing"

func gridPoints() [][2]float32 {
	return [][2]float32{
		{0, 0}, {0.1, 0.1}, {1, 1}, {1.1, 1.1},
		{5, 5}, {5.1, 5.1}, {9, 9}, {9.9, 9.9},
	}
}

func TestTilesSetupAndFill(t *testing.T) {
	pts := gridPoints()
	column := func(d, i int) float32 { return pts[i][d] }

	tiles := NewTiles(2)
	q := NewSequentialQueue()
	tiles.Setup(q, column, len(pts), 2)
	if err := tiles.Fill(q, column, len(pts)); err != nil {
		t.Fatalf("Fill returned %v", err)
	}

	total := 0
	for b := 0; b < tiles.NTiles(); b++ {
		total += tiles.PointsInBin(b).Len()
	}
	if total != len(pts) {
		t.Errorf("total points across bins = %v, want %v", total, len(pts))
	}

	// Every point should land in the bin its own coordinates resolve to.
	for i := range pts {
		coords := []float32{pts[i][0], pts[i][1]}
		b := tiles.GlobalBin(coords)
		span := tiles.PointsInBin(b)
		found := false
		for k := 0; k < span.Len(); k++ {
			if int(span.At(k)) == i {
				found = true
			}
		}
		if !found {
			t.Errorf("point %d not found in its own bin %d", i, b)
		}
	}
}

func TestTilesEmpty(t *testing.T) {
	tiles := NewTiles(2)
	q := NewSequentialQueue()
	column := func(d, i int) float32 { return 0 }
	tiles.Setup(q, column, 0, 2)
	if err := tiles.Fill(q, column, 0); err != nil {
		t.Errorf("Fill on empty input returned %v", err)
	}
}

func TestTilesSearchBoxAndDistanceVector(t *testing.T) {
	pts := gridPoints()
	column := func(d, i int) float32 { return pts[i][d] }

	tiles := NewTiles(2)
	q := NewSequentialQueue()
	tiles.Setup(q, column, len(pts), 2)

	lo := []float32{0, 0}
	hi := []float32{1, 1}
	boxes := tiles.SearchBox(lo, hi)
	if len(boxes) != 2 {
		t.Fatalf("SearchBox returned %d boxes, want 2", len(boxes))
	}
	for _, b := range boxes {
		if b.Lo > b.Hi {
			t.Errorf("box Lo=%d > Hi=%d", b.Lo, b.Hi)
		}
	}

	visited := 0
	tiles.ForEachBinInBox(boxes, func(bin int) { visited++ })
	if visited == 0 {
		t.Errorf("ForEachBinInBox visited no bins")
	}

	dv := tiles.DistanceVector([]float32{0, 0}, []float32{3, 4})
	if dv[0] != 3 || dv[1] != 4 {
		t.Errorf("DistanceVector = %v, want [3 4]", dv)
	}
}

func TestTilesWrapping(t *testing.T) {
	tiles := NewTiles(1)
	tiles.SetWrapped(0, true)
	if !tiles.Wrapped(0) {
		t.Errorf("Wrapped(0) = false after SetWrapped(0, true)")
	}

	column := func(d, i int) float32 {
		data := []float32{0, 9.9}
		return data[i]
	}
	q := NewSequentialQueue()
	tiles.Setup(q, column, 2, 1)
	if err := tiles.Fill(q, column, 2); err != nil {
		t.Fatalf("Fill returned %v", err)
	}

	// DistanceVector should recognise 0 and 9.9 as close when wrapped over
	// a [0,9.9] range (the two points nearly touch across the seam).
	dv := tiles.DistanceVector([]float32{0}, []float32{9.9})
	if dv[0] > 1.0 {
		t.Errorf("wrapped DistanceVector = %v, want a small wrap-around distance", dv)
	}
}
