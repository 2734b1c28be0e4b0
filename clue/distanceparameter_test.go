package clue

import "testing"

func TestScalarDistanceParameter(t *testing.T) {
	p := ScalarDistanceParameter(2.0)
	if p.At(0) != 2.0 || p.At(5) != 2.0 {
		t.Errorf("At should broadcast scalar to every dimension")
	}
	if !p.LessEqualAll([]float32{1, 2, 2}) {
		t.Errorf("LessEqualAll should accept values at or below threshold")
	}
	if p.LessEqualAll([]float32{1, 2, 2.1}) {
		t.Errorf("LessEqualAll should reject a value above threshold")
	}
	if p.GreaterAny([]float32{1, 2, 2}) {
		t.Errorf("GreaterAny should reject values all at or below threshold")
	}
	if !p.GreaterAny([]float32{1, 2, 2.1}) {
		t.Errorf("GreaterAny should accept a value above threshold")
	}
}

func TestPerDimDistanceParameter(t *testing.T) {
	p := PerDimDistanceParameter([]float32{1, 2, 3})
	if p.At(0) != 1 || p.At(1) != 2 || p.At(2) != 3 {
		t.Errorf("At should return the per-dimension value")
	}
	if !p.LessEqualAll([]float32{1, 2, 3}) {
		t.Errorf("LessEqualAll should accept exact-threshold diffs")
	}
	if p.LessEqualAll([]float32{1, 2.5, 3}) {
		t.Errorf("LessEqualAll should reject a per-dim violation")
	}
}

func TestDistanceParameterScalar(t *testing.T) {
	if v := ScalarDistanceParameter(1.5).Scalar(); v != 1.5 {
		t.Errorf("Scalar() = %v, want 1.5", v)
	}
	if v := PerDimDistanceParameter([]float32{2, 3}).Scalar(); v != 2 {
		t.Errorf("Scalar() = %v, want dimension-0 value 2", v)
	}
}
