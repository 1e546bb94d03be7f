package metrics

import (
	"math"
	"testing"
)

func TestMeanSquaredError(t *testing.T) {
	m := NewMeanSquaredError()
	if m.Value() != 0 {
		t.Error("empty metric should be 0")
	}

	got := Reduce(m, []float64{1, 2, 3}, []float64{1, 4, 0})
	expected := (0.0 + 4 + 9) / 3
	if math.Abs(got-expected) > 1e-12 {
		t.Errorf("expected %f, got %f", expected, got)
	}

	got = Reduce(m, []float64{5}, []float64{5})
	if got != 0 {
		t.Errorf("reduce should reset first, got %f", got)
	}
}

func TestAccuracy(t *testing.T) {
	a := NewAccuracy()
	got := Reduce(a, []float64{1, 0, 1, 1}, []float64{1, 0, 0, 1})
	if got != 75 {
		t.Errorf("expected 75, got %f", got)
	}
	if a.Name() != "accuracy" {
		t.Errorf("unexpected name %s", a.Name())
	}
}

func TestSigmoidClassify(t *testing.T) {
	tests := []struct {
		z     float64
		class int
	}{
		{-3, 0},
		{-1e-9, 0},
		{0, 1},
		{2, 1},
	}

	for _, tt := range tests {
		p := Sigmoid(tt.z)
		if p <= 0 || p >= 1 {
			t.Errorf("sigmoid(%f) = %f out of (0,1)", tt.z, p)
		}
		if c := Classify(p); c != tt.class {
			t.Errorf("z=%f: expected class %d, got %d", tt.z, tt.class, c)
		}
	}
}
