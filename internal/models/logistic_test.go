package models

import (
	"math"
	"testing"
)

func TestLogisticAccuracyRange(t *testing.T) {
	w := LogisticRegression{}
	for i := 0; i < w.Frames(); i++ {
		acc := w.At(i).Accuracy()
		if acc < 0 || acc > 100 {
			t.Errorf("iteration %d: accuracy %f out of range", i, acc)
		}
	}

	final := w.At(w.Frames() - 1).Accuracy()
	if final != 100 {
		t.Errorf("final iteration should classify every point, got %.1f%%", final)
	}
}

func TestLogisticBoundary(t *testing.T) {
	p := LogisticParams{W1: 0.01, W2: -0.01, B: 0}
	b := p.Boundary()
	if b.X1 != BoundaryX1 || b.X2 != BoundaryX2 {
		t.Errorf("unexpected x range %+v", b)
	}
	if math.Abs(b.Y1-50) > 1e-9 || math.Abs(b.Y2-350) > 1e-9 {
		t.Errorf("boundary should be y=x, got %+v", b)
	}

	// Points on the boundary score zero.
	for _, pt := range []Point{{b.X1, b.Y1}, {b.X2, b.Y2}} {
		if s := p.Score(pt); math.Abs(s) > 1e-9 {
			t.Errorf("score on boundary should be 0, got %f", s)
		}
	}
}

func TestLogisticBoundaryVertical(t *testing.T) {
	b := LogisticParams{W1: 0.02, W2: 0, B: -4}.Boundary()
	if b.X1 != 200 || b.X2 != 200 || b.Y1 != 0 || b.Y2 != CanvasHeight {
		t.Errorf("expected vertical line at x=200, got %+v", b)
	}
	if (LogisticParams{}).Boundary() != (Line{}) {
		t.Error("all-zero weights should give an empty line")
	}
}

func TestLogisticProbabilities(t *testing.T) {
	probs := LogisticIterations[4].Probabilities()
	if len(probs) != len(LogisticPoints) {
		t.Fatalf("expected %d probabilities, got %d", len(LogisticPoints), len(probs))
	}
	for i, p := range probs {
		if p <= 0 || p >= 1 {
			t.Errorf("point %d: probability %f out of (0,1)", i, p)
		}
		want := LogisticPoints[i].Category == 1
		if (p >= 0.5) != want {
			t.Errorf("point %d: probability %f on the wrong side", i, p)
		}
	}
}

func TestLogisticEquation(t *testing.T) {
	if got := LogisticIterations[1].Equation(); got != "0.005*x + -0.003*y + -0.50 = 0" {
		t.Errorf("unexpected equation %q", got)
	}
}
