package models

import (
	"fmt"
	"time"

	"github.com/fegerar/folio/internal/metrics"
)

type LabeledPoint struct {
	Point
	Category int
}

type LogisticParams struct {
	W1, W2, B float64
}

// LogisticPoints: height-like x against weight-like y, category 1 is
// overweight.
var LogisticPoints = []LabeledPoint{
	{Point{100, 240}, 0},
	{Point{120, 230}, 0},
	{Point{140, 220}, 0},
	{Point{160, 210}, 0},
	{Point{180, 180}, 0},
	{Point{200, 170}, 1},
	{Point{220, 160}, 1},
	{Point{240, 150}, 1},
	{Point{260, 140}, 1},
	{Point{280, 130}, 1},
}

var LogisticIterations = []LogisticParams{
	{W1: 0.001, W2: 0.001, B: 0},
	{W1: 0.005, W2: -0.003, B: -0.5},
	{W1: 0.01, W2: -0.008, B: -1},
	{W1: 0.015, W2: -0.012, B: -1.5},
	{W1: 0.02, W2: -0.015, B: -1.2},
}

const LogisticInterval = 2000 * time.Millisecond

const LogisticPointRadius = 10.0

// Boundary endpoints are solved at these x coordinates.
const (
	BoundaryX1 = 50.0
	BoundaryX2 = 350.0
)

func (p LogisticParams) Score(pt Point) float64 {
	return p.W1*pt.X + p.W2*pt.Y + p.B
}

func (p LogisticParams) Probability(pt Point) float64 {
	return metrics.Sigmoid(p.Score(pt))
}

func (p LogisticParams) Predict(pt Point) int {
	return metrics.Classify(p.Probability(pt))
}

// Boundary is the segment of w1*x + w2*y + b = 0 between BoundaryX1 and
// BoundaryX2. A zero W2 yields a vertical line across the plot.
func (p LogisticParams) Boundary() Line {
	if p.W2 == 0 {
		if p.W1 == 0 {
			return Line{}
		}
		x := -p.B / p.W1
		return Line{X1: x, Y1: 0, X2: x, Y2: CanvasHeight}
	}
	y := func(x float64) float64 { return (-p.W1*x - p.B) / p.W2 }
	return Line{X1: BoundaryX1, Y1: y(BoundaryX1), X2: BoundaryX2, Y2: y(BoundaryX2)}
}

// Accuracy is the percentage of LogisticPoints classified correctly.
func (p LogisticParams) Accuracy() float64 {
	predicted := make([]float64, len(LogisticPoints))
	actual := make([]float64, len(LogisticPoints))
	for i, pt := range LogisticPoints {
		predicted[i], actual[i] = float64(p.Predict(pt.Point)), float64(pt.Category)
	}
	return metrics.Reduce(metrics.NewAccuracy(), predicted, actual)
}

// Probabilities returns the class-1 probability of every point, in order.
func (p LogisticParams) Probabilities() []float64 {
	out := make([]float64, len(LogisticPoints))
	for i, pt := range LogisticPoints {
		out[i] = p.Probability(pt.Point)
	}
	return out
}

func (p LogisticParams) Equation() string {
	return fmt.Sprintf("%.3f*x + %.3f*y + %.2f = 0", p.W1, p.W2, p.B)
}

type LogisticRegression struct{}

func (LogisticRegression) Name() string            { return "logistic_regression" }
func (LogisticRegression) Title() string           { return "Logistic Regression" }
func (LogisticRegression) Frames() int             { return len(LogisticIterations) }
func (LogisticRegression) Interval() time.Duration { return LogisticInterval }

func (LogisticRegression) At(step int) LogisticParams {
	return LogisticIterations[wrap(step, len(LogisticIterations))]
}

func (w LogisticRegression) Params(step int) []Param {
	p := w.At(step)
	return []Param{{"w1", p.W1}, {"w2", p.W2}, {"b", p.B}}
}

func (w LogisticRegression) Metric(step int) (Param, bool) {
	return Param{"accuracy", w.At(step).Accuracy()}, true
}
