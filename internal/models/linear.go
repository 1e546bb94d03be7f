package models

import (
	"fmt"
	"time"

	"github.com/fegerar/folio/internal/metrics"
)

type LinearParams struct {
	M, C float64
}

var LinearPoints = []Point{
	{50, 75},
	{150, 125},
	{250, 175},
	{350, 225},
	{450, 275},
}

var LinearIterations = []LinearParams{
	{M: 0, C: 150},
	{M: 0.25, C: 130},
	{M: 0.4, C: 100},
	{M: 0.48, C: 70},
	{M: 0.5, C: 50},
}

const LinearInterval = 2000 * time.Millisecond

// LinearRegressionPointRadius is the marker radius of a training point.
const LinearRegressionPointRadius = 6.0

func (p LinearParams) Predict(x float64) float64 {
	return p.M*x + p.C
}

// Line spans the full plot width.
func (p LinearParams) Line() Line {
	return Line{X1: 0, Y1: p.Predict(0), X2: CanvasWidth, Y2: p.Predict(CanvasWidth)}
}

// Residuals are vertical segments from each point to its prediction.
func (p LinearParams) Residuals() []Line {
	out := make([]Line, len(LinearPoints))
	for i, pt := range LinearPoints {
		out[i] = Line{X1: pt.X, Y1: pt.Y, X2: pt.X, Y2: p.Predict(pt.X)}
	}
	return out
}

// Loss is the mean squared error over LinearPoints.
func (p LinearParams) Loss() float64 {
	predicted := make([]float64, len(LinearPoints))
	actual := make([]float64, len(LinearPoints))
	for i, pt := range LinearPoints {
		predicted[i], actual[i] = p.Predict(pt.X), pt.Y
	}
	return metrics.Reduce(metrics.NewMeanSquaredError(), predicted, actual)
}

func (p LinearParams) Equation() string {
	return fmt.Sprintf("y = %.2fx + %.2f", p.M, p.C)
}

type LinearRegression struct{}

func (LinearRegression) Name() string            { return "linear_regression" }
func (LinearRegression) Title() string           { return "Linear Regression" }
func (LinearRegression) Frames() int             { return len(LinearIterations) }
func (LinearRegression) Interval() time.Duration { return LinearInterval }

func (LinearRegression) At(step int) LinearParams {
	return LinearIterations[wrap(step, len(LinearIterations))]
}

func (w LinearRegression) Params(step int) []Param {
	p := w.At(step)
	return []Param{{"m", p.M}, {"c", p.C}}
}

func (w LinearRegression) Metric(step int) (Param, bool) {
	return Param{"loss", w.At(step).Loss()}, true
}
