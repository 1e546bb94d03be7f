// Package metrics holds the reductions the regression widgets display.
package metrics

import "math"

// Metric accumulates (predicted, actual) pairs into a single value.
type Metric interface {
	Name() string
	Observe(predicted, actual float64)
	Value() float64
	Reset()
}

// Sigmoid maps a linear score to a probability in (0, 1).
func Sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// Classify thresholds a probability at 0.5.
func Classify(p float64) int {
	if p >= 0.5 {
		return 1
	}
	return 0
}

// Reduce feeds every pair to m after a reset and returns its value.
func Reduce(m Metric, predicted, actual []float64) float64 {
	m.Reset()
	for i := range predicted {
		if i >= len(actual) {
			break
		}
		m.Observe(predicted[i], actual[i])
	}
	return m.Value()
}
