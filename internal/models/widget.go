package models

import (
	"errors"
	"math"
	"time"
)

// Plot size shared by every widget, in plot units.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 300.0
)

var ErrUnknownField = errors.New("models: unknown decision tree field")

type Point struct {
	X, Y float64
}

type Line struct {
	X1, Y1, X2, Y2 float64
}

// Finite reports whether every endpoint can be drawn.
func (l Line) Finite() bool {
	for _, v := range []float64{l.X1, l.Y1, l.X2, l.Y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Param is a named scalar shown alongside a frame.
type Param struct {
	Name  string
	Value float64
}

// Widget describes one visualization's frame table.
type Widget interface {
	Name() string
	Title() string
	Frames() int
	// Interval is the 1x tick period, or 0 when the widget is not timer
	// driven.
	Interval() time.Duration
	Params(step int) []Param
	Metric(step int) (Param, bool)
}

// wrap maps any step onto [0, n).
func wrap(step, n int) int {
	if n <= 0 {
		return 0
	}
	return ((step % n) + n) % n
}
