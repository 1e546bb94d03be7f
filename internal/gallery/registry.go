// Package gallery names the available widgets and records their playback.
package gallery

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fegerar/folio/internal/models"
)

var ErrUnknownWidget = errors.New("gallery: unknown widget")

type Registry struct {
	widgets map[string]func() models.Widget
	order   []string
}

// NewRegistry returns the four built-in widgets in page order.
func NewRegistry() *Registry {
	r := &Registry{widgets: make(map[string]func() models.Widget)}
	r.Register(func() models.Widget { return models.DecisionTree{} })
	r.Register(func() models.Widget { return models.LinearRegression{} })
	r.Register(func() models.Widget { return models.LogisticRegression{} })
	r.Register(func() models.Widget { return models.MultiLayerPerceptron{} })
	return r
}

// Register adds a widget under its own name, replacing any earlier one.
func (r *Registry) Register(fn func() models.Widget) {
	name := fn().Name()
	if _, ok := r.widgets[name]; !ok {
		r.order = append(r.order, name)
	}
	r.widgets[name] = fn
}

func (r *Registry) Get(name string) (models.Widget, error) {
	fn, ok := r.widgets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownWidget, name, r.Sorted())
	}
	return fn(), nil
}

// List returns widget names in registration order.
func (r *Registry) List() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

func (r *Registry) Sorted() []string {
	out := r.List()
	sort.Strings(out)
	return out
}

// All instantiates every widget in registration order.
func (r *Registry) All() []models.Widget {
	out := make([]models.Widget, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.widgets[name]())
	}
	return out
}

// Animated filters All to the timer-driven widgets.
func (r *Registry) Animated() []models.Widget {
	var out []models.Widget
	for _, w := range r.All() {
		if w.Interval() > 0 {
			out = append(out, w)
		}
	}
	return out
}
