package viz

import (
	"fmt"

	"github.com/fegerar/folio/internal/models"
)

// Snapshot renders a widget's plot settled on one step, without playback.
// field is only used by the decision tree and defaults to the step's field.
func Snapshot(w models.Widget, step int, field string, styles *Styles) (*Canvas, error) {
	if step < 0 || step >= w.Frames() {
		return nil, fmt.Errorf("step %d out of range for %s (0-%d)", step, w.Name(), w.Frames()-1)
	}
	switch m := w.(type) {
	case models.LinearRegression:
		v, err := NewLinearView(0, styles)
		if err != nil {
			return nil, err
		}
		v.seek(step, linearTarget(m.At(step)))
		return v.Plot(), nil
	case models.LogisticRegression:
		v, err := NewLogisticView(0, styles)
		if err != nil {
			return nil, err
		}
		v.seek(step, logisticTarget(m.At(step)))
		return v.Plot(), nil
	case models.MultiLayerPerceptron:
		v, err := NewMLPView(0, styles)
		if err != nil {
			return nil, err
		}
		v.seek(step, mlpTarget(m, step))
		return v.Plot(), nil
	case models.DecisionTree:
		if field == "" {
			field = m.Field(step)
		}
		v, err := NewTreeView(styles).SetField(field)
		if err != nil {
			return nil, err
		}
		return v.Plot(), nil
	}
	return nil, fmt.Errorf("no terminal view for widget %s", w.Name())
}

// seek jumps to step with the springs already at rest.
func (a *animated) seek(step int, target []float64) {
	a.player.Step = step
	a.springs.retarget(target)
	a.springs.snap()
}
