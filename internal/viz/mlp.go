package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

const labelOffset = 35.0

// MLPView replays a forward pass layer by layer.
type MLPView struct {
	animated
	model      models.MultiLayerPerceptron
	showValues bool
}

func NewMLPView(speed playback.Speed, styles *Styles) (MLPView, error) {
	w := models.MultiLayerPerceptron{}
	a, err := newAnimated(w, speed, styles, mlpTarget(w, 0))
	if err != nil {
		return MLPView{}, err
	}
	return MLPView{animated: a, model: w}, nil
}

// mlpTarget flattens the neuron opacities of one step.
func mlpTarget(w models.MultiLayerPerceptron, step int) []float64 {
	neurons := w.Neurons(step)
	out := make([]float64, len(neurons))
	for i, n := range neurons {
		out[i] = n.Opacity
	}
	return out
}

func (v MLPView) Name() string  { return v.model.Name() }
func (v MLPView) Title() string { return v.model.Title() }

// ShowValues reports whether activations are printed on the neurons.
func (v MLPView) ShowValues() bool { return v.showValues }

func (v MLPView) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, v.keys.values) {
		v.showValues = !v.showValues
		return v, nil
	}
	cmd, advanced := v.update(msg)
	if advanced {
		cmd = tea.Batch(cmd, v.retarget(mlpTarget(v.model, v.Step())))
	}
	return v, cmd
}

func (v MLPView) Plot() *Canvas {
	t := v.styles.Theme
	c := NewPlotCanvas()
	step := v.Step()

	for _, conn := range v.model.Connections(step) {
		if conn.Opacity >= 1 {
			c.Pen(t.Subtle)
		} else {
			c.Pen(t.Border)
		}
		c.PlotLine(conn.Line)
	}

	for i, n := range v.model.Neurons(step) {
		c.Pen(t.Primary)
		c.PlotCircle(n.Pos, models.NeuronRadius, false)
		c.PlotCircle(n.Pos, models.NeuronRadius*clamp01(v.springs.pos[i]), true)
		c.Pen(t.Muted)
		switch {
		case n.Layer == 0:
			c.PlotTextRight(models.Point{X: n.Pos.X - labelOffset, Y: n.Pos.Y}, n.Label)
		case n.Label != "":
			c.PlotTextLeft(models.Point{X: n.Pos.X + labelOffset, Y: n.Pos.Y}, n.Label)
		}
		if v.showValues {
			c.Pen(t.Text)
			c.PlotText(n.Pos, fmt.Sprintf("%.1f", n.Activation))
		}
	}

	c.Pen(t.Muted)
	for _, l := range models.MLPLayers {
		c.PlotText(models.Point{X: l.X, Y: 5}, l.Name)
	}
	return c
}

func (v MLPView) View() string {
	s := v.styles
	step := v.Step()
	lines := []string{s.row("Phase", v.model.Phase(step))}
	if pred := v.model.Prediction(step); pred != "" {
		lines = append(lines, s.row("Prediction", pred))
	}
	toggle := "off"
	if v.showValues {
		toggle = "on"
	}
	lines = append(lines, s.row("Values", toggle), v.progress(v.model.Frames()))
	if v.showValues {
		var acts []string
		for _, p := range v.model.Params(step) {
			acts = append(acts, fmt.Sprintf("%s %.1f", p.Name, p.Value))
		}
		lines = append(lines, s.Muted.Render("mean activation: "+strings.Join(acts, " · ")))
	}
	info := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.JoinVertical(lipgloss.Left, v.Plot().String(), info, "", v.controls())
}
