package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

// LinearView replays gradient descent on a line fit. The line and residuals
// spring between snapshots.
type LinearView struct {
	animated
	model models.LinearRegression
}

func NewLinearView(speed playback.Speed, styles *Styles) (LinearView, error) {
	w := models.LinearRegression{}
	a, err := newAnimated(w, speed, styles, linearTarget(w.At(0)))
	if err != nil {
		return LinearView{}, err
	}
	return LinearView{animated: a, model: w}, nil
}

func linearTarget(p models.LinearParams) []float64 {
	return []float64{p.M, p.C}
}

func (v LinearView) Name() string  { return v.model.Name() }
func (v LinearView) Title() string { return v.model.Title() }

func (v LinearView) Update(msg tea.Msg) (Widget, tea.Cmd) {
	cmd, advanced := v.update(msg)
	if advanced {
		cmd = tea.Batch(cmd, v.retarget(linearTarget(v.model.At(v.Step()))))
	}
	return v, cmd
}

// shown is the line currently on screen, mid-transition or not.
func (v LinearView) shown() models.LinearParams {
	return models.LinearParams{M: v.springs.pos[0], C: v.springs.pos[1]}
}

func (v LinearView) Plot() *Canvas {
	t := v.styles.Theme
	c := NewPlotCanvas()
	p := v.shown()

	c.Pen(t.Subtle)
	for _, r := range p.Residuals() {
		c.PlotLine(r)
	}
	c.Pen(t.Negative)
	for _, pt := range models.LinearPoints {
		c.PlotCircle(pt, models.LinearRegressionPointRadius, true)
	}
	c.Pen(t.Primary)
	c.PlotLine(p.Line())
	return c
}

func (v LinearView) View() string {
	s := v.styles
	current := v.model.At(v.Step())
	info := lipgloss.JoinVertical(lipgloss.Left,
		s.row("Equation", current.Equation()),
		s.row("Loss (MSE)", fmt.Sprintf("%.2f", current.Loss())),
		v.progress(v.model.Frames()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, v.Plot().String(), info, "", v.controls())
}
