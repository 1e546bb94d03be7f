package viz

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

const gridPitch = 50.0

// LogisticView replays a classifier converging. The boundary endpoints and
// the per-point probability fills spring between snapshots.
type LogisticView struct {
	animated
	model models.LogisticRegression
}

func NewLogisticView(speed playback.Speed, styles *Styles) (LogisticView, error) {
	w := models.LogisticRegression{}
	a, err := newAnimated(w, speed, styles, logisticTarget(w.At(0)))
	if err != nil {
		return LogisticView{}, err
	}
	return LogisticView{animated: a, model: w}, nil
}

// logisticTarget packs the boundary endpoints followed by every point's
// class-1 probability.
func logisticTarget(p models.LogisticParams) []float64 {
	b := p.Boundary()
	out := []float64{b.X1, b.Y1, b.X2, b.Y2}
	return append(out, p.Probabilities()...)
}

func (v LogisticView) Name() string  { return v.model.Name() }
func (v LogisticView) Title() string { return v.model.Title() }

func (v LogisticView) Update(msg tea.Msg) (Widget, tea.Cmd) {
	cmd, advanced := v.update(msg)
	if advanced {
		cmd = tea.Batch(cmd, v.retarget(logisticTarget(v.model.At(v.Step()))))
	}
	return v, cmd
}

// GridLines returns the background grid: 12 vertical and 6 horizontal lines
// at a 50 unit pitch.
func GridLines() []models.Line {
	var out []models.Line
	for i := 0; i < 12; i++ {
		x := float64(i) * gridPitch
		out = append(out, models.Line{X1: x, Y1: 0, X2: x, Y2: models.CanvasHeight})
	}
	for i := 0; i < 6; i++ {
		y := float64(i) * gridPitch
		out = append(out, models.Line{X1: 0, Y1: y, X2: models.CanvasWidth, Y2: y})
	}
	return out
}

func (v LogisticView) Plot() *Canvas {
	t := v.styles.Theme
	c := NewPlotCanvas()
	pos := v.springs.pos

	c.Pen(t.Border)
	for _, l := range GridLines() {
		c.PlotLine(l)
	}

	c.Pen(t.Primary)
	c.PlotLine(models.Line{X1: pos[0], Y1: pos[1], X2: pos[2], Y2: pos[3]})

	for i, pt := range models.LogisticPoints {
		base, overlay := t.Positive, t.Negative
		if pt.Category == 1 {
			base, overlay = t.Negative, t.Positive
		}
		c.Pen(base)
		c.PlotCircle(pt.Point, models.LogisticPointRadius, false)
		c.Pen(overlay)
		c.PlotCircle(pt.Point, models.LogisticPointRadius*clamp01(pos[4+i]), true)
	}

	c.Pen(t.Muted)
	c.PlotText(models.Point{X: 300, Y: 295}, "Height (cm)")
	c.PlotTextLeft(models.Point{X: 0, Y: 100}, "Weight (kg)")
	for i, label := range []string{"160", "170", "180"} {
		c.PlotText(models.Point{X: float64(100 * (i + 1)), Y: 275}, label)
	}
	for i, label := range []string{"60", "70", "80"} {
		c.PlotTextRight(models.Point{X: 40, Y: 240 - float64(50*i)}, label)
	}
	return c
}

func (v LogisticView) View() string {
	s := v.styles
	current := v.model.At(v.Step())
	legend := s.LegendPos.Render("●") + s.Muted.Render(" Normal Weight   ") +
		s.LegendNeg.Render("●") + s.Muted.Render(" Overweight")
	info := lipgloss.JoinVertical(lipgloss.Left,
		s.row("Boundary", current.Equation()),
		s.row("Accuracy", fmt.Sprintf("%.1f%%", current.Accuracy())),
		legend,
		v.progress(v.model.Frames()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, v.Plot().String(), info, "", v.controls())
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
