package export

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/viz"
)

// Colors of the published widgets.
const (
	ColorPrimary  = "#2563eb"
	ColorPoint    = "#f87171"
	ColorNormal   = "#60a5fa"
	ColorMuted    = "#9ca3af"
	ColorText     = "#4b5563"
	ColorAxis     = "#6b7280"
	ColorGrid     = "#e2e8f0"
	ColorPlotBack = "#f8fafc"
)

var ErrUnsupportedWidget = errors.New("export: unsupported widget")

// Options tune a widget frame. Field selects the decision tree split and
// overrides the step for that widget.
type Options struct {
	ShowValues bool
	Field      string
}

type svgWriter struct {
	sb strings.Builder
}

func (w *svgWriter) open(background string) {
	fmt.Fprintf(&w.sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect x="0" y="0" width="%.0f" height="%.0f" fill="%s"/>
`, models.CanvasWidth, models.CanvasHeight, models.CanvasWidth, models.CanvasHeight,
		models.CanvasWidth, models.CanvasHeight, background)
}

func (w *svgWriter) line(l models.Line, stroke string, width float64, extra string) {
	if !l.Finite() {
		return
	}
	fmt.Fprintf(&w.sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%g"%s/>
`, l.X1, l.Y1, l.X2, l.Y2, stroke, width, extra)
}

func (w *svgWriter) circle(p models.Point, r float64, fill string, extra string) {
	fmt.Fprintf(&w.sb, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s"%s/>
`, p.X, p.Y, r, fill, extra)
}

func (w *svgWriter) text(p models.Point, anchor, fill string, size int, s string) {
	fmt.Fprintf(&w.sb, `<text x="%.2f" y="%.2f" text-anchor="%s" fill="%s" font-size="%d">%s</text>
`, p.X, p.Y, anchor, fill, size, html.EscapeString(s))
}

func (w *svgWriter) close() string {
	w.sb.WriteString("</svg>\n")
	return w.sb.String()
}

// WidgetSVG renders one frame of a widget as a standalone 600x300 SVG.
func WidgetSVG(widget models.Widget, step int, opts Options) (string, error) {
	switch m := widget.(type) {
	case models.LinearRegression:
		return LinearSVG(m.At(step)), nil
	case models.LogisticRegression:
		return LogisticSVG(m.At(step)), nil
	case models.MultiLayerPerceptron:
		return MLPSVG(step, opts.ShowValues), nil
	case models.DecisionTree:
		field := opts.Field
		if field == "" {
			field = m.Field(step)
		}
		return TreeSVG(field)
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedWidget, widget.Name())
}

func LinearSVG(p models.LinearParams) string {
	var w svgWriter
	w.open("#fff")
	for _, pt := range models.LinearPoints {
		w.circle(pt, models.LinearRegressionPointRadius, ColorPoint, "")
	}
	for _, r := range p.Residuals() {
		w.line(r, ColorMuted, 1, ` stroke-dasharray="4"`)
	}
	w.line(p.Line(), ColorPrimary, 3, "")
	return w.close()
}

func LogisticSVG(p models.LogisticParams) string {
	var w svgWriter
	w.open(ColorPlotBack)
	for _, l := range viz.GridLines() {
		w.line(l, ColorGrid, 1, "")
	}
	w.line(p.Boundary(), ColorPrimary, 3, "")
	for i, pt := range models.LogisticPoints {
		prob := p.Probabilities()[i]
		base, overlay := ColorNormal, ColorPoint
		if pt.Category == 1 {
			base, overlay = ColorPoint, ColorNormal
		}
		w.circle(pt.Point, models.LogisticPointRadius, base, ` opacity="0.8"`)
		w.circle(pt.Point, models.LogisticPointRadius*prob, overlay, "")
		w.circle(pt.Point, models.LogisticPointRadius, "none", fmt.Sprintf(` stroke="%s" stroke-width="1"`, ColorText))
	}
	w.text(models.Point{X: 300, Y: 295}, "middle", ColorText, 14, "Height (cm)")
	fmt.Fprintf(&w.sb, `<text x="20" y="150" text-anchor="middle" transform="rotate(-90, 20, 150)" fill="%s" font-size="14">Weight (kg)</text>
`, ColorText)
	for i, label := range []string{"160", "170", "180"} {
		w.text(models.Point{X: float64(100 * (i + 1)), Y: 275}, "middle", ColorAxis, 12, label)
	}
	for i, label := range []string{"60", "70", "80"} {
		w.text(models.Point{X: 40, Y: 240 - float64(50*i)}, "end", ColorAxis, 12, label)
	}
	return w.close()
}

func MLPSVG(step int, showValues bool) string {
	var mlp models.MultiLayerPerceptron
	var w svgWriter
	w.open("#fff")
	for _, c := range mlp.Connections(step) {
		w.line(c.Line, ColorMuted, 1, fmt.Sprintf(` opacity="%g"`, c.Opacity))
	}
	last := len(models.MLPLayers) - 1
	for _, n := range mlp.Neurons(step) {
		w.circle(n.Pos, models.NeuronRadius, ColorPrimary, fmt.Sprintf(` opacity="%.2f"`, n.Opacity))
		if showValues {
			w.text(models.Point{X: n.Pos.X, Y: n.Pos.Y + 5}, "middle", "#fff", 10, fmt.Sprintf("%.1f", n.Activation))
		}
		switch n.Layer {
		case 0:
			w.text(models.Point{X: n.Pos.X - 35, Y: n.Pos.Y + 5}, "end", ColorText, 12, n.Label)
		case last:
			w.text(models.Point{X: n.Pos.X + 35, Y: n.Pos.Y + 5}, "start", ColorText, 12, n.Label)
		}
	}
	for _, l := range models.MLPLayers {
		w.text(models.Point{X: l.X, Y: 5}, "middle", ColorText, 14, l.Name)
	}
	w.text(models.Point{X: 15, Y: 300}, "start", ColorText, 12, "Phase: "+mlp.Phase(step))
	return w.close()
}

func TreeSVG(field string) (string, error) {
	tree, err := models.Tree(field)
	if err != nil {
		return "", err
	}
	layout := tree.Layout()
	var w svgWriter
	w.open("#fff")
	for _, e := range layout.Edges {
		w.line(e, ColorMuted, 2, "")
	}
	for _, n := range layout.Nodes {
		w.circle(n.Pos, models.TreeNodeRadius, ColorPrimary, "")
		w.text(models.Point{X: n.Pos.X, Y: n.Pos.Y + 5}, "middle", "#fff", 14, n.Label)
	}
	return w.close(), nil
}

// CanvasToSVG converts a Braille canvas to SVG format, one dot per set
// sub-pixel in the cell's pen color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#fff"/>
`, width, height, width, height)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 || r > 0x28ff {
				continue
			}
			pattern := int(r - 0x2800)
			fill := string(canvas.Colors[row][col])
			if fill == "" {
				fill = ColorText
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws a recorded metric series as a polyline.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder

	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#fff"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor)

	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			fmt.Fprintf(&sb, "%.1f,%.1f", x, y)
		} else {
			fmt.Fprintf(&sb, " L%.1f,%.1f", x, y)
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
