package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const blank = 0x2800

// Plot size in terminal cells. The sub-pixel grid keeps the 2:1 aspect of
// the 600x300 plot.
const (
	PlotCols = 72
	PlotRows = 18
)

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	// Colors holds the pen color of the last write to each cell.
	Colors [][]lipgloss.Color
	pen    lipgloss.Color
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]lipgloss.Color, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]lipgloss.Color, w)
	}
	c.Clear()
	return c
}

// NewPlotCanvas returns a canvas sized for the shared 600x300 plot.
func NewPlotCanvas() *Canvas {
	return NewCanvas(PlotCols, PlotRows)
}

// Pen sets the color used by subsequent writes. An empty color renders with
// the terminal default.
func (c *Canvas) Pen(col lipgloss.Color) {
	c.pen = col
}

// Set sets a pixel at (x, y) where x,y are in "sub-pixel" coordinates.
// The canvas size in sub-pixels is (Width*2) x (Height*4).
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}
	if c.Grid[row][col] < blank || c.Grid[row][col] > blank+0xff {
		// a text overlay owns this cell
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Colors[row][col] = c.pen
}

// Unset clears a pixel
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	mask := ^rune(pixelMap[subY][subX])
	c.Grid[row][col] &= mask
	if c.Grid[row][col] < blank {
		c.Grid[row][col] = blank
	}
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = blank
			c.Colors[i][j] = ""
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawCircle draws the outline of a circle with the midpoint algorithm.
func (c *Canvas) DrawCircle(cx, cy, r int) {
	if r <= 0 {
		c.Set(cx, cy)
		return
	}
	x, y, d := r, 0, 1-r
	for x >= y {
		for _, p := range [8][2]int{
			{x, y}, {y, x}, {-y, x}, {-x, y},
			{-x, -y}, {-y, -x}, {y, -x}, {x, -y},
		} {
			c.Set(cx+p[0], cy+p[1])
		}
		y++
		if d < 0 {
			d += 2*y + 1
		} else {
			x--
			d += 2*(y-x) + 1
		}
	}
}

// FillCircle sets every pixel within r of the center.
func (c *Canvas) FillCircle(cx, cy, r int) {
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy)
			}
		}
	}
}

// Text writes s into cells starting at (col, row), replacing any braille
// there. Characters past the right edge are dropped.
func (c *Canvas) Text(col, row int, s string) {
	if row < 0 || row >= c.Height {
		return
	}
	for _, r := range s {
		if col >= 0 && col < c.Width {
			c.Grid[row][col] = r
			c.Colors[row][col] = c.pen
		}
		col++
	}
}

// Project maps plot coordinates onto sub-pixels.
func (c *Canvas) Project(x, y float64) (int, int) {
	sx := x / models.CanvasWidth * float64(c.Width*2-1)
	sy := y / models.CanvasHeight * float64(c.Height*4-1)
	return clampPixel(sx), clampPixel(sy)
}

// Scale converts a plot length to sub-pixels along x.
func (c *Canvas) Scale(r float64) int {
	return int(math.Round(r / models.CanvasWidth * float64(c.Width*2-1)))
}

// PlotLine draws a segment given in plot coordinates. Segments with
// non-finite endpoints are skipped.
func (c *Canvas) PlotLine(l models.Line) {
	if !l.Finite() {
		return
	}
	x0, y0 := c.Project(l.X1, l.Y1)
	x1, y1 := c.Project(l.X2, l.Y2)
	c.DrawLine(x0, y0, x1, y1)
}

func (c *Canvas) PlotCircle(p models.Point, r float64, fill bool) {
	x, y := c.Project(p.X, p.Y)
	if fill {
		c.FillCircle(x, y, c.Scale(r))
		return
	}
	c.DrawCircle(x, y, c.Scale(r))
}

// PlotText centers s on a plot coordinate.
func (c *Canvas) PlotText(p models.Point, s string) {
	x, y := c.Project(p.X, p.Y)
	c.Text(x/2-len([]rune(s))/2, y/4, s)
}

// PlotTextLeft starts s at a plot coordinate.
func (c *Canvas) PlotTextLeft(p models.Point, s string) {
	x, y := c.Project(p.X, p.Y)
	c.Text(x/2, y/4, s)
}

// PlotTextRight ends s at a plot coordinate.
func (c *Canvas) PlotTextRight(p models.Point, s string) {
	x, y := c.Project(p.X, p.Y)
	col := x/2 - len([]rune(s)) + 1
	if col < 0 {
		col = 0
	}
	c.Text(col, y/4, s)
}

// String renders the canvas, styling runs of equally colored cells.
func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		var run strings.Builder
		cur := lipgloss.Color("")
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if cur == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(lipgloss.NewStyle().Foreground(cur).Render(run.String()))
			}
			run.Reset()
		}
		for j, r := range row {
			col := c.Colors[i][j]
			if r == blank {
				col = cur
			}
			if col != cur {
				flush()
				cur = col
			}
			run.WriteRune(r)
		}
		flush()
		b.WriteString("\n")
	}
	return b.String()
}

// Plain renders the canvas without colors.
func (c *Canvas) Plain() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

func clampPixel(v float64) int {
	const limit = 1 << 12
	if math.IsNaN(v) {
		return 0
	}
	if v > limit {
		return limit
	}
	if v < -limit {
		return -limit
	}
	return int(math.Round(v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
