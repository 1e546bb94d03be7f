package viz

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
)

// TreeView shows the single-split tree for the selected field. It has no
// timer; the field is cycled from the keyboard.
type TreeView struct {
	model  models.DecisionTree
	field  string
	keys   keyMap
	styles *Styles
}

func NewTreeView(styles *Styles) TreeView {
	return TreeView{field: models.DefaultTreeField, keys: newKeyMap(), styles: styles}
}

func (v TreeView) Name() string  { return v.model.Name() }
func (v TreeView) Title() string { return v.model.Title() }
func (v TreeView) Field() string { return v.field }

func (v TreeView) Init() tea.Cmd { return nil }

func (v TreeView) Update(msg tea.Msg) (Widget, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, v.keys.field) {
		v.field = models.NextField(v.field)
	}
	return v, nil
}

// SetField selects a field by name. Unknown names are rejected.
func (v TreeView) SetField(field string) (TreeView, error) {
	if _, err := models.Tree(field); err != nil {
		return v, err
	}
	v.field = field
	return v, nil
}

func (v TreeView) Plot() *Canvas {
	t := v.styles.Theme
	c := NewPlotCanvas()
	tree, err := models.Tree(v.field)
	if err != nil {
		return c
	}
	layout := tree.Layout()

	c.Pen(t.Subtle)
	for _, e := range layout.Edges {
		c.PlotLine(e)
	}
	for _, n := range layout.Nodes {
		c.Pen(t.Primary)
		c.PlotCircle(n.Pos, models.TreeNodeRadius, false)
		c.Pen(t.Text)
		c.PlotText(n.Pos, n.Label)
	}
	return c
}

func (v TreeView) View() string {
	s := v.styles
	chips := []string{s.Muted.Render("Field")}
	for _, f := range models.TreeFields {
		if f == v.field {
			chips = append(chips, s.ActiveChip.Render(f))
		} else {
			chips = append(chips, s.Chip.Render(f))
		}
	}
	selector := lipgloss.JoinHorizontal(lipgloss.Center, chips...)
	desc := s.Muted.Width(PlotCols).Render(models.TreeDescription)
	return lipgloss.JoinVertical(lipgloss.Left, selector, "", v.Plot().String(), desc)
}
