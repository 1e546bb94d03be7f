package models

import (
	"fmt"
	"time"
)

type TreeNode struct {
	ID    string
	Label string
	Left  *TreeNode
	Right *TreeNode
}

// TreeFields lists the selectable split fields in menu order.
var TreeFields = []string{"BMI", "Age", "Cholesterol"}

const DefaultTreeField = "BMI"

var trees = map[string]*TreeNode{
	"BMI": {
		ID:    "root",
		Label: "BMI ≥ 25?",
		Left:  &TreeNode{ID: "left", Label: "Normal"},
		Right: &TreeNode{ID: "right", Label: "Overweight"},
	},
	"Age": {
		ID:    "root",
		Label: "Age ≥ 40?",
		Left:  &TreeNode{ID: "left", Label: "Young"},
		Right: &TreeNode{ID: "right", Label: "Old"},
	},
	"Cholesterol": {
		ID:    "root",
		Label: "Cholesterol > 200?",
		Left:  &TreeNode{ID: "left", Label: "Normal"},
		Right: &TreeNode{ID: "right", Label: "High"},
	},
}

var nodePositions = map[string]Point{
	"root":  {300, 50},
	"left":  {150, 150},
	"right": {450, 150},
}

const (
	TreeNodeRadius = 40.0
	edgeInset      = 20.0
)

const TreeDescription = "A decision tree makes decisions based on splitting data by chosen fields. " +
	"The root node shows the primary decision, with branch nodes representing outcomes."

func Tree(field string) (*TreeNode, error) {
	t, ok := trees[field]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, field)
	}
	return t, nil
}

// NextField cycles through TreeFields. Unknown fields restart at the first.
func NextField(field string) string {
	for i, f := range TreeFields {
		if f == field {
			return TreeFields[(i+1)%len(TreeFields)]
		}
	}
	return TreeFields[0]
}

type PlacedNode struct {
	ID    string
	Label string
	Pos   Point
}

type TreeLayout struct {
	Nodes []PlacedNode
	Edges []Line
}

// Layout places the root and its children at the fixed positions. Edges run
// from just below the root to just above each child.
func (t *TreeNode) Layout() TreeLayout {
	var out TreeLayout
	root := nodePositions["root"]
	for _, child := range []*TreeNode{t.Left, t.Right} {
		if child == nil {
			continue
		}
		pos := nodePositions[child.ID]
		out.Edges = append(out.Edges, Line{X1: root.X, Y1: root.Y + edgeInset, X2: pos.X, Y2: pos.Y - edgeInset})
	}
	out.Nodes = append(out.Nodes, PlacedNode{ID: t.ID, Label: t.Label, Pos: root})
	for _, child := range []*TreeNode{t.Left, t.Right} {
		if child == nil {
			continue
		}
		out.Nodes = append(out.Nodes, PlacedNode{ID: child.ID, Label: child.Label, Pos: nodePositions[child.ID]})
	}
	return out
}

// DecisionTree is driven by field selection rather than a timer; its frames
// are the selectable fields.
type DecisionTree struct{}

func (DecisionTree) Name() string            { return "decision_tree" }
func (DecisionTree) Title() string           { return "Decision Tree" }
func (DecisionTree) Frames() int             { return len(TreeFields) }
func (DecisionTree) Interval() time.Duration { return 0 }

func (DecisionTree) Field(step int) string {
	return TreeFields[wrap(step, len(TreeFields))]
}

func (w DecisionTree) At(step int) *TreeNode {
	return trees[w.Field(step)]
}

func (DecisionTree) Params(int) []Param { return nil }

func (DecisionTree) Metric(int) (Param, bool) { return Param{}, false }
