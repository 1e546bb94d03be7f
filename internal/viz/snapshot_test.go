package viz

import (
	"strings"
	"testing"

	"github.com/fegerar/folio/internal/gallery"
)

func TestSnapshotEveryFrame(t *testing.T) {
	s := testStyles()
	for _, w := range gallery.NewRegistry().All() {
		for step := 0; step < w.Frames(); step++ {
			c, err := Snapshot(w, step, "", s)
			if err != nil {
				t.Fatalf("%s step %d: %v", w.Name(), step, err)
			}
			if strings.TrimSpace(c.Plain()) == "" {
				t.Errorf("%s step %d rendered nothing", w.Name(), step)
			}
		}
	}
}

func TestSnapshotDiffersByStep(t *testing.T) {
	s := testStyles()
	w, _ := gallery.NewRegistry().Get("linear_regression")
	first, _ := Snapshot(w, 0, "", s)
	last, _ := Snapshot(w, w.Frames()-1, "", s)
	if first.Plain() == last.Plain() {
		t.Error("first and last linear frames should differ")
	}
}

func TestSnapshotErrors(t *testing.T) {
	s := testStyles()
	reg := gallery.NewRegistry()
	mlp, _ := reg.Get("mlp")
	if _, err := Snapshot(mlp, mlp.Frames(), "", s); err == nil {
		t.Error("expected out of range error")
	}
	tree, _ := reg.Get("decision_tree")
	if _, err := Snapshot(tree, 0, "Height", s); err == nil {
		t.Error("expected unknown field error")
	}
	if c, err := Snapshot(tree, 0, "Age", s); err != nil || !strings.Contains(c.Plain(), "Age") {
		t.Errorf("expected Age split, err=%v", err)
	}
}
