package gallery

import (
	"errors"
	"testing"
)

func TestRegistryGet(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"decision_tree", "linear_regression", "logistic_regression", "mlp"} {
		w, err := r.Get(name)
		if err != nil {
			t.Fatalf("get %s: %v", name, err)
		}
		if w.Name() != name {
			t.Errorf("expected %s, got %s", name, w.Name())
		}
	}

	if _, err := r.Get("svm"); !errors.Is(err, ErrUnknownWidget) {
		t.Errorf("expected ErrUnknownWidget, got %v", err)
	}
}

func TestRegistryOrder(t *testing.T) {
	r := NewRegistry()
	names := r.List()
	if len(names) != 4 || names[0] != "decision_tree" || names[3] != "mlp" {
		t.Errorf("unexpected order %v", names)
	}
	if len(r.Animated()) != 3 {
		t.Errorf("expected 3 animated widgets, got %d", len(r.Animated()))
	}
}
