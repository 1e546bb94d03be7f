package viz

import (
	"testing"
)

func testStyles() *Styles {
	return NewStyles(GetTheme("light"))
}

func TestNameTransition(t *testing.T) {
	n := NewNameTransition("Federico Gerardi", "fegerar", testStyles())
	if n.Text() != "Federico Gerardi" || !n.Done() {
		t.Fatalf("initial text %q", n.Text())
	}

	n, cmd := n.Toggle()
	if cmd == nil {
		t.Fatal("toggle should schedule a letter tick")
	}
	if n.Text() != "Federico Gerardi" {
		t.Errorf("no letter should flip before the first tick, got %q", n.Text())
	}

	n, _ = n.Update(nameTickMsg{id: n.id, tag: n.tag})
	if n.Text() != "federico Gerardi" {
		t.Errorf("after one tick got %q", n.Text())
	}

	for i := 0; i < 20; i++ {
		n, _ = n.Update(nameTickMsg{id: n.id, tag: n.tag})
	}
	if n.Text() != "fegerar" || !n.Done() || !n.ShowingHandle() {
		t.Errorf("expected handle, got %q", n.Text())
	}
}

func TestNameTransitionIgnoresStaleTicks(t *testing.T) {
	n := NewNameTransition("Federico Gerardi", "fegerar", testStyles())
	n, _ = n.Toggle()
	stale := nameTickMsg{id: n.id, tag: n.tag}
	n, _ = n.Toggle()

	n, cmd := n.Update(stale)
	if cmd != nil || n.revealed != 0 {
		t.Error("tick from an earlier toggle should be ignored")
	}

	other := NewNameTransition("a", "b", testStyles())
	n, _ = n.Update(nameTickMsg{id: other.id, tag: n.tag})
	if n.revealed != 0 {
		t.Error("tick for another header should be ignored")
	}
}
