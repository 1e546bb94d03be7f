package viz

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/gallery"
)

func newTestApp(t *testing.T) App {
	t.Helper()
	a, err := NewApp(config.DefaultConfig(), gallery.NewRegistry())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	return a
}

func TestAppContent(t *testing.T) {
	a := newTestApp(t)
	if len(a.Widgets()) != 4 {
		t.Fatalf("expected 4 widgets, got %d", len(a.Widgets()))
	}

	out := a.View()
	for _, want := range []string{"Federico Gerardi", "Obesity Prediction", "Decision Tree", "Multi-Layer Perceptron", "GitHub"} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if !strings.Contains(out, "\x1b]8;;https://github.com/fegerar\x1b\\") {
		t.Error("footer links should be OSC 8 hyperlinks")
	}
}

func TestAppKeysGoToFocusedWidget(t *testing.T) {
	a := newTestApp(t)

	m, _ := a.Update(keyPress("f"))
	a = m.(App)
	if a.Widgets()[0].(TreeView).Field() != "Age" {
		t.Error("f should reach the focused tree")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = m.(App)
	if a.Focused() != 1 {
		t.Fatalf("expected focus 1, got %d", a.Focused())
	}

	m, _ = a.Update(keyPress(" "))
	a = m.(App)
	if a.Widgets()[1].(LinearView).Playing() {
		t.Error("space should pause the focused widget")
	}
	if !a.Widgets()[2].(LogisticView).Playing() {
		t.Error("other widgets keep playing")
	}

	m, _ = a.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.(App).Focused() != 3 {
		t.Errorf("shift+tab should wrap, got %d", m.(App).Focused())
	}
}

func TestAppBroadcastsTicks(t *testing.T) {
	a := newTestApp(t)
	mlp := a.Widgets()[3].(MLPView)

	m, _ := a.Update(tick(mlp.player))
	a = m.(App)
	if a.Widgets()[3].(MLPView).Step() != 1 {
		t.Error("tick should reach the perceptron")
	}
	if a.Widgets()[1].(LinearView).Step() != 0 {
		t.Error("tick for the perceptron should not move the line")
	}
}

func TestAppThemeAndName(t *testing.T) {
	a := newTestApp(t)
	if a.ThemeName() != "light" {
		t.Fatalf("expected light, got %s", a.ThemeName())
	}

	m, _ := a.Update(keyPress("t"))
	a = m.(App)
	if a.ThemeName() != "mono" {
		t.Errorf("expected mono, got %s", a.ThemeName())
	}

	m, cmd := a.Update(keyPress("n"))
	if cmd == nil {
		t.Error("name toggle should schedule letter ticks")
	}
	if !m.(App).name.ShowingHandle() {
		t.Error("n should swap to the handle")
	}
}

func TestAppQuit(t *testing.T) {
	a := newTestApp(t)
	_, cmd := a.Update(keyPress("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestWidgetOnly(t *testing.T) {
	a, err := NewAppFor(config.DefaultConfig(), gallery.NewRegistry(), []string{"mlp"}, WidgetOnly())
	if err != nil {
		t.Fatal(err)
	}
	out := a.View()
	if strings.Contains(out, "Obesity Prediction") {
		t.Error("widget-only page should not render project cards")
	}
	if !strings.Contains(out, "Multi-Layer Perceptron") {
		t.Error("widget title missing")
	}

	if _, err := NewAppFor(config.DefaultConfig(), gallery.NewRegistry(), []string{"nope"}); err == nil {
		t.Error("unknown widget should fail")
	}
}
