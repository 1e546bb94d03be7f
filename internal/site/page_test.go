package site

import (
	"strings"
	"testing"

	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/google/go-cmp/cmp"
)

func TestRenderPage(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Head.Analytics = []string{`<script defer src="/_vercel/insights/script.js"></script>`}

	page, err := NewPage(cfg, gallery.NewRegistry())
	if err != nil {
		t.Fatalf("new page: %v", err)
	}
	out, err := RenderBytes(page)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		`<html lang="en">`,
		`<title>Federico Gerardi</title>`,
		`<link rel="canonical" href="https://federicogerardi.ovh/">`,
		`content="Computer Scientist, Data Scientist, Systems Engineer"`,
		`<span class="sr-only">Federico Gerardi</span>`,
		`style="transition-delay: 25ms"`,
		`<script defer src="/_vercel/insights/script.js"></script>`,
		`href="https://x.com/f3gerar" target="_blank" rel="noopener noreferrer"`,
		`<strong>data science</strong>`,
		`id="logistic_regression"`,
		`href="widgets/mlp/3.svg"`,
		`Loss (MSE): 5625.00`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Count(html, "<svg") != 4 {
		t.Errorf("expected 4 inline widgets, got %d", strings.Count(html, "<svg"))
	}
}

func TestNameTransitionLetters(t *testing.T) {
	n := NewNameTransition("Federico Gerardi", "fegerar")
	if len(n.From) != 16 || len(n.To) != 7 {
		t.Fatalf("unexpected letter counts %d %d", len(n.From), len(n.To))
	}
	if n.From[8].Char != "\u00a0" {
		t.Errorf("space should become a non-breaking space, got %q", n.From[8].Char)
	}
	if n.To[6].Delay != 150 {
		t.Errorf("expected 150ms delay, got %d", n.To[6].Delay)
	}
}

func TestNewPageUnknownWidget(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Widgets = []string{"perceptron"}
	if _, err := NewPage(cfg, gallery.NewRegistry()); err == nil {
		t.Error("expected unknown widget error")
	}
}

func TestRenderMarkdownSanitizes(t *testing.T) {
	out, err := RenderMarkdown("hello <script>alert(1)</script> **there**")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "<script") {
		t.Errorf("script should be stripped: %s", out)
	}
	if !strings.Contains(string(out), "<strong>there</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
}

func TestWidgetInfo(t *testing.T) {
	reg := gallery.NewRegistry()
	tests := []struct {
		widget string
		step   int
		want   []string
	}{
		{"linear_regression", 4, []string{"Equation: y = 0.50x + 50.00", "Loss (MSE): 0.00"}},
		{"logistic_regression", 4, nil},
		{"mlp", 2, []string{"Phase: Hidden Layer 2 Activation"}},
		{"mlp", 3, []string{"Phase: Output Prediction", "Prediction: Overweight"}},
	}
	for _, tt := range tests {
		w, err := reg.Get(tt.widget)
		if err != nil {
			t.Fatal(err)
		}
		got := WidgetInfo(w, tt.step)
		if tt.want == nil {
			if len(got) != 2 || got[1] != "Accuracy: 100.0%" {
				t.Errorf("%s: unexpected info %v", tt.widget, got)
			}
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("%s step %d mismatch (-want +got):\n%s", tt.widget, tt.step, diff)
		}
	}
}
