package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fegerar/folio/internal/config"
)

func renderCard(t *testing.T, c ProjectCard) string {
	t.Helper()
	var buf bytes.Buffer
	if err := RenderCard(&buf, c); err != nil {
		t.Fatalf("render card: %v", err)
	}
	return buf.String()
}

func TestProjectCardLinks(t *testing.T) {
	external := renderCard(t, ProjectCard{Title: "folio", Link: "https://github.com/fegerar/folio", External: true})
	if !strings.Contains(external, `target="_blank"`) || !strings.Contains(external, `rel="noopener noreferrer"`) {
		t.Errorf("external card should open in a new tab: %s", external)
	}

	internal := renderCard(t, ProjectCard{Title: "Obesity Prediction", Link: "/n/obesity-prediction"})
	if strings.Contains(internal, "target=") || strings.Contains(internal, "rel=") {
		t.Errorf("internal card should be a plain link: %s", internal)
	}
	if !strings.Contains(internal, `href="/n/obesity-prediction"`) {
		t.Errorf("missing href: %s", internal)
	}
}

func TestProjectCardOptionalParts(t *testing.T) {
	bare := renderCard(t, CardFromProject(config.Project{Title: "t", Description: "d", Link: "/x"}))
	if strings.Contains(bare, `class="tags"`) || strings.Contains(bare, "<img") {
		t.Errorf("empty tags and image should render nothing: %s", bare)
	}

	full := renderCard(t, ProjectCard{Title: "t", Link: "/x", Image: "/ppw.png", Tags: []string{"Go", "TUI"}})
	if strings.Count(full, `class="tag"`) != 2 {
		t.Errorf("expected 2 tags: %s", full)
	}
	if !strings.Contains(full, `<img src="/ppw.png"`) {
		t.Errorf("expected image: %s", full)
	}
}

func TestCardFromProjectDefaults(t *testing.T) {
	c := CardFromProject(config.Project{Title: "t"})
	if c.Tags == nil || len(c.Tags) != 0 {
		t.Error("tags default to an empty list")
	}
	if c.External {
		t.Error("external defaults to false")
	}
}
