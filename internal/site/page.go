package site

import (
	"fmt"
	"html/template"

	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/export"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/models"
)

// LetterDelay is the per-letter stagger of the name swap, in milliseconds.
const LetterDelay = 25

type Letter struct {
	Char  string
	Delay int
}

type NameTransition struct {
	Full string
	From []Letter
	To   []Letter
}

func letters(s string) []Letter {
	out := make([]Letter, 0, len(s))
	for i, r := range []rune(s) {
		ch := string(r)
		if r == ' ' {
			ch = "\u00a0"
		}
		out = append(out, Letter{Char: ch, Delay: i * LetterDelay})
	}
	return out
}

func NewNameTransition(full, handle string) NameTransition {
	return NameTransition{Full: full, From: letters(full), To: letters(handle)}
}

// WidgetSection is one widget frame embedded in the page.
type WidgetSection struct {
	Name   string
	Title  string
	Step   int
	SVG    template.HTML
	Info   []string
	Frames []string
}

type Page struct {
	Lang        string
	Title       string
	Description string
	Canonical   string
	Name        NameTransition
	Intro       template.HTML
	Cards       []ProjectCard
	Widgets     []WidgetSection
	Social      []config.SocialLink
	Fonts       []string
	Stylesheets []string
	Analytics   []template.HTML
	Palette     config.Palette
}

// FramePath is the site-relative path of one widget frame.
func FramePath(name string, step int) string {
	return fmt.Sprintf("widgets/%s/%d.svg", name, step)
}

// NewPage assembles the home page from the config. Widgets show their first
// frame and link to the rest.
func NewPage(cfg *config.Config, reg *gallery.Registry) (*Page, error) {
	palette, ok := config.GetTheme(cfg.Theme)
	if !ok {
		palette, _ = config.GetTheme(config.DefaultTheme)
	}
	intro, err := RenderMarkdown(cfg.Intro)
	if err != nil {
		return nil, fmt.Errorf("rendering intro: %w", err)
	}

	p := &Page{
		Lang:        cfg.Site.Lang,
		Title:       cfg.PageTitle(""),
		Description: cfg.Site.Description,
		Canonical:   cfg.CanonicalURL(),
		Name:        NewNameTransition(cfg.Site.Name, cfg.Site.Handle),
		Intro:       intro,
		Cards:       ProjectGrid(cfg.Projects),
		Social:      cfg.Social,
		Fonts:       cfg.Head.Fonts,
		Stylesheets: cfg.Head.Stylesheets,
		Palette:     palette,
	}
	for _, snippet := range cfg.Head.Analytics {
		p.Analytics = append(p.Analytics, template.HTML(snippet))
	}

	for _, name := range cfg.Widgets {
		w, err := reg.Get(name)
		if err != nil {
			return nil, err
		}
		section, err := NewWidgetSection(w, 0)
		if err != nil {
			return nil, err
		}
		p.Widgets = append(p.Widgets, section)
	}
	return p, nil
}

func NewWidgetSection(w models.Widget, step int) (WidgetSection, error) {
	svg, err := export.WidgetSVG(w, step, export.Options{})
	if err != nil {
		return WidgetSection{}, err
	}
	frames := make([]string, w.Frames())
	for i := range frames {
		frames[i] = FramePath(w.Name(), i)
	}
	return WidgetSection{
		Name:   w.Name(),
		Title:  w.Title(),
		Step:   step,
		SVG:    template.HTML(svg),
		Info:   WidgetInfo(w, step),
		Frames: frames,
	}, nil
}

// WidgetInfo is the caption under a widget frame.
func WidgetInfo(w models.Widget, step int) []string {
	switch m := w.(type) {
	case models.LinearRegression:
		p := m.At(step)
		return []string{
			"Equation: " + p.Equation(),
			fmt.Sprintf("Loss (MSE): %.2f", p.Loss()),
		}
	case models.LogisticRegression:
		p := m.At(step)
		return []string{
			"Decision Boundary Equation: " + p.Equation(),
			fmt.Sprintf("Accuracy: %.1f%%", p.Accuracy()),
		}
	case models.MultiLayerPerceptron:
		info := []string{"Phase: " + m.Phase(step)}
		if pred := m.Prediction(step); pred != "" {
			info = append(info, "Prediction: "+pred)
		}
		return info
	case models.DecisionTree:
		return []string{"Field: " + m.Field(step), models.TreeDescription}
	}
	return nil
}
