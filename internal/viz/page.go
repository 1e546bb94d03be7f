package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/fegerar/folio/internal/config"
	"github.com/fegerar/folio/internal/gallery"
	"github.com/fegerar/folio/internal/logging"
)

const (
	pageWidth  = PlotCols + 6
	helpHeight = 2
)

// App is the whole portfolio page: name header, intro, project cards, the
// widgets and the footer, scrolled through a viewport. Key presses go to the
// focused widget; every other message is broadcast.
type App struct {
	cfg      *config.Config
	styles   *Styles
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	name     NameTransition
	intro    string
	widgets  []Widget
	focus    int
	chrome   bool
	width    int
	height   int
	ready    bool
	log      *log.Logger
}

type Option func(*App)

// WithLogger sets the logger. The default discards everything so the
// alternate screen stays clean.
func WithLogger(l *log.Logger) Option {
	return func(a *App) { a.log = l }
}

// WidgetOnly drops the page chrome and shows just the widgets.
func WidgetOnly() Option {
	return func(a *App) { a.chrome = false }
}

// NewApp builds the page for the widgets named in cfg.Widgets.
func NewApp(cfg *config.Config, reg *gallery.Registry, opts ...Option) (App, error) {
	return NewAppFor(cfg, reg, cfg.Widgets, opts...)
}

// NewAppFor builds the page for an explicit widget list.
func NewAppFor(cfg *config.Config, reg *gallery.Registry, names []string, opts ...Option) (App, error) {
	styles := NewStyles(GetTheme(cfg.Theme))
	a := App{
		cfg:    cfg,
		styles: styles,
		keys:   newKeyMap(),
		help:   help.New(),
		chrome: true,
		width:  pageWidth,
		log:    logging.Discard(),
	}
	for _, opt := range opts {
		opt(&a)
	}
	a.name = NewNameTransition(cfg.Site.Name, cfg.Site.Handle, styles)

	speed := cfg.PlaybackSpeed()
	for _, n := range names {
		w, err := reg.Get(n)
		if err != nil {
			return App{}, err
		}
		view, err := NewWidget(w, speed, styles)
		if err != nil {
			return App{}, err
		}
		a.widgets = append(a.widgets, view)
	}
	a.viewport = a.newViewport(pageWidth, 40)
	a.renderIntro()
	a.refresh()
	a.log.Debug("page ready", "widgets", len(a.widgets), "theme", cfg.Theme, "speed", speed)
	return a, nil
}

func (a App) newViewport(w, h int) viewport.Model {
	vp := viewport.New(w, h)
	vp.KeyMap = viewport.KeyMap{
		Up:       a.keys.up,
		Down:     a.keys.down,
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
	}
	return vp
}

// Focused is the index of the widget receiving key presses.
func (a App) Focused() int { return a.focus }

func (a App) Widgets() []Widget { return a.widgets }

func (a App) ThemeName() string { return a.styles.Theme.Name }

func (a App) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.widgets))
	for _, w := range a.widgets {
		cmds = append(cmds, w.Init())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height, a.ready = msg.Width, msg.Height, true
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - helpHeight
		a.help.Width = msg.Width
		a.renderIntro()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.help):
			a.help.ShowAll = !a.help.ShowAll
		case key.Matches(msg, a.keys.next):
			a.moveFocus(1)
		case key.Matches(msg, a.keys.prev):
			a.moveFocus(-1)
		case key.Matches(msg, a.keys.name):
			var cmd tea.Cmd
			a.name, cmd = a.name.Toggle()
			cmds = append(cmds, cmd)
		case key.Matches(msg, a.keys.theme):
			a.cycleTheme()
		case key.Matches(msg, a.keys.up, a.keys.down) ||
			key.Matches(msg, a.viewport.KeyMap.PageUp, a.viewport.KeyMap.PageDown):
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(msg)
			cmds = append(cmds, cmd)
		default:
			if len(a.widgets) > 0 {
				var cmd tea.Cmd
				a.widgets[a.focus], cmd = a.widgets[a.focus].Update(msg)
				cmds = append(cmds, cmd)
			}
		}
	case tea.MouseMsg:
		var cmd tea.Cmd
		a.viewport, cmd = a.viewport.Update(msg)
		cmds = append(cmds, cmd)
	default:
		var cmd tea.Cmd
		a.name, cmd = a.name.Update(msg)
		cmds = append(cmds, cmd)
		for i, w := range a.widgets {
			a.widgets[i], cmd = w.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	a.refresh()
	return a, tea.Batch(cmds...)
}

func (a *App) moveFocus(delta int) {
	n := len(a.widgets)
	if n == 0 {
		return
	}
	a.focus = ((a.focus+delta)%n + n) % n
	a.log.Debug("focus", "widget", a.widgets[a.focus].Name())
}

func (a *App) cycleTheme() {
	next := config.NextTheme(a.styles.Theme.Name)
	a.styles.Apply(GetTheme(next))
	a.renderIntro()
	a.log.Info("theme changed", "theme", next)
}

// glamourStyle picks the markdown style matching the active theme.
func (a App) glamourStyle() string {
	switch a.styles.Theme.Name {
	case "dark":
		return "dark"
	case "light":
		return "light"
	}
	return "notty"
}

func (a *App) renderIntro() {
	if a.cfg.Intro == "" {
		a.intro = ""
		return
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(a.glamourStyle()),
		glamour.WithWordWrap(a.contentWidth()),
	)
	if err != nil {
		a.log.Warn("markdown renderer unavailable", "err", err)
		a.intro = a.styles.Text.Width(a.contentWidth()).Render(a.cfg.Intro)
		return
	}
	out, err := r.Render(a.cfg.Intro)
	if err != nil {
		a.log.Warn("rendering intro", "err", err)
		a.intro = a.styles.Text.Width(a.contentWidth()).Render(a.cfg.Intro)
		return
	}
	a.intro = strings.TrimRight(out, "\n")
}

// contentWidth is fixed to the plot width so widgets never reflow.
func (a App) contentWidth() int {
	return pageWidth
}

// WidgetPanel frames a widget with its title, highlighted when focused.
func WidgetPanel(w Widget, focused bool, s *Styles) string {
	style := s.Panel
	if focused {
		style = s.Focused
	}
	title := s.Title.Render(w.Title())
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", w.View()))
}

func (a App) content() string {
	parts := make([]string, 0, len(a.widgets)+5)
	if a.chrome {
		parts = append(parts, a.name.View())
		if a.intro != "" {
			parts = append(parts, a.intro)
		}
		if grid := ProjectGrid(a.cfg.Projects, a.cfg.Site.BaseURL, a.contentWidth(), a.styles); grid != "" {
			parts = append(parts, grid)
		}
	}
	for i, w := range a.widgets {
		parts = append(parts, WidgetPanel(w, i == a.focus && len(a.widgets) > 1, a.styles))
	}
	if a.chrome {
		parts = append(parts, Footer(a.cfg.Social, a.contentWidth(), a.styles))
	}
	page := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if a.width > a.contentWidth() {
		page = lipgloss.PlaceHorizontal(a.width, lipgloss.Center, page)
	}
	return page
}

func (a *App) refresh() {
	a.viewport.SetContent(a.content())
}

func (a App) View() string {
	if !a.ready {
		return a.content()
	}
	return fmt.Sprintf("%s\n%s", a.viewport.View(), a.help.View(a.keys))
}
