package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fegerar/folio/internal/models"
	"github.com/fegerar/folio/internal/playback"
)

// Widget is the terminal view of one visualization. Views ignore messages
// addressed to other views, so the page can broadcast everything that is not
// a key press.
type Widget interface {
	Name() string
	Title() string
	Init() tea.Cmd
	Update(msg tea.Msg) (Widget, tea.Cmd)
	View() string
}

// NewWidget builds the view for a registered widget.
func NewWidget(w models.Widget, speed playback.Speed, styles *Styles) (Widget, error) {
	switch w := w.(type) {
	case models.LinearRegression:
		return NewLinearView(speed, styles)
	case models.LogisticRegression:
		return NewLogisticView(speed, styles)
	case models.MultiLayerPerceptron:
		return NewMLPView(speed, styles)
	case models.DecisionTree:
		return NewTreeView(styles), nil
	default:
		return nil, fmt.Errorf("no terminal view for widget %s", w.Name())
	}
}

// animated is the playback half shared by the timer-driven views: a tagged
// tick chain, springs easing between snapshots and the control strip.
type animated struct {
	player    playback.Player
	springs   springField
	animating bool
	keys      keyMap
	styles    *Styles
}

func newAnimated(w models.Widget, speed playback.Speed, styles *Styles, initial []float64) (animated, error) {
	p, err := playback.NewPlayer(w.Frames(), w.Interval())
	if err != nil {
		return animated{}, err
	}
	if speed != 0 {
		if !speed.Valid() {
			return animated{}, playback.ErrUnknownSpeed
		}
		p.Speed = speed
	}
	return animated{
		player:  p,
		springs: newSpringField(initial, p.Speed),
		keys:    newKeyMap(),
		styles:  styles,
	}, nil
}

func (a animated) Init() tea.Cmd {
	return a.player.Init()
}

// Step is the index of the snapshot currently shown.
func (a animated) Step() int { return a.player.Step }

func (a animated) Playing() bool { return a.player.Playing }

func (a animated) Speed() playback.Speed { return a.player.Speed }

// update handles ticks, spring frames and playback keys. advanced reports a
// step change so the caller can retarget its springs.
func (a *animated) update(msg tea.Msg) (cmd tea.Cmd, advanced bool) {
	switch msg := msg.(type) {
	case playback.TickMsg:
		if msg.ID != a.player.ID() {
			return nil, false
		}
		before := a.player.Step
		a.player, cmd = a.player.Update(msg)
		return cmd, a.player.Step != before
	case frameMsg:
		if msg.id != a.player.ID() {
			return nil, false
		}
		if a.springs.step() {
			return frame(msg.id), false
		}
		a.animating = false
		return nil, false
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.play):
			a.player, cmd = a.player.Toggle()
			return cmd, false
		case key.Matches(msg, a.keys.speed):
			a.player, cmd = a.player.SetSpeed(playback.SpeedAt(speedIndex(msg.String())))
			a.springs.setSpeed(a.player.Speed)
			return cmd, false
		}
	}
	return nil, false
}

// retarget points the springs at a new snapshot and starts the frame chain
// unless one is already running or there is nothing to move.
func (a *animated) retarget(target []float64) tea.Cmd {
	a.springs.retarget(target)
	if a.animating || a.springs.settled() {
		return nil
	}
	a.animating = true
	return frame(a.player.ID())
}

func (a animated) controls() string {
	s := a.styles
	status := s.StatusOn.Render("▶ playing")
	if !a.player.Playing {
		status = s.StatusOff.Render("⏸ paused")
	}
	chips := make([]string, 0, len(playback.Speeds))
	for _, sp := range playback.Speeds {
		if sp == a.player.Speed {
			chips = append(chips, s.ActiveChip.Render(sp.String()))
		} else {
			chips = append(chips, s.Chip.Render(sp.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, status, "   ", strings.Join(chips, " "))
}

func (a animated) progress(n int) string {
	return a.styles.Muted.Render(fmt.Sprintf("step %d/%d", a.player.Step+1, n))
}

// row renders a label/value pair.
func (s *Styles) row(label, value string) string {
	return s.Label.Render(label) + s.Value.Render(value)
}
