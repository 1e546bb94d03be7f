package playback

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// TickMsg advances the Player whose ID and tag it carries.
type TickMsg struct {
	ID   int
	Tag  int
	Time time.Time
}

// Player is a Bubble Tea component that advances a State on tagged ticks.
// Every reconfiguration bumps the tag, so a tick scheduled under the old
// configuration is ignored when it arrives.
type Player struct {
	State
	base time.Duration
	id   int
	tag  int
}

func NewPlayer(n int, base time.Duration) (Player, error) {
	st, err := NewState(n)
	if err != nil {
		return Player{}, err
	}
	return Player{State: st, base: base, id: nextID()}, nil
}

func (p Player) ID() int { return p.id }

// Tag is the generation a tick must carry to be accepted.
func (p Player) Tag() int { return p.tag }

// Base is the tick period at 1x.
func (p Player) Base() time.Duration { return p.base }

// Init starts the tick chain when playing.
func (p Player) Init() tea.Cmd {
	if !p.Playing {
		return nil
	}
	return p.tick()
}

func (p Player) Update(msg tea.Msg) (Player, tea.Cmd) {
	m, ok := msg.(TickMsg)
	if !ok || m.ID != p.id || m.Tag != p.tag || !p.Playing {
		return p, nil
	}
	p.Advance()
	return p, p.tick()
}

// Toggle flips playback. Resuming starts a new tick chain.
func (p Player) Toggle() (Player, tea.Cmd) {
	return p.SetPlaying(!p.Playing)
}

func (p Player) SetPlaying(on bool) (Player, tea.Cmd) {
	if p.Playing == on {
		return p, nil
	}
	p.Playing = on
	p.tag++
	if !on {
		return p, nil
	}
	return p, p.tick()
}

// SetSpeed restarts the tick chain at the new period. Invalid speeds are
// ignored.
func (p Player) SetSpeed(s Speed) (Player, tea.Cmd) {
	if !s.Valid() || s == p.Speed {
		return p, nil
	}
	p.Speed = s
	p.tag++
	if !p.Playing {
		return p, nil
	}
	return p, p.tick()
}

func (p Player) tick() tea.Cmd {
	id, tag := p.id, p.tag
	return tea.Tick(p.Interval(p.base), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, Tag: tag, Time: t}
	})
}
