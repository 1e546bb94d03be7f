package viz

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/fegerar/folio/internal/playback"
)

// FPS is the rate of spring animation frames.
const FPS = 60

const (
	springFrequency = 6.0
	springDamping   = 1.0
	settleEpsilon   = 1e-3
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// frameMsg advances the springs of the view with the same id.
type frameMsg struct {
	id   int
	time time.Time
}

func frame(id int) tea.Cmd {
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg {
		return frameMsg{id: id, time: t}
	})
}

// springField eases a vector of values toward their targets. Faster playback
// stiffens the springs so a transition finishes within one step.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
	target []float64
}

func newSpringField(initial []float64, speed playback.Speed) springField {
	s := springField{
		pos:    append([]float64(nil), initial...),
		vel:    make([]float64, len(initial)),
		target: append([]float64(nil), initial...),
	}
	s.setSpeed(speed)
	return s
}

func (s *springField) setSpeed(speed playback.Speed) {
	s.spring = harmonica.NewSpring(harmonica.FPS(FPS), springFrequency*float64(speed), springDamping)
}

func (s *springField) retarget(target []float64) {
	if len(target) != len(s.pos) {
		s.pos = append([]float64(nil), target...)
		s.vel = make([]float64, len(target))
	}
	s.target = append(s.target[:0], target...)
}

// step advances every value by one frame and reports whether any is still
// moving. Settled values snap onto their target.
func (s *springField) step() bool {
	moving := false
	for i := range s.pos {
		p, v := s.spring.Update(s.pos[i], s.vel[i], s.target[i])
		if math.Abs(p-s.target[i]) < settleEpsilon && math.Abs(v) < settleEpsilon {
			p, v = s.target[i], 0
		} else {
			moving = true
		}
		s.pos[i], s.vel[i] = p, v
	}
	return moving
}

func (s *springField) settled() bool {
	for i := range s.pos {
		if s.pos[i] != s.target[i] || s.vel[i] != 0 {
			return false
		}
	}
	return true
}

// snap jumps straight to the targets.
func (s *springField) snap() {
	copy(s.pos, s.target)
	for i := range s.vel {
		s.vel[i] = 0
	}
}
