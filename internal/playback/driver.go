package playback

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Driver owns a State and advances it on a timer without a UI loop. It is safe
// for concurrent use. OnStep callbacks run on the timer goroutine and may call
// the driver's controls.
type Driver struct {
	mu       sync.Mutex
	state    State
	base     time.Duration
	sched    Scheduler
	timer    Timer
	timerGen int
	gen      int
	mounted  bool
	onStep   func(State)
	log      *log.Logger

	// retired timers are cancelled but not yet joined. firing counts the
	// OnStep calls in progress per timer generation.
	retired []retiredTimer
	firing  map[int]int
}

type retiredTimer struct {
	timer Timer
	gen   int
}

// Option configures a Driver.
type Option func(*Driver)

func WithScheduler(s Scheduler) Option {
	return func(d *Driver) { d.sched = s }
}

func WithSpeed(s Speed) Option {
	return func(d *Driver) { d.state.Speed = s }
}

// WithPaused creates the driver with playback off.
func WithPaused() Option {
	return func(d *Driver) { d.state.Playing = false }
}

// WithOnStep registers a callback invoked after every advance.
func WithOnStep(fn func(State)) Option {
	return func(d *Driver) { d.onStep = fn }
}

func WithLogger(l *log.Logger) Option {
	return func(d *Driver) { d.log = l }
}

// NewDriver creates an unmounted driver over a table of n frames.
func NewDriver(n int, base time.Duration, opts ...Option) (*Driver, error) {
	st, err := NewState(n)
	if err != nil {
		return nil, err
	}
	d := &Driver{
		state: st,
		base:  base,
		sched:  RealScheduler{},
		log:    log.New(io.Discard),
		firing: map[int]int{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if !d.state.Speed.Valid() {
		return nil, ErrUnknownSpeed
	}
	return d, nil
}

// Mount arms the timer if playback is on.
func (d *Driver) Mount() {
	d.reconfigure(func(s *State) bool {
		if d.mounted {
			return false
		}
		d.mounted = true
		return true
	})
}

// Unmount cancels the pending timer. The driver can be mounted again.
func (d *Driver) Unmount() {
	d.reconfigure(func(s *State) bool {
		if !d.mounted {
			return false
		}
		d.mounted = false
		return true
	})
}

func (d *Driver) SetPlaying(on bool) {
	d.reconfigure(func(s *State) bool {
		if s.Playing == on {
			return false
		}
		s.Playing = on
		return true
	})
}

func (d *Driver) Toggle() {
	d.reconfigure(func(s *State) bool {
		s.Playing = !s.Playing
		return true
	})
}

func (d *Driver) SetSpeed(speed Speed) error {
	if !speed.Valid() {
		return ErrUnknownSpeed
	}
	d.reconfigure(func(s *State) bool {
		if s.Speed == speed {
			return false
		}
		s.Speed = speed
		return true
	})
	return nil
}

// State returns a copy of the current playback state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// reconfigure applies mutate and, if it reports a change, cancels the live
// timer before arming a new one with the updated parameters.
func (d *Driver) reconfigure(mutate func(*State) bool) {
	d.mu.Lock()
	if !mutate(&d.state) {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Cancel()
		d.retired = append(d.retired, retiredTimer{timer: d.timer, gen: d.timerGen})
		d.timer = nil
	}
	d.gen++
	if d.mounted && d.state.Playing {
		gen := d.gen
		every := d.state.Interval(d.base)
		d.timer = d.sched.Every(every, func() { d.tick(gen) })
		d.timerGen = gen
		d.log.Debug("timer armed", "every", every, "speed", d.state.Speed, "step", d.state.Step)
	}
	join := d.joinable()
	d.mu.Unlock()

	// Joining waits for tick goroutines, which may be blocked on d.mu.
	for _, t := range join {
		t.Stop()
	}
}

// joinable drains the retired list. Timers inside an OnStep call are left to
// exit on their own, since that call may be the one reconfiguring.
func (d *Driver) joinable() []Timer {
	var out []Timer
	for _, r := range d.retired {
		if d.firing[r.gen] == 0 {
			out = append(out, r.timer)
		}
	}
	d.retired = d.retired[:0]
	return out
}

func (d *Driver) tick(gen int) {
	d.mu.Lock()
	if gen != d.gen || !d.mounted || !d.state.Playing {
		d.mu.Unlock()
		return
	}
	d.state.Advance()
	snap := d.state
	fn := d.onStep
	if fn == nil {
		d.mu.Unlock()
		return
	}
	d.firing[gen]++
	d.mu.Unlock()

	fn(snap)

	d.mu.Lock()
	if d.firing[gen]--; d.firing[gen] == 0 {
		delete(d.firing, gen)
	}
	d.mu.Unlock()
}
