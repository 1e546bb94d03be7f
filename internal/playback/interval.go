package playback

import (
	"sync"
	"time"
)

// Timer is a handle on a repeating callback. Cancel only signals; Stop also
// waits for the callback goroutine to exit.
type Timer interface {
	Cancel()
	Stop()
}

// Scheduler arms repeating callbacks.
type Scheduler interface {
	Every(d time.Duration, fn func()) Timer
}

// Interval calls fn every period on its own goroutine until stopped.
type Interval struct {
	ticker *time.Ticker
	done   chan struct{}
	exited chan struct{}
	once   sync.Once
}

// NewInterval starts a repeating callback. The first call happens one period
// after creation.
func NewInterval(d time.Duration, fn func()) *Interval {
	iv := &Interval{
		ticker: time.NewTicker(d),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go iv.loop(fn)
	return iv
}

func (iv *Interval) loop(fn func()) {
	defer close(iv.exited)
	for {
		select {
		case <-iv.done:
			return
		case <-iv.ticker.C:
			select {
			case <-iv.done:
				return
			default:
			}
			fn()
		}
	}
}

// Cancel prevents further calls without waiting. It may be called from
// inside fn.
func (iv *Interval) Cancel() {
	iv.once.Do(func() {
		iv.ticker.Stop()
		close(iv.done)
	})
}

// Stop cancels the callback and waits for the goroutine to exit. It is safe to
// call more than once, but must not be called from inside fn.
func (iv *Interval) Stop() {
	iv.Cancel()
	<-iv.exited
}

// RealScheduler arms wall-clock intervals.
type RealScheduler struct{}

func (RealScheduler) Every(d time.Duration, fn func()) Timer {
	return NewInterval(d, fn)
}

// ScaledScheduler compresses every period by Factor. It is used to record
// traces without waiting for the real animation timing.
type ScaledScheduler struct {
	Factor float64
	Next   Scheduler
}

func (s ScaledScheduler) Every(d time.Duration, fn func()) Timer {
	next := s.Next
	if next == nil {
		next = RealScheduler{}
	}
	if s.Factor > 0 {
		d = time.Duration(float64(d) / s.Factor)
	}
	if d <= 0 {
		d = time.Millisecond
	}
	return next.Every(d, fn)
}
