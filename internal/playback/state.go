package playback

import "time"

// State is the per-widget playback record.
type State struct {
	Playing bool
	Speed   Speed
	Step    int
	Len     int
}

// NewState returns a playing state at step 0 and normal speed.
func NewState(n int) (State, error) {
	if n <= 0 {
		return State{}, ErrEmptyTable
	}
	return State{Playing: true, Speed: Normal, Len: n}, nil
}

// Advance moves to the next frame, wrapping to 0 after the last one.
func (s *State) Advance() {
	if s.Len <= 0 {
		return
	}
	s.Step = (s.Step + 1) % s.Len
}

// Interval is the tick period for the given base period at the current speed.
func (s State) Interval(base time.Duration) time.Duration {
	speed := s.Speed
	if speed <= 0 {
		speed = Normal
	}
	return time.Duration(float64(base) / float64(speed))
}
