package playback

import (
	"errors"
	"testing"
	"time"
)

func TestAdvanceWraps(t *testing.T) {
	for _, n := range []int{1, 4, 5} {
		st, err := NewState(n)
		if err != nil {
			t.Fatalf("new state: %v", err)
		}
		for firings := 0; firings <= 3*n+2; firings++ {
			if st.Step != firings%n {
				t.Errorf("len %d: after %d firings expected step %d, got %d", n, firings, firings%n, st.Step)
			}
			st.Advance()
		}
	}
}

func TestNewStateEmpty(t *testing.T) {
	if _, err := NewState(0); !errors.Is(err, ErrEmptyTable) {
		t.Errorf("expected ErrEmptyTable, got %v", err)
	}
}

func TestInterval(t *testing.T) {
	tests := []struct {
		speed    Speed
		base     time.Duration
		expected time.Duration
	}{
		{Half, 2 * time.Second, 4 * time.Second},
		{Normal, 2 * time.Second, 2 * time.Second},
		{OneAndHalf, 1500 * time.Millisecond, time.Second},
		{Double, 2 * time.Second, time.Second},
	}

	for _, tt := range tests {
		st := State{Speed: tt.speed, Len: 1}
		if got := st.Interval(tt.base); got != tt.expected {
			t.Errorf("speed %s: expected %v, got %v", tt.speed, tt.expected, got)
		}
	}
}

func TestParseSpeed(t *testing.T) {
	tests := []struct {
		in       string
		expected Speed
		ok       bool
	}{
		{"0.5", Half, true},
		{"1x", Normal, true},
		{" 1.5X ", OneAndHalf, true},
		{"2", Double, true},
		{"3", 0, false},
		{"fast", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseSpeed(tt.in)
		if tt.ok && (err != nil || got != tt.expected) {
			t.Errorf("%q: expected %v, got %v (%v)", tt.in, tt.expected, got, err)
		}
		if !tt.ok && !errors.Is(err, ErrUnknownSpeed) {
			t.Errorf("%q: expected ErrUnknownSpeed, got %v", tt.in, err)
		}
	}
}

func TestSpeedString(t *testing.T) {
	if Half.String() != "0.5x" || Double.String() != "2x" {
		t.Errorf("unexpected labels %q %q", Half.String(), Double.String())
	}
	if SpeedAt(-1) != Half || SpeedAt(9) != Double {
		t.Error("SpeedAt should clamp")
	}
}
