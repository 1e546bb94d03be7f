package playback

import (
	"fmt"
	"strconv"
	"strings"
)

// Speed is a playback multiplier. Only the values in [Speeds] are valid.
type Speed float64

const (
	Half       Speed = 0.5
	Normal     Speed = 1
	OneAndHalf Speed = 1.5
	Double     Speed = 2
)

// Speeds lists the selectable multipliers in display order.
var Speeds = []Speed{Half, Normal, OneAndHalf, Double}

func (s Speed) Valid() bool {
	for _, v := range Speeds {
		if v == s {
			return true
		}
	}
	return false
}

// String renders the multiplier the way the speed chips show it, e.g. "1.5x".
func (s Speed) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "x"
}

// ParseSpeed accepts "1.5", "1.5x" or "1.5X".
func ParseSpeed(v string) (Speed, error) {
	raw := strings.TrimSuffix(strings.TrimSuffix(strings.TrimSpace(v), "x"), "X")
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, v)
	}
	s := Speed(f)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpeed, v)
	}
	return s, nil
}

// SpeedAt returns the i-th selectable speed, clamped to the valid range.
func SpeedAt(i int) Speed {
	if i < 0 {
		i = 0
	}
	if i >= len(Speeds) {
		i = len(Speeds) - 1
	}
	return Speeds[i]
}
