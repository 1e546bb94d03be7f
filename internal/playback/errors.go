package playback

import "errors"

var (
	// ErrEmptyTable indicates a preset table with no frames.
	ErrEmptyTable = errors.New("playback: preset table is empty")

	// ErrUnknownSpeed indicates a multiplier outside the fixed speed set.
	ErrUnknownSpeed = errors.New("playback: unknown speed")
)
