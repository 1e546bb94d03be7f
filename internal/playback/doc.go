// Package playback drives the cyclic frame stepping shared by every animated
// widget.
//
// A widget owns a fixed table of preset snapshots and a [State] that points at
// one of them. A repeating timer advances the step modulo the table length, so
// playback loops forever:
//
//   - [State]: playing flag, [Speed] multiplier and current step
//   - [Interval]: a cancellable repeating callback backed by [time.Ticker]
//   - [Driver]: headless owner of a State and at most one live timer
//   - [Player]: the Bubble Tea form, driven by tagged tick messages
//
// # Reconfiguration
//
// Changing the playing flag or the speed always tears down the previous timer
// before a new one is armed. The Driver stops its [Interval]; the Player bumps
// a generation tag so ticks already in flight are dropped.
package playback
