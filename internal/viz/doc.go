// Package viz renders the portfolio in the terminal.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [App]: the page, with name header, intro, project cards, widgets and
//     footer inside a scrolling viewport
//   - [Widget]: one view per visualization, driven by a tagged tick chain
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//   - Theme selection with the presets from the config package
//
// # Key Bindings
//
//	Space - Play/pause the focused widget
//	1-4   - Speed 0.5x, 1x, 1.5x, 2x
//	V     - Show neuron values (perceptron)
//	F     - Cycle the decision tree field
//	Tab   - Focus next widget
//	N     - Swap name and handle
//	T     - Cycle color themes
//	?     - Show full help
//
// Transitions between snapshots are eased with harmonica springs at 60 FPS.
package viz
