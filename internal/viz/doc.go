// Package viz renders a live terminal view of a running simulation.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live ground-plane view driven by a simulation controller
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// The view projects the horizontal plane (world X and Z) and shows the
// boundary ring, body trails, a per-body readout, and an energy sparkline.
//
// # Key Bindings
//
//	Space - Start / Pause / Resume
//	S     - Stop, keeping the current arrangement
//	r     - Reset to the snapshot captured at start
//	R     - Reset to the stock default arrangement
//	F     - Toggle free play (boundary checks off)
//	+/-   - Speed multiplier up / down
//	Tab   - Select body; Up/Down nudge its mass
//	?     - Show help overlay
//	Q     - Quit
package viz
