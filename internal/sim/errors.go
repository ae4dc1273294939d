package sim

import "errors"

// Failure modes of controller operations. Rejected operations leave the
// controller exactly as it was.
var (
	// ErrInvalidConfig indicates a non-positive mass, a non-finite vector
	// component, or an unusable option value.
	ErrInvalidConfig = errors.New("sim: invalid configuration")

	// ErrIllegalTransition indicates an operation not permitted in the
	// current run state (editing while running, resuming from setup, ...).
	ErrIllegalTransition = errors.New("sim: illegal state transition")

	// ErrUnknownBody indicates a body edit addressed to an id that was
	// never configured.
	ErrUnknownBody = errors.New("sim: unknown body")
)
