package domain

import "errors"

// Sentinel errors used across layers. Callers attach detail by wrapping
// with %w and test with errors.Is.
var (
	// ErrInvalidArgument reports misuse at the call site: a blank material
	// name, a non-positive quantity, or an input total that is not a
	// multiple of the recipe's requirement.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidOperation reports a state-guard violation, such as
	// replacing a step that was already applied in the current run.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrOutOfRange reports an index beyond the logical size, or a cursor
	// queried or advanced past its last step.
	ErrOutOfRange = errors.New("out of range")

	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrRunNotActive      = errors.New("run is not active")
)
