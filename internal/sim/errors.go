package sim

import "errors"

// Engine errors surfaced to callers.
var (
	// ErrUnknownMode indicates an automaton mode name absent from the
	// registry.
	ErrUnknownMode = errors.New("sim: unknown automaton mode")

	// ErrNotInitialized indicates an operation that requires an active
	// automaton before Initialize succeeded.
	ErrNotInitialized = errors.New("sim: automaton not initialized")

	// ErrOutOfBounds indicates grid coordinates outside the active grid.
	ErrOutOfBounds = errors.New("sim: coordinates out of bounds")
)
