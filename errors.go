package backprop

import "errors"

var (
	// ErrNoForward is returned (or panicked with) when a backward pass is
	// requested before the matching forward pass.
	ErrNoForward = errors.New("backward called before forward")
	// ErrInvalidLabel is returned for class labels other than +1 or -1.
	ErrInvalidLabel = errors.New("label must be +1 or -1")
	// ErrArity is panicked with when a gate receives the wrong number of inputs.
	ErrArity = errors.New("wrong number of gate inputs")
)
