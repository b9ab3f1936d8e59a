package types

import "errors"

// All errors are raised synchronously at the point of the invalid operation;
// nothing is retried and no state is partially mutated.
var (
	// ErrUnknownVariable reports a reference to a variable name that was
	// never registered.
	ErrUnknownVariable = errors.New("unknown variable")

	// ErrUnknownTerm reports a reference to a term name not defined for the
	// given variable.
	ErrUnknownTerm = errors.New("unknown term")

	// ErrNotAnOutput reports a rule consequent naming an input variable.
	ErrNotAnOutput = errors.New("variable is not an output")

	// ErrInvalidShape reports out-of-order control points or non-positive
	// widths passed to a membership-shape constructor.
	ErrInvalidShape = errors.New("invalid shape parameters")
)
