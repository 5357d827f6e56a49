package model

import "errors"

// Error classes returned by tree operations. Callers match them with
// errors.Is; the wrapped message carries the specifics.
var (
	// ErrKeyMismatch reports an insertion under a key that differs from
	// the variable's own name.
	ErrKeyMismatch = errors.New("key differs from variable name")

	// ErrNoSuchChild reports a lookup or deletion of a missing child.
	ErrNoSuchChild = errors.New("no such child")

	// ErrNoSuchAttribute reports a lookup of a missing metadata key.
	ErrNoSuchAttribute = errors.New("no such attribute")

	// ErrMalformedGrid reports a grid whose children do not follow the
	// "array then one map per axis" shape. The shape is a precondition
	// checked when the grid is accessed, not at construction.
	ErrMalformedGrid = errors.New("malformed grid")

	// ErrBadData reports a data assignment that does not match the
	// structure of the variable it is assigned to.
	ErrBadData = errors.New("data does not match variable structure")
)
