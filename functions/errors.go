package functions

import (
	"errors"

	"github.com/hasbyte1/go-underscore/iteratee"
)

var (
	// ErrTypeMismatch is returned when an argument that must be a function
	// is not callable.
	ErrTypeMismatch = iteratee.ErrTypeMismatch

	// ErrNoFunctions is returned by Compose when called without functions.
	ErrNoFunctions = errors.New("functions: at least one function is required")
)
