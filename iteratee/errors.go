package iteratee

import "errors"

// ErrTypeMismatch is returned when a value that must be a function is not
// callable, and wrapped in the panic raised when a traversal argument cannot
// be adapted to a function's parameter type.
var ErrTypeMismatch = errors.New("iteratee: type mismatch")
