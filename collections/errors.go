package collections

import "errors"

// Sentinel errors returned by collection operations.
var (
	// ErrEmptyCollection is returned by Reduce and ReduceRight when the
	// collection is empty and no initial accumulator was supplied.
	ErrEmptyCollection = errors.New("collections: reduce of empty collection with no initial value")

	// ErrMixinNotFound is returned when an unregistered mixin name is called.
	ErrMixinNotFound = errors.New("collections: mixin not found")

	// ErrInvalidMixin is returned when a mixin cannot be registered.
	ErrInvalidMixin = errors.New("collections: invalid mixin")
)
