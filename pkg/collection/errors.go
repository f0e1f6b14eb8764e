package collection

import "errors"

var (
	// ErrInvalidModel is returned when an operation receives nil or a
	// non-struct value in place of a model instance.
	ErrInvalidModel = errors.New("model must be a valid instance")

	// ErrNoContainer is returned when resolving a connection without a
	// dependency injection container set on the manager.
	ErrNoContainer = errors.New("dependency injection container is not set")
)
