package di

import "errors"

var (
	// ErrServiceNotFound is returned when no service is registered under the requested name.
	ErrServiceNotFound = errors.New("service not found in container")

	// ErrInvalidServiceType is returned when a resolved service cannot be asserted to the requested type.
	ErrInvalidServiceType = errors.New("service has unexpected type")

	// ErrNilFactory is returned when registering a nil factory.
	ErrNilFactory = errors.New("nil service factory")
)
