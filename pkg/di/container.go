package di

import (
	"errors"
	"fmt"
	"sync"
)

// Factory builds a service instance. It receives the container so it can
// resolve its own dependencies.
type Factory func(c *Container) (any, error)

// Container is a name-keyed service locator.
// All methods are safe for concurrent use.
type Container struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]any
}

// NewContainer creates an empty container.
func NewContainer() *Container {
	return &Container{
		factories: make(map[string]Factory),
		instances: make(map[string]any),
	}
}

// Register adds a lazy shared service. The factory runs on first Get and
// the result is cached. Registering over an existing name replaces the
// factory and drops any cached instance.
func (c *Container) Register(name string, factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.factories[name] = factory
	delete(c.instances, name)
	return nil
}

// Set adds an eager service instance under the given name, replacing any
// previous registration.
func (c *Container) Set(name string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.instances[name] = value
	delete(c.factories, name)
}

// Has reports whether a service is registered under the name.
func (c *Container) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if _, ok := c.instances[name]; ok {
		return true
	}
	_, ok := c.factories[name]
	return ok
}

// Get resolves a service by name, running its factory on first resolution.
func (c *Container) Get(name string) (any, error) {
	c.mu.RLock()
	if instance, ok := c.instances[name]; ok {
		c.mu.RUnlock()
		return instance, nil
	}
	factory, ok := c.factories[name]
	c.mu.RUnlock()

	if !ok {
		return nil, errors.Join(ErrServiceNotFound, fmt.Errorf("service %q", name))
	}

	// The factory runs outside the lock so it can resolve other services.
	instance, err := factory(c)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another goroutine may have resolved the same name concurrently;
	// the first cached instance wins to keep the service shared.
	if cached, ok := c.instances[name]; ok {
		return cached, nil
	}
	c.instances[name] = instance
	return instance, nil
}

// MustGet resolves a service by name and panics on failure. Intended for
// application startup where a missing service should prevent boot.
func (c *Container) MustGet(name string) any {
	instance, err := c.Get(name)
	if err != nil {
		panic(fmt.Sprintf("di: resolving %q: %v", name, err))
	}
	return instance
}

// Resolve fetches a service by name and asserts it to type T.
func Resolve[T any](c *Container, name string) (T, error) {
	var zero T

	instance, err := c.Get(name)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, errors.Join(ErrInvalidServiceType, fmt.Errorf("service %q is %T", name, instance))
	}
	return typed, nil
}
