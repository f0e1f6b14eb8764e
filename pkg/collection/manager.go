package collection

import (
	"context"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/odmkit/odmkit/pkg/di"
	"github.com/odmkit/odmkit/pkg/events"
)

// EventAfterInitialize is fired through the process-wide events manager
// after a model class runs its one-time initialization.
const EventAfterInitialize = "collectionManager:afterInitialize"

// DefaultConnectionService is the container service name used for models
// without an explicit connection service.
const DefaultConnectionService = "mongo"

// Initializer is the optional one-time initialization hook for models.
// The manager invokes it on the first Initialize call for the model's class.
type Initializer interface {
	Initialize()
}

// Manager tracks per-class model state for one request: initialization,
// connection services, implicit object-id flags, and custom event managers.
type Manager struct {
	mu                 sync.RWMutex
	container          *di.Container
	eventsManager      *events.Manager
	initialized        map[string]any
	lastInitialized    any
	connectionServices map[string]string
	implicitObjectIDs  map[string]bool
	customEvents       map[string]*events.Manager
}

// NewManager creates an empty manager. One manager serves one request.
func NewManager() *Manager {
	return &Manager{
		initialized:        make(map[string]any),
		connectionServices: make(map[string]string),
		implicitObjectIDs:  make(map[string]bool),
		customEvents:       make(map[string]*events.Manager),
	}
}

// SetContainer sets the dependency injection container used to resolve
// connection services.
func (m *Manager) SetContainer(c *di.Container) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.container = c
}

// Container returns the dependency injection container, or nil.
func (m *Manager) Container() *di.Container {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.container
}

// SetEventsManager sets the process-wide events manager used for
// lifecycle notifications.
func (m *Manager) SetEventsManager(em *events.Manager) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.eventsManager = em
}

// EventsManager returns the process-wide events manager, or nil.
func (m *Manager) EventsManager() *events.Manager {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.eventsManager
}

// SetCustomEventsManager records a dedicated events manager for the
// model's class, replacing any previous one.
func (m *Manager) SetCustomEventsManager(model any, em *events.Manager) error {
	key, err := validModel(model)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.customEvents[key] = em
	return nil
}

// CustomEventsManager returns the events manager recorded for the model's
// class, or nil when none was set.
func (m *Manager) CustomEventsManager(model any) *events.Manager {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.customEvents[Key(model)]
}

// Initialize runs the model class's one-time initialization. The first
// call per class invokes the model's Initializer hook (when implemented)
// and fires EventAfterInitialize through the process-wide events manager;
// later calls for the same class are no-ops.
func (m *Manager) Initialize(ctx context.Context, model any) error {
	key, err := validModel(model)
	if err != nil {
		return err
	}

	m.mu.RLock()
	_, done := m.initialized[key]
	em := m.eventsManager
	m.mu.RUnlock()
	if done {
		return nil
	}

	// Hook and event run unlocked so handlers may call back into the
	// manager. The at-most-once guarantee relies on the manager being
	// owned by a single request, not on the lock.
	if hook, ok := model.(Initializer); ok {
		hook.Initialize()
	}
	if em != nil {
		em.Fire(ctx, EventAfterInitialize, m, model)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.initialized[key] = model
	m.lastInitialized = model
	return nil
}

// IsInitialized reports whether the named model class has been
// initialized. The lookup is case-insensitive.
func (m *Manager) IsInitialized(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.initialized[strings.ToLower(name)]
	return ok
}

// LastInitialized returns the most recently first-time-initialized model
// instance, or nil when no model has been initialized yet. Repeat
// Initialize calls do not update it.
func (m *Manager) LastInitialized() any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastInitialized
}

// SetConnectionService records the container service name holding the
// connection for the model's class.
func (m *Manager) SetConnectionService(model any, service string) error {
	key, err := validModel(model)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.connectionServices[key] = service
	return nil
}

// ConnectionService returns the service name recorded for the model's
// class, or DefaultConnectionService.
func (m *Manager) ConnectionService(model any) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if service, ok := m.connectionServices[Key(model)]; ok {
		return service
	}
	return DefaultConnectionService
}

// Connection resolves the model's connection service from the container
// to a mongo database handle.
func (m *Manager) Connection(model any) (*mongo.Database, error) {
	if _, err := validModel(model); err != nil {
		return nil, err
	}

	m.mu.RLock()
	container := m.container
	m.mu.RUnlock()
	if container == nil {
		return nil, ErrNoContainer
	}

	return di.Resolve[*mongo.Database](container, m.ConnectionService(model))
}

// UseImplicitObjectIDs sets whether the model's class auto-generates
// object ids for new documents.
func (m *Manager) UseImplicitObjectIDs(model any, use bool) error {
	key, err := validModel(model)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.implicitObjectIDs[key] = use
	return nil
}

// IsUsingImplicitObjectIDs reports the implicit object-id flag for the
// model's class. Unset classes report false.
func (m *Manager) IsUsingImplicitObjectIDs(model any) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.implicitObjectIDs[Key(model)]
}
