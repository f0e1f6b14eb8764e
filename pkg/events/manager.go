package events

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Event is a single fired notification.
type Event struct {
	// Type is the full event type, "component:event".
	Type string

	// Source is the component that fired the event.
	Source any

	// Data is an optional event payload.
	Data any
}

// Component returns the component part of the event type, or the whole
// type when it carries no colon.
func (e Event) Component() string {
	if idx := strings.IndexByte(e.Type, ':'); idx >= 0 {
		return e.Type[:idx]
	}
	return e.Type
}

// Handler processes a fired event. Handlers run synchronously on the
// firing goroutine and must not block indefinitely.
type Handler func(ctx context.Context, e Event)

type listener struct {
	id string
	fn Handler
}

// Manager dispatches events to registered handlers.
// All methods are safe for concurrent use.
type Manager struct {
	mu        sync.RWMutex
	listeners map[string][]listener
}

// NewManager creates an empty events manager.
func NewManager() *Manager {
	return &Manager{
		listeners: make(map[string][]listener),
	}
}

// Listen attaches a handler to an event type or a bare component name.
// It returns the listener id for later detachment. Nil handlers are ignored
// and report an empty id.
func (m *Manager) Listen(eventType string, fn Handler) string {
	if fn == nil {
		return ""
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	id := uuid.New().String()
	m.listeners[eventType] = append(m.listeners[eventType], listener{id: id, fn: fn})
	return id
}

// Detach removes a single listener by id. Unknown ids are a no-op.
func (m *Manager) Detach(eventType, id string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	attached := m.listeners[eventType]
	for i, l := range attached {
		if l.id == id {
			m.listeners[eventType] = append(attached[:i], attached[i+1:]...)
			return
		}
	}
}

// DetachAll removes every listener for an event type or component name.
func (m *Manager) DetachAll(eventType string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.listeners, eventType)
}

// HasListeners reports whether any handler is attached to the exact event
// type or its component prefix.
func (m *Manager) HasListeners(eventType string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.listeners[eventType]) > 0 {
		return true
	}
	e := Event{Type: eventType}
	return len(m.listeners[e.Component()]) > 0
}

// Fire dispatches an event to component-level listeners first, then to
// listeners of the exact type, each in registration order.
func (m *Manager) Fire(ctx context.Context, eventType string, source, data any) {
	e := Event{Type: eventType, Source: source, Data: data}

	m.mu.RLock()
	matched := make([]listener, 0, 4)
	if component := e.Component(); component != eventType {
		matched = append(matched, m.listeners[component]...)
	}
	matched = append(matched, m.listeners[eventType]...)
	m.mu.RUnlock()

	// Handlers run outside the lock so they may attach or detach listeners.
	for _, l := range matched {
		l.fn(ctx, e)
	}
}
