package validation

import "fmt"

// Validator kinds reported in failure messages.
const (
	KindRegex       = "Regex"
	KindPresenceOf  = "PresenceOf"
	KindInclusionIn = "InclusionIn"
)

// Message is a single validation failure. Immutable once constructed.
type Message struct {
	Text  string
	Field string
	Kind  string
}

// Context supplies field values to validators and collects failure messages.
// Implementations are typically backed by the entity or form being validated.
type Context interface {
	// Value returns the raw value for a field, or nil when the field is absent.
	Value(field string) any

	// AppendMessage records a validation failure.
	AppendMessage(msg Message)
}

// Validator checks one field of a validation context.
// It returns false and appends a message to the context on failure.
type Validator interface {
	Validate(ctx Context, field string) bool
}

// MapContext is a map-backed Context for standalone validation runs.
type MapContext struct {
	values   map[string]any
	messages []Message
}

// NewMapContext creates a context over the given field values.
func NewMapContext(values map[string]any) *MapContext {
	return &MapContext{values: values}
}

func (c *MapContext) Value(field string) any {
	return c.values[field]
}

func (c *MapContext) AppendMessage(msg Message) {
	c.messages = append(c.messages, msg)
}

// Messages returns all failures appended so far, in order.
func (c *MapContext) Messages() []Message {
	return c.messages
}

// stringify renders a field value for matching. Nil has no string form.
func stringify(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case fmt.Stringer:
		return s.String(), true
	default:
		return fmt.Sprintf("%v", v), true
	}
}
