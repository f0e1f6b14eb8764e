package validation

import (
	"fmt"
	"strings"
)

// PresenceOf validates that a field has a non-empty value.
// Nil, empty strings, and whitespace-only strings all fail.
type PresenceOf struct {
	Message string
}

func (p PresenceOf) Validate(ctx Context, field string) bool {
	value := ctx.Value(field)
	if value != nil {
		s, isString := value.(string)
		if !isString || strings.TrimSpace(s) != "" {
			return true
		}
	}

	text := p.Message
	if text == "" {
		text = fmt.Sprintf("%s is required", field)
	}
	ctx.AppendMessage(Message{Text: text, Field: field, Kind: KindPresenceOf})
	return false
}
