package validation

import (
	"fmt"
	"strings"
)

// InclusionIn validates that a field value is one of an allowed set.
// Values are compared by their string form.
type InclusionIn struct {
	// Domain is the allowed set of values.
	Domain []any

	Message string
}

func (i InclusionIn) Validate(ctx Context, field string) bool {
	value, ok := stringify(ctx.Value(field))
	if ok {
		for _, allowed := range i.Domain {
			if s, sok := stringify(allowed); sok && s == value {
				return true
			}
		}
	}

	text := i.Message
	if text == "" {
		text = fmt.Sprintf("Value of field '%s' must be part of list: %s", field, i.domainList())
	}
	ctx.AppendMessage(Message{Text: text, Field: field, Kind: KindInclusionIn})
	return false
}

func (i InclusionIn) domainList() string {
	parts := make([]string, 0, len(i.Domain))
	for _, allowed := range i.Domain {
		if s, ok := stringify(allowed); ok {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
