package validation

import (
	"fmt"
	"regexp"
)

// Regex validates a field against a regular expression with full-string
// match semantics: the leftmost match must equal the entire value, so an
// unanchored pattern cannot accept a value it only partially matches.
//
// A pattern that does not compile fails closed — the field is reported
// invalid rather than surfacing a parse error to the caller.
type Regex struct {
	// Pattern is the regular expression the value must fully match.
	Pattern string

	// Message overrides the default failure text when non-empty.
	Message string
}

// Validate fetches the field value, matches it against Pattern, and appends
// a failure message when the value does not fully match.
func (r Regex) Validate(ctx Context, field string) bool {
	value, ok := stringify(ctx.Value(field))
	if ok {
		re, err := regexp.Compile(r.Pattern)
		if err == nil && re.FindString(value) == value && re.MatchString(value) {
			return true
		}
	}

	text := r.Message
	if text == "" {
		text = fmt.Sprintf("Value of field '%s' doesn't match regular expression", field)
	}
	ctx.AppendMessage(Message{Text: text, Field: field, Kind: KindRegex})
	return false
}
