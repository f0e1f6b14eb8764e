// Package validation provides field-level validators for document models.
//
// Validators implement a single contract: pull a value from a Context by
// field name, check it, and append a Message to the context on failure.
// Failures are data, not errors — a validator never returns an error or
// panics on bad input; it reports through the context's message list and
// a boolean result.
//
// # Usage
//
//	ctx := validation.NewMapContext(map[string]any{
//		"created_at": "2020-01-01",
//	})
//
//	v := validation.Regex{Pattern: `^\d{4}-\d{2}-\d{2}$`}
//	if !v.Validate(ctx, "created_at") {
//		for _, msg := range ctx.Messages() {
//			log.Println(msg.Text)
//		}
//	}
//
// # Match semantics
//
// Regex uses full-string match semantics: the pattern must consume the
// entire value, not merely occur somewhere inside it. This guards against
// patterns written without anchors accidentally accepting bad input.
package validation
