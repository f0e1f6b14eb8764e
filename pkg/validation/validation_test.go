package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odmkit/odmkit/pkg/validation"
)

func TestPresenceOf(t *testing.T) {
	t.Run("present values pass", func(t *testing.T) {
		testCases := map[string]any{
			"string": "hello",
			"int":    0,
			"bool":   false,
		}

		for name, value := range testCases {
			ctx := validation.NewMapContext(map[string]any{"field": value})
			v := validation.PresenceOf{}
			assert.True(t, v.Validate(ctx, "field"), "case %s", name)
		}
	})

	t.Run("absent values fail", func(t *testing.T) {
		testCases := map[string]any{
			"nil":        nil,
			"empty":      "",
			"whitespace": "   ",
		}

		for name, value := range testCases {
			ctx := validation.NewMapContext(map[string]any{"field": value})
			v := validation.PresenceOf{}
			assert.False(t, v.Validate(ctx, "field"), "case %s", name)

			msgs := ctx.Messages()
			require.Len(t, msgs, 1, "case %s", name)
			assert.Equal(t, "field is required", msgs[0].Text)
			assert.Equal(t, validation.KindPresenceOf, msgs[0].Kind)
		}
	})
}

func TestInclusionIn(t *testing.T) {
	t.Run("value in domain passes", func(t *testing.T) {
		ctx := validation.NewMapContext(map[string]any{"status": "active"})
		v := validation.InclusionIn{Domain: []any{"active", "inactive"}}

		assert.True(t, v.Validate(ctx, "status"))
	})

	t.Run("value outside domain fails with domain list", func(t *testing.T) {
		ctx := validation.NewMapContext(map[string]any{"status": "gone"})
		v := validation.InclusionIn{Domain: []any{"active", "inactive"}}

		assert.False(t, v.Validate(ctx, "status"))

		msgs := ctx.Messages()
		require.Len(t, msgs, 1)
		assert.Equal(t, "Value of field 'status' must be part of list: active, inactive", msgs[0].Text)
	})

	t.Run("numeric domain compared by string form", func(t *testing.T) {
		ctx := validation.NewMapContext(map[string]any{"priority": 2})
		v := validation.InclusionIn{Domain: []any{1, 2, 3}}

		assert.True(t, v.Validate(ctx, "priority"))
	})
}

func TestMapContext(t *testing.T) {
	t.Run("messages accumulate in order", func(t *testing.T) {
		ctx := validation.NewMapContext(map[string]any{"a": "", "b": "x"})

		validation.PresenceOf{}.Validate(ctx, "a")
		validation.Regex{Pattern: `^\d+$`}.Validate(ctx, "b")

		msgs := ctx.Messages()
		require.Len(t, msgs, 2)
		assert.Equal(t, "a", msgs[0].Field)
		assert.Equal(t, "b", msgs[1].Field)
	})
}
