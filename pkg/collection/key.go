package collection

import (
	"reflect"
	"strings"
)

// Key returns the canonical identifier for a model's class: the
// lower-cased, pointer-indirected type name. All manager state is keyed by
// this value, so lookups agree regardless of the case callers use.
func Key(model any) string {
	t := reflect.TypeOf(model)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strings.ToLower(t.String())
}

// validModel returns the canonical key for a model instance, or
// ErrInvalidModel for nil and non-struct values.
func validModel(model any) (string, error) {
	if model == nil {
		return "", ErrInvalidModel
	}
	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return "", ErrInvalidModel
	}
	return strings.ToLower(t.String()), nil
}
