package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
	ErrInvalidForm     = errors.New("invalid form")
)

// FormError carries one human-readable message per failed form field,
// keyed by the field's form name.
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidForm.Error()
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, len(names))
	for i, name := range names {
		messages[i] = e.Fields[name]
	}
	return strings.Join(messages, "; ")
}

// Unwrap lets callers match any form failure with errors.Is(err, ErrInvalidForm).
func (e *FormError) Unwrap() error {
	return ErrInvalidForm
}

// First returns the message of the first failed field in name order.
func (e *FormError) First() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	if len(names) == 0 {
		return ""
	}
	sort.Strings(names)
	return e.Fields[names[0]]
}
