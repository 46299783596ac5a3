package validation

import (
	"errors"
	"sort"
	"strings"
)

// Common field messages.
const (
	MsgRequired = "This field is required."
	MsgBlank    = "This field may not be blank."
)

// Errors maps a field name to its validation messages.
type Errors map[string][]string

// Add appends a message for field.
func (e Errors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

// Err returns e as an error, or nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Error renders the failures as "field: msg; field: msg" in field order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+strings.Join(e[f], " "))
	}
	return strings.Join(parts, "; ")
}

// Field builds an error with a single failing field.
func Field(field, msg string) error {
	return Errors{field: {msg}}
}

// AsErrors reports whether err wraps validation Errors and returns them.
func AsErrors(err error) (Errors, bool) {
	var ve Errors
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
