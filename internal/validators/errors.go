package validators

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnsupportedType is returned by a validator when it is handed a value of
// a type it does not know how to validate.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// FieldErrors maps a field name to the list of validation messages recorded
// for it. It implements the error interface so that validators can return it
// directly, and the HTTP layer serializes it verbatim as the field-keyed
// 400 response body.
//
// Non-field messages are stored under the "non_field_errors" key.
type FieldErrors map[string][]string

// NonFieldKey is the map key under which messages not tied to a single
// field are accumulated.
const NonFieldKey = "non_field_errors"

// Add appends a message to the list recorded for field.
func (f FieldErrors) Add(field, message string) {
	f[field] = append(f[field], message)
}

// Error implements the error interface. Fields are listed in sorted order so
// the message is deterministic.
func (f FieldErrors) Error() string {
	if len(f) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(f))
	for field := range f {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(f))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(f[field], "; "))
	}

	return "validation failed: " + strings.Join(parts, ", ")
}

// HasErrors reports whether any message has been recorded.
func (f FieldErrors) HasErrors() bool {
	return len(f) > 0
}

// AsFieldErrors unwraps err as FieldErrors. The ok flag is false when err is
// not a validation error.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrors FieldErrors
	if errors.As(err, &fieldErrors) {
		return fieldErrors, true
	}
	return nil, false
}
