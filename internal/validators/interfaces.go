package validators

import "context"

// Validator validates a single entity before it is persisted.
//
// Implementations return a [FieldErrors] value describing every violated
// constraint, or [ErrUnsupportedType] when obj is of an unknown type.
// A nil return means the entity passed all checks.
type Validator interface {
	Validate(ctx context.Context, obj any) error
}
