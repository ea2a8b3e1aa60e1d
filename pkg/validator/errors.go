package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrNilForm is returned when a FormValidator is constructed without a form.
	ErrNilForm = errors.New("validator: form is nil")
	// ErrFieldNotFound matches every FieldNotFoundError.
	ErrFieldNotFound = errors.New("validator: field not found")
	// ErrKindMismatch is returned by FieldAs when the materialized validator
	// is not of the requested type.
	ErrKindMismatch = errors.New("validator: field kind mismatch")
)

// FieldNotFoundError reports a field name absent from the form.
type FieldNotFoundError struct {
	Name string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("validator: field %q not found", e.Name)
}

// Is lets errors.Is(err, ErrFieldNotFound) match.
func (e *FieldNotFoundError) Is(target error) bool {
	return target == ErrFieldNotFound
}
