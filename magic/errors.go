package magic

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	ErrFieldNotFound        = errors.New("magic: field not found")
	ErrUnsupportedFieldType = errors.New("magic: unsupported field type")
	ErrAccessViolation      = errors.New("magic: field access violation")
)

// FieldNotFoundError reports a requested field the target does not declare.
type FieldNotFoundError struct {
	Field string
	Type  string
}

func (e *FieldNotFoundError) Error() string {
	return fmt.Sprintf("magic: field %s not found in %s", e.Field, e.Type)
}

func (e *FieldNotFoundError) Unwrap() error { return ErrFieldNotFound }

// UnsupportedFieldTypeError reports a field whose type has no rule.
type UnsupportedFieldTypeError struct {
	Field string
	Type  reflect.Type
}

func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("magic: cannot bewitch field %s of type %s", e.Field, e.Type)
}

func (e *UnsupportedFieldTypeError) Unwrap() error { return ErrUnsupportedFieldType }

// AccessViolationError reports a field that cannot be written.
type AccessViolationError struct {
	Field  string
	Reason string
}

func (e *AccessViolationError) Error() string {
	return fmt.Sprintf("magic: cannot access field %s: %s", e.Field, e.Reason)
}

func (e *AccessViolationError) Unwrap() error { return ErrAccessViolation }

// BewitchError annotates a failure of a requested field with the target type.
type BewitchError struct {
	Field string
	Type  string
	Err   error
}

func (e *BewitchError) Error() string {
	return fmt.Sprintf("could not bewitch field %s of %s: %v", e.Field, e.Type, e.Err)
}

func (e *BewitchError) Unwrap() error { return e.Err }
