package codegen

import (
	"fmt"
	"strings"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Sentinel errors for resolution failures.
var (
	// ErrUnsupportedFieldType indicates a scalar type outside the supported table.
	ErrUnsupportedFieldType = errors.New("unsupported field type")
	// ErrMissingTypeReference indicates an enum or relation target absent from the datamodel.
	ErrMissingTypeReference = errors.New("missing type reference")
)

// UnsupportedFieldTypeError is returned when a scalar field names a type
// the resolver has no mapping for.
type UnsupportedFieldTypeError struct {
	Model string
	Field string
	Type  string
}

// Error implements the error interface.
func (e *UnsupportedFieldTypeError) Error() string {
	return fmt.Sprintf("unsupported scalar type %q on %s", e.Type, location(e.Model, e.Field))
}

// Is reports whether target is ErrUnsupportedFieldType.
func (e *UnsupportedFieldTypeError) Is(target error) bool {
	return target == ErrUnsupportedFieldType
}

// MissingTypeReferenceError is returned when an enum or relation field
// references a declaration that does not exist.
type MissingTypeReferenceError struct {
	Model string
	Field string
	Kind  string // "enum" or "relation"
	Type  string
}

// Error implements the error interface.
func (e *MissingTypeReferenceError) Error() string {
	return fmt.Sprintf("%s references unknown %s %q", location(e.Model, e.Field), e.Kind, e.Type)
}

// Is reports whether target is ErrMissingTypeReference.
func (e *MissingTypeReferenceError) Is(target error) bool {
	return target == ErrMissingTypeReference
}

// FieldError attaches model and field context to a per-field failure.
type FieldError struct {
	Model string
	Field string
	Cause error
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	var b strings.Builder
	b.WriteString("resolve ")
	b.WriteString(location(e.Model, e.Field))
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *FieldError) Unwrap() error {
	return e.Cause
}

func location(model, field string) string {
	switch {
	case model != "" && field != "":
		return model + "." + field
	case field != "":
		return "field " + field
	default:
		return "model " + model
	}
}
