package generator

import (
	"fmt"

	"github.com/satishbabariya/prisma-class-validator-go/internal/errors"
)

// Sentinel errors for orchestration failures.
var (
	// ErrDuplicateDeclarationName indicates two declarations would share an identifier.
	ErrDuplicateDeclarationName = errors.New("duplicate declaration name")
	// ErrStorageWrite indicates a generated file could not be persisted.
	ErrStorageWrite = errors.New("storage write failed")
)

// DuplicateDeclarationNameError is returned when two models, two enums, or a
// model and an enum share a name.
type DuplicateDeclarationNameError struct {
	Category string // "model", "enum" or "model/enum"
	Name     string
}

// Error implements the error interface.
func (e *DuplicateDeclarationNameError) Error() string {
	return fmt.Sprintf("duplicate %s name %q", e.Category, e.Name)
}

// Is reports whether target is ErrDuplicateDeclarationName.
func (e *DuplicateDeclarationNameError) Is(target error) bool {
	return target == ErrDuplicateDeclarationName
}

// StorageWriteError is returned for each file that could not be written.
type StorageWriteError struct {
	Path  string
	Op    string
	Cause error
}

// Error implements the error interface.
func (e *StorageWriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying error.
func (e *StorageWriteError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrStorageWrite.
func (e *StorageWriteError) Is(target error) bool {
	return target == ErrStorageWrite
}
