package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("conflict")
	ErrCollaborator = errors.New("collaborator failure")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// PatchError reports a patch operation that could not be applied.
// The whole patch is rejected; nothing is persisted.
type PatchError struct {
	Index  int
	Op     string
	Path   string
	Reason string
}

func (e *PatchError) Error() string {
	return fmt.Sprintf("patch: operation %d (%s %s): %s", e.Index, e.Op, e.Path, e.Reason)
}

func (e *PatchError) Unwrap() error { return ErrValidation }

// CollaboratorError wraps a failure of an external dependency such as
// the image store or the database.
type CollaboratorError struct {
	Collaborator string
	Err          error
}

// NewCollaboratorError wraps err as a failure of the named collaborator.
func NewCollaboratorError(collaborator string, err error) *CollaboratorError {
	return &CollaboratorError{Collaborator: collaborator, Err: err}
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Collaborator, e.Err)
}

func (e *CollaboratorError) Unwrap() error { return e.Err }

// Is reports ErrCollaborator so callers can match the class without
// losing the wrapped cause.
func (e *CollaboratorError) Is(target error) bool { return target == ErrCollaborator }
