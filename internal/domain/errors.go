package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	// ErrMissingAgentIdentity means no identity source yielded a usable agent id.
	ErrMissingAgentIdentity = errors.New("missing agent identity")
	// ErrUnknownAgent means an explicit identity did not match an active agent.
	ErrUnknownAgent = errors.New("unknown agent")
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

// InvalidStateError reports a state token outside the configured allow-list.
// Allowed carries the full permitted set for client diagnostics.
type InvalidStateError struct {
	Received string
	Allowed  []State
}

func (e *InvalidStateError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, s := range e.Allowed {
		allowed[i] = string(s)
	}
	return fmt.Sprintf("invalid state %q (allowed: %s)", e.Received, strings.Join(allowed, ", "))
}

func (e *InvalidStateError) Unwrap() error { return ErrValidation }

// DuplicateSuggestionError is returned when a suggestion with the same
// normalized case number already exists. Existing is the conflicting record.
type DuplicateSuggestionError struct {
	Existing SuggestionView
}

func (e *DuplicateSuggestionError) Error() string {
	return fmt.Sprintf("suggestion for case %q already exists (id %d)", e.Existing.CaseNumber, e.Existing.ID)
}

func (e *DuplicateSuggestionError) Unwrap() error { return ErrAlreadyExists }
