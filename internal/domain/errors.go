package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrValidation        = errors.New("validation error")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
)

// ErrStaleVersion is returned when an optimistic-concurrency update loses the
// race: the row changed since it was read. Callers retry, nothing is merged.
var ErrStaleVersion = fmt.Errorf("stale version: %w", ErrConflict)

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

// TransitionError reports a status change rejected by the editorial workflow.
type TransitionError struct {
	From   EditorialStatus
	To     EditorialStatus
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move %s -> %s: %s", e.From, e.To, e.Reason)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// ConflictError reports a natural-key collision on create or update.
type ConflictError struct {
	Entity EntityType
	Key    string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Entity, e.Key)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }

// NewConflictError builds a ConflictError whose key lists the colliding fields.
func NewConflictError(entity EntityType, pairs ...any) *ConflictError {
	key := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if key != "" {
			key += " "
		}
		key += fmt.Sprintf("%v=%v", pairs[i], pairs[i+1])
	}
	return &ConflictError{Entity: entity, Key: key}
}

// InUseError reports a delete refused because child rows still reference
// the entity. Dependents names the kinds of children found.
type InUseError struct {
	Entity     EntityType
	ID         string
	Dependents []string
}

func (e *InUseError) Error() string {
	return fmt.Sprintf("%s %s is still referenced by %s", e.Entity, e.ID, strings.Join(e.Dependents, ", "))
}

func (e *InUseError) Unwrap() error { return ErrConflict }
