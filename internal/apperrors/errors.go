package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed an entity invariant check.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrIllegalTransition indicates that a requested order status is not reachable
// from the order's current status.
var ErrIllegalTransition = errors.New("illegal status transition")

// ErrDataUnavailable indicates that a storage collection could not be read.
var ErrDataUnavailable = errors.New("data unavailable")

// ErrConflict indicates that a concurrent update lost a race and should be
// retried by the caller.
var ErrConflict = errors.New("concurrent update conflict")

// ValidationError reports a violated entity invariant. It names the entity,
// the offending field, the rule that was broken and the value that broke it so
// callers can render a precise message. Invariant violations are never
// auto-corrected.
type ValidationError struct {
	Entity string
	Field  string
	Rule   string
	Value  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s.%s %s (got %s)", e.Entity, e.Field, e.Rule, e.Value)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError builds a ValidationError for the given entity invariant.
func NewValidationError(entity, field, rule, value string) *ValidationError {
	return &ValidationError{Entity: entity, Field: field, Rule: rule, Value: value}
}

// IllegalTransitionError reports a rejected order status change.
type IllegalTransitionError struct {
	From string
	To   string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("cannot transition order status from %s to %s", e.From, e.To)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }

// DataUnavailableError identifies which entity collection failed to load.
// Aggregation is all-or-nothing per request, so the caller gets this instead
// of a partial summary.
type DataUnavailableError struct {
	Collection string
	Err        error
}

func (e *DataUnavailableError) Error() string {
	return fmt.Sprintf("collection %s unavailable: %v", e.Collection, e.Err)
}

func (e *DataUnavailableError) Unwrap() error { return ErrDataUnavailable }

// ConflictError reports a lost optimistic-concurrency race on a record update.
// It is surfaced to the caller for retry, never retried internally.
type ConflictError struct {
	Entity string
	ID     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s was modified concurrently", e.Entity, e.ID)
}

func (e *ConflictError) Unwrap() error { return ErrConflict }
