// Package failures holds the error taxonomy of the estimate workflow.
//
// Every failure is a typed error carrying detail plus a sentinel it matches
// through errors.Is, so callers can branch on the kind without a type switch.
package failures

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation error")
	ErrConstraint = errors.New("recall constraint error")
	ErrState      = errors.New("claim state error")
	ErrTransport  = errors.New("transport error")
	ErrNotFound   = errors.New("not found")
)

// ValidationError is client-detectable bad input, or input the authority rejected as malformed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Reason)
	}
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConstraintError is a recall-rule violation.
type ConstraintError struct {
	VIN    string
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("recall constraint violated for vin %s: %s", e.VIN, e.Reason)
}

func (e *ConstraintError) Is(target error) bool { return target == ErrConstraint }

// StateError carries the authority's message verbatim.
type StateError struct {
	Message string
}

func (e *StateError) Error() string { return e.Message }

func (e *StateError) Is(target error) bool { return target == ErrState }

// TransportError is a network failure or a 5xx from the authority. It is never retried here.
type TransportError struct {
	Operation  string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: authority returned status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", e.Operation, e.Err)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }
