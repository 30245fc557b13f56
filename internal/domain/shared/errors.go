// Package shared contains common domain types, errors, and events that are
// used across all domain packages. This package has zero external dependencies.
package shared

import (
	"errors"
	"fmt"
)

// Base domain errors that can be used for error checking with errors.Is().
// They map one-to-one onto the failure taxonomy the HTTP layer exposes:
// unauthenticated, forbidden, not-found, conflict, validation, integrity.
var (
	// Entity errors
	ErrNotFound      = errors.New("entity not found")
	ErrAlreadyExists = errors.New("entity already exists")

	// Validation errors
	ErrValidation   = errors.New("validation error")
	ErrInvalidID    = errors.New("invalid ID")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyValue   = errors.New("value cannot be empty")

	// State errors
	ErrInvalidState    = errors.New("invalid state")
	ErrStateTransition = errors.New("invalid state transition")
	ErrConflict        = errors.New("conflict with current state")

	// Authorization errors
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")

	// Invariant errors. A DataIntegrity error is never expected during
	// normal operation; it signals corrupted onboarding state and must be
	// logged and surfaced as an internal error.
	ErrDataIntegrity = errors.New("data integrity violation")

	// External service errors
	ErrExternalService    = errors.New("external service error")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// DomainError represents a domain-specific error with context.
type DomainError struct {
	Domain  string // e.g., "matching", "profile", "auth"
	Op      string // Operation that failed, e.g., "Create", "Accept"
	Kind    error  // Base error type for errors.Is() checking
	Message string // Human-readable message
	Err     error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// NewDomainError creates a new domain error.
func NewDomainError(domain, op string, kind error, message string) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
	}
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Profile domain errors
var (
	ErrUserNotFound       = NewDomainError("profile", "Find", ErrNotFound, "user not found")
	ErrMentorNotFound     = NewDomainError("profile", "Find", ErrNotFound, "mentor not found")
	ErrMenteeNotFound     = NewDomainError("profile", "Find", ErrNotFound, "mentee not found")
	ErrUniversityNotFound = NewDomainError("profile", "Find", ErrNotFound, "university not found")
	ErrEmailTaken         = NewDomainError("profile", "Signup", ErrAlreadyExists, "email already registered")
	ErrNoRoleLinkage      = NewDomainError("profile", "ResolveRole", ErrDataIntegrity, "user has no role linkage")
)

// Matching domain errors
var (
	ErrRequestNotFound     = NewDomainError("matching", "Find", ErrNotFound, "match request not found")
	ErrMentorshipNotFound  = NewDomainError("matching", "Find", ErrNotFound, "mentorship not found")
	ErrMeetingNotFound     = NewDomainError("matching", "Find", ErrNotFound, "meeting not found")
	ErrCertificateNotFound = NewDomainError("matching", "Find", ErrNotFound, "certificate not found")
	ErrMentorBusy          = NewDomainError("matching", "Create", ErrConflict, "mentor already has an active mentorship or pending request")
	ErrMenteeBusy          = NewDomainError("matching", "Create", ErrConflict, "mentee already has an active mentorship or pending request")
	ErrNoEligibleMentors   = NewDomainError("matching", "Select", ErrConflict, "no eligible mentors available")
	ErrRequestNotPending   = NewDomainError("matching", "Transition", ErrStateTransition, "match request is not pending")
)

// Auth domain errors
var (
	ErrInvalidCredentials = NewDomainError("auth", "Login", ErrUnauthenticated, "invalid credentials")
	ErrInvalidToken       = NewDomainError("auth", "Authorize", ErrUnauthenticated, "invalid or expired token")
	ErrAdminOnly          = NewDomainError("auth", "Authorize", ErrForbidden, "operation failed")
)

// IsNotFound checks if the error is a "not found" error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict) || errors.Is(err, ErrAlreadyExists)
}

// IsUnauthenticated checks if the error is an authentication failure.
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated)
}

// IsForbidden checks if the error is an authorization failure.
func IsForbidden(err error) bool {
	return errors.Is(err, ErrForbidden)
}

// IsValidation checks if the error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrEmptyValue)
}

// IsDataIntegrity checks if the error signals a broken invariant.
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}
