// Package errors provides custom error types for the rollcall system.
// Structural and semantic data problems are reported as collected strings
// by the lint engine, never as errors; the types here cover the conditions
// that genuinely abort processing (bad configuration, unreadable files,
// unresolvable lookups, ambiguous merges).
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the rollcall system
var (
	// ErrNotFound indicates that a requested resource was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadVacancy indicates a stale vacancy declaration in settings
	ErrBadVacancy = errors.New("bad vacancy")

	// ErrAmbiguousMatch indicates a merge with no single clear candidate
	ErrAmbiguousMatch = errors.New("ambiguous match")
)

// NotFoundError represents an error when a resource is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// BadVacancyError reports a vacancy declaration whose vacant_until date has
// already passed. A stale marker must be cleared by hand, so this aborts
// the affected jurisdiction's run rather than being silently ignored.
type BadVacancyError struct {
	Jurisdiction string
	Chamber      string
	District     string
	VacantUntil  string
}

// Error implements the error interface
func (e *BadVacancyError) Error() string {
	return fmt.Sprintf("expired vacancy for %s %s district %s (vacant until %s), remove it from settings",
		e.Jurisdiction, e.Chamber, e.District, e.VacantUntil)
}

// Is implements errors.Is support
func (e *BadVacancyError) Is(target error) bool {
	return target == ErrBadVacancy
}

// NewBadVacancyError creates a new BadVacancyError
func NewBadVacancyError(jurisdiction, chamber, district, vacantUntil string) *BadVacancyError {
	return &BadVacancyError{
		Jurisdiction: jurisdiction,
		Chamber:      chamber,
		District:     district,
		VacantUntil:  vacantUntil,
	}
}

// AmbiguousMatchError reports a reconciliation where more than one existing
// record plausibly matches an incoming one. The engine never guesses between
// equally plausible matches; the caller surfaces this for manual review.
type AmbiguousMatchError struct {
	Incoming   string
	Candidates []string
}

// Error implements the error interface
func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous match for %s: candidates %v", e.Incoming, e.Candidates)
}

// Is implements errors.Is support
func (e *AmbiguousMatchError) Is(target error) bool {
	return target == ErrAmbiguousMatch
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "yaml", "json"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IOError represents an error during file operations
type IOError struct {
	Operation string // "read", "write", "move", "create"
	Path      string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("IO error during %s of %s: %v", e.Operation, e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// Helper wrapping functions for common patterns

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Format: format, File: file, Message: err.Error(), Err: err}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Operation: operation, Path: path, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadVacancy checks if an error is a stale vacancy declaration
func IsBadVacancy(err error) bool {
	return errors.Is(err, ErrBadVacancy)
}

// IsAmbiguousMatch checks if an error is an ambiguous merge match
func IsAmbiguousMatch(err error) bool {
	return errors.Is(err, ErrAmbiguousMatch)
}
