// Package domain defines the core domain models for admintok.
package domain

import (
	"errors"
	"fmt"
)

// DomainError represents a tool-level error with a structured error code.
// Codes follow the AT-<AREA>-<NNNN> convention so scripted callers can
// branch on them without parsing messages.
type DomainError struct {
	Code    string // Error code (e.g., "AT-ARG-1002")
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison by code.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// IsDomainError checks if an error is a DomainError with the given code.
// If code is empty, it only checks if the error is a DomainError.
func IsDomainError(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		if code == "" {
			return true
		}
		return de.Code == code
	}
	return false
}

// GetErrorCode extracts the error code from an error if it's a DomainError.
func GetErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// Argument errors (ARG).
var (
	// ErrInvalidArgument indicates an invalid argument.
	ErrInvalidArgument = NewDomainError("AT-ARG-1001", "invalid argument")

	// ErrSecretMissing indicates no usable admin secret was supplied.
	ErrSecretMissing = NewDomainError("AT-ARG-1002", "no admin secret provided")

	// ErrSecretEncoding indicates the secret is not valid UTF-8 text.
	ErrSecretEncoding = NewDomainError("AT-ARG-1004", "admin secret is not valid UTF-8")
)

// Cryptography errors (CRYPT).
var (
	// ErrEntropyUnavailable indicates the CSPRNG could not supply bytes.
	// Fatal for the invocation; there is no fallback source.
	ErrEntropyUnavailable = NewDomainError("AT-CRYPT-5001", "secure random source unavailable")

	// ErrTokenGeneration indicates an unexpected failure in the pipeline.
	ErrTokenGeneration = NewDomainError("AT-CRYPT-5000", "token generation failed")
)

// Configuration errors (CONF).
var (
	// ErrConfigInvalid indicates the configuration could not be loaded.
	ErrConfigInvalid = NewDomainError("AT-CONF-1001", "invalid configuration")
)
