package domain

import (
	"errors"
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeAuth              = "AUTH_ERROR"
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeNetwork           = "NETWORK_ERROR"
	ErrCodeExport            = "EXPORT_ERROR"
	ErrCodeConfig            = "CONFIG_ERROR"
	ErrCodeOutput            = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewValidationError creates a pre-flight validation error. Validation
// errors are raised locally, before any network call is made.
func NewValidationError(message string) error {
	return NewDomainError(ErrCodeValidation, message, nil)
}

// NewAuthError creates an authentication error from a server rejection
func NewAuthError(message string, cause error) error {
	return NewDomainError(ErrCodeAuth, message, cause)
}

// NewNotFoundError creates a not-found error for a missing or deleted analysis
func NewNotFoundError(message string, cause error) error {
	return NewDomainError(ErrCodeNotFound, message, cause)
}

// NewNetworkError creates a transport-level failure error
func NewNetworkError(message string, cause error) error {
	return NewDomainError(ErrCodeNetwork, message, cause)
}

// NewExportError creates a report export error
func NewExportError(message string, cause error) error {
	return NewDomainError(ErrCodeExport, message, cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfig, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutput, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// HasErrorCode reports whether err is a DomainError carrying the given code
func HasErrorCode(err error, code string) bool {
	var de DomainError
	return errors.As(err, &de) && de.Code == code
}

// IsValidationError reports whether err is a local validation failure
func IsValidationError(err error) bool { return HasErrorCode(err, ErrCodeValidation) }

// IsAuthError reports whether err is an authentication rejection
func IsAuthError(err error) bool { return HasErrorCode(err, ErrCodeAuth) }

// IsNotFoundError reports whether err is a missing-analysis error
func IsNotFoundError(err error) bool { return HasErrorCode(err, ErrCodeNotFound) }

// IsNetworkError reports whether err is a transport failure
func IsNetworkError(err error) bool { return HasErrorCode(err, ErrCodeNetwork) }
