// Package error defines domain-specific errors for the InkProfit application.
package error

import "errors"

// Client domain errors.
var (
	// ErrClientNotFound is returned when a client is not found in the system.
	ErrClientNotFound = errors.New("client not found")

	// ErrClientNameRequired is returned when a client has no name.
	ErrClientNameRequired = errors.New("client name is required")

	// ErrClientPhoneRequired is returned when a client has no phone number.
	ErrClientPhoneRequired = errors.New("client phone is required")

	// ErrClientPhoneInvalid is returned when a phone has fewer than 8 digits.
	ErrClientPhoneInvalid = errors.New("client phone must have at least 8 digits")
)

// ClientErrorCode defines error codes for client errors.
// Format: CLI-XXYYYY where XX is category and YYYY is specific error.
type ClientErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClientNameRequired  ClientErrorCode = "CLI-010001"
	ErrCodeClientPhoneRequired ClientErrorCode = "CLI-010002"
	ErrCodeMissingClientFields ClientErrorCode = "CLI-010003"
	ErrCodeClientPhoneInvalid  ClientErrorCode = "CLI-010004"

	// Not found errors (02XXXX)
	ErrCodeClientNotFound ClientErrorCode = "CLI-020001"
)

// ClientError represents a client error with code and message.
type ClientError struct {
	Code    ClientErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ClientError) Unwrap() error {
	return e.Err
}

// NewClientError creates a new ClientError with the given code and message.
func NewClientError(code ClientErrorCode, message string, err error) *ClientError {
	return &ClientError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
