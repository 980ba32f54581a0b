// Package error defines domain-specific errors for the InkProfit application.
package error

import "errors"

// Sharing and document domain errors.
var (
	// ErrInvalidShareChannel is returned when the channel is not whatsapp or email.
	ErrInvalidShareChannel = errors.New("channel must be whatsapp or email")

	// ErrClientPhoneMissing is returned when a proposal has no phone to send to.
	ErrClientPhoneMissing = errors.New("client phone not available for this proposal")

	// ErrClientEmailMissing is returned when the proposal's client has no e-mail.
	ErrClientEmailMissing = errors.New("client e-mail not available for this proposal")

	// ErrChannelUnavailable is returned when the delivery provider is not configured.
	ErrChannelUnavailable = errors.New("delivery channel is not configured")

	// ErrInvalidDocumentType is returned when the requested document kind does not exist.
	ErrInvalidDocumentType = errors.New("document type must be contract, anamnesis or aftercare")
)

// ShareErrorCode defines error codes for sharing and document errors.
// Format: SHR-XXYYYY where XX is category and YYYY is specific error.
type ShareErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidShareChannel ShareErrorCode = "SHR-010001"
	ErrCodeClientPhoneMissing  ShareErrorCode = "SHR-010002"
	ErrCodeClientEmailMissing  ShareErrorCode = "SHR-010003"
	ErrCodeInvalidDocumentType ShareErrorCode = "SHR-010004"

	// Provider errors (99XXXX)
	ErrCodeChannelUnavailable ShareErrorCode = "SHR-990001"
	ErrCodeDeliveryFailed     ShareErrorCode = "SHR-990002"
)

// ShareError represents a sharing or document error with code and message.
type ShareError struct {
	Code    ShareErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShareError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShareError) Unwrap() error {
	return e.Err
}

// NewShareError creates a new ShareError with the given code and message.
func NewShareError(code ShareErrorCode, message string, err error) *ShareError {
	return &ShareError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
