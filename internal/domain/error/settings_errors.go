// Package error defines domain-specific errors for the InkProfit application.
package error

import "errors"

// Settings domain errors.
var (
	// ErrNegativeCost is returned when a monthly expense or capacity figure is negative.
	ErrNegativeCost = errors.New("cost profile values must not be negative")

	// ErrLogoTooLarge is returned when the studio logo exceeds the size limit.
	ErrLogoTooLarge = errors.New("logo must be smaller than 500KB")

	// ErrSettingNotFound is returned by storage when a key has never been written.
	ErrSettingNotFound = errors.New("setting not found")
)

// SettingsErrorCode defines error codes for settings errors.
// Format: SET-XXYYYY where XX is category and YYYY is specific error.
type SettingsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeNegativeCost          SettingsErrorCode = "SET-010001"
	ErrCodeLogoTooLarge          SettingsErrorCode = "SET-010002"
	ErrCodeMissingSettingsFields SettingsErrorCode = "SET-010003"
)

// SettingsError represents a settings error with code and message.
type SettingsError struct {
	Code    SettingsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *SettingsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *SettingsError) Unwrap() error {
	return e.Err
}

// NewSettingsError creates a new SettingsError with the given code and message.
func NewSettingsError(code SettingsErrorCode, message string, err error) *SettingsError {
	return &SettingsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
