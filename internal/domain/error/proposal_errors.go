// Package error defines domain-specific errors for the InkProfit application.
package error

import "errors"

// Proposal domain errors.
var (
	// ErrClientRequired is returned when a proposal is saved without a client.
	ErrClientRequired = errors.New("a client must be selected to save a proposal")

	// ErrProposalClientNotFound is returned when the selected client does not exist.
	ErrProposalClientNotFound = errors.New("selected client not found")

	// ErrInvalidProposalStatus is returned when a proposal status is not draft or completed.
	ErrInvalidProposalStatus = errors.New("invalid proposal status")

	// ErrInvalidProject is returned when project fields are outside their allowed values.
	ErrInvalidProject = errors.New("invalid project")

	// ErrProposalNotFound is returned when a proposal is not found in the system.
	ErrProposalNotFound = errors.New("proposal not found")

	// ErrProposalAlreadyCompleted is returned when closing a proposal that is already completed.
	ErrProposalAlreadyCompleted = errors.New("proposal is already completed")
)

// ProposalErrorCode defines error codes for proposal errors.
// Format: PRP-XXYYYY where XX is category and YYYY is specific error.
type ProposalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeClientRequired         ProposalErrorCode = "PRP-010001"
	ErrCodeProposalClientNotFound ProposalErrorCode = "PRP-010002"
	ErrCodeInvalidProposalStatus  ProposalErrorCode = "PRP-010003"
	ErrCodeInvalidProject         ProposalErrorCode = "PRP-010004"
	ErrCodeMissingProposalFields  ProposalErrorCode = "PRP-010005"

	// Not found errors (02XXXX)
	ErrCodeProposalNotFound ProposalErrorCode = "PRP-020001"

	// Transition errors (03XXXX)
	ErrCodeProposalAlreadyCompleted ProposalErrorCode = "PRP-030001"
)

// ProposalError represents a proposal error with code and message.
type ProposalError struct {
	Code    ProposalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ProposalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ProposalError) Unwrap() error {
	return e.Err
}

// NewProposalError creates a new ProposalError with the given code and message.
func NewProposalError(code ProposalErrorCode, message string, err error) *ProposalError {
	return &ProposalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
