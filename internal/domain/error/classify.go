// Package error defines domain-specific errors for the InkProfit application.
package error

import "errors"

var validationErrors = []error{
	ErrClientRequired,
	ErrProposalClientNotFound,
	ErrInvalidProposalStatus,
	ErrInvalidProject,
	ErrClientNameRequired,
	ErrClientPhoneRequired,
	ErrClientPhoneInvalid,
	ErrNegativeCost,
	ErrLogoTooLarge,
	ErrInvalidShareChannel,
	ErrClientPhoneMissing,
	ErrClientEmailMissing,
	ErrInvalidDocumentType,
}

var notFoundErrors = []error{
	ErrProposalNotFound,
	ErrClientNotFound,
}

// IsValidation reports whether err is a caller precondition failure. The caller should re-prompt.
func IsValidation(err error) bool {
	return matchesAny(err, validationErrors)
}

// IsNotFound reports whether err targets a record that does not exist.
func IsNotFound(err error) bool {
	return matchesAny(err, notFoundErrors)
}

// IsInvalidTransition reports whether err rejects a lifecycle transition.
func IsInvalidTransition(err error) bool {
	return errors.Is(err, ErrProposalAlreadyCompleted)
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
