// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	MessageID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)

	// IsAvailable checks if the provider is configured.
	IsAvailable() bool
}

// SendMessageResult represents the result of sending an instant message.
type SendMessageResult struct {
	MessageID string
}

// WhatsAppSender defines the interface for sending WhatsApp messages.
type WhatsAppSender interface {
	// SendWhatsApp sends body to an E.164 phone number.
	SendWhatsApp(ctx context.Context, phone, body string) (*SendMessageResult, error)

	// IsAvailable checks if the provider is configured.
	IsAvailable() bool
}
