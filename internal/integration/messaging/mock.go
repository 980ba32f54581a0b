// Package messaging delivers quote messages through external providers.
package messaging

import (
	"context"
	"fmt"
	"sync"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// SentMessage records a message accepted by a mock sender.
type SentMessage struct {
	To   string
	Body string
}

// MockSender records e-mails and WhatsApp messages instead of delivering them.
type MockSender struct {
	mu         sync.Mutex
	SentEmails []adapter.SendEmailInput
	SentChats  []SentMessage
	FailError  error
}

// NewMockSender creates a new mock sender.
func NewMockSender() *MockSender {
	return &MockSender{}
}

// IsAvailable always reports true.
func (m *MockSender) IsAvailable() bool {
	return true
}

// Send implements the adapter.EmailSender interface for testing.
func (m *MockSender) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailError != nil {
		return nil, m.FailError
	}
	m.SentEmails = append(m.SentEmails, input)
	return &adapter.SendEmailResult{MessageID: fmt.Sprintf("mock-email-%d", len(m.SentEmails))}, nil
}

// SendWhatsApp implements the adapter.WhatsAppSender interface for testing.
func (m *MockSender) SendWhatsApp(_ context.Context, phone, body string) (*adapter.SendMessageResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailError != nil {
		return nil, m.FailError
	}
	m.SentChats = append(m.SentChats, SentMessage{To: phone, Body: body})
	return &adapter.SendMessageResult{MessageID: fmt.Sprintf("mock-chat-%d", len(m.SentChats))}, nil
}

// Reset clears recorded messages and the failure configuration.
func (m *MockSender) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentEmails = nil
	m.SentChats = nil
	m.FailError = nil
}

// Ensure implementations satisfy interfaces.
var (
	_ adapter.EmailSender    = (*ResendClient)(nil)
	_ adapter.WhatsAppSender = (*TwilioClient)(nil)
	_ adapter.EmailSender    = (*MockSender)(nil)
	_ adapter.WhatsAppSender = (*MockSender)(nil)
)
