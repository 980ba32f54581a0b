// Package messaging delivers quote messages through external providers.
package messaging

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// TwilioClient implements the adapter.WhatsAppSender interface using Twilio.
type TwilioClient struct {
	client     *twilio.RestClient
	accountSID string
	fromNumber string
}

// NewTwilioClient creates a new Twilio client. fromNumber is the studio's WhatsApp sender in E.164.
func NewTwilioClient(accountSID, authToken, fromNumber string) *TwilioClient {
	return &TwilioClient{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		accountSID: accountSID,
		fromNumber: fromNumber,
	}
}

// IsAvailable reports whether credentials and a sender number are configured.
func (c *TwilioClient) IsAvailable() bool {
	return c.accountSID != "" && c.fromNumber != ""
}

// SendWhatsApp sends body to phone through the Twilio WhatsApp channel.
func (c *TwilioClient) SendWhatsApp(_ context.Context, phone, body string) (*adapter.SendMessageResult, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(whatsAppAddress(phone))
	params.SetFrom(whatsAppAddress(c.fromNumber))
	params.SetBody(body)

	resp, err := c.client.Api.CreateMessage(params)
	if err != nil {
		return nil, fmt.Errorf("twilio create message: %w", err)
	}

	result := &adapter.SendMessageResult{}
	if resp.Sid != nil {
		result.MessageID = *resp.Sid
	}
	return result, nil
}

func whatsAppAddress(phone string) string {
	if strings.HasPrefix(phone, "whatsapp:") {
		return phone
	}
	if !strings.HasPrefix(phone, "+") {
		phone = "+" + phone
	}
	return "whatsapp:" + phone
}
