// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MinPhoneDigits is the shortest phone number accepted for a client.
const MinPhoneDigits = 8

// Client represents a customer of the studio.
type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	Email     string // optional
	Notes     string // optional
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewClient creates a new Client entity.
func NewClient(name, phone, email, notes string) *Client {
	now := time.Now().UTC()

	return &Client{
		ID:        uuid.New(),
		Name:      name,
		Phone:     phone,
		Email:     email,
		Notes:     notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// PhoneDigits strips everything but digits, e.g. "+55 (11) 98888-7777" becomes "5511988887777".
func PhoneDigits(phone string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
}
