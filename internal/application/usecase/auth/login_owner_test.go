package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

type plainPasswordService struct{}

func (plainPasswordService) HashPassword(password string) (string, error) {
	return "hash:" + password, nil
}

func (plainPasswordService) VerifyPassword(hashed, password string) error {
	if hashed != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokenService struct {
	subject string
}

func (s *stubTokenService) GenerateAccessToken(_ context.Context, subject string) (*adapter.AccessToken, error) {
	s.subject = subject
	return &adapter.AccessToken{Token: "signed", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (s *stubTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not used")
}

func TestLoginOwner(t *testing.T) {
	tests := []struct {
		name     string
		hash     string
		password string
		wantCode domainerror.AuthErrorCode
	}{
		{name: "valid password", hash: "hash:s3cret", password: "s3cret"},
		{name: "wrong password", hash: "hash:s3cret", password: "guess", wantCode: domainerror.ErrCodeInvalidCredentials},
		{name: "empty password", hash: "hash:s3cret", password: "", wantCode: domainerror.ErrCodeInvalidCredentials},
		{name: "not configured", hash: "  ", password: "s3cret", wantCode: domainerror.ErrCodeAuthNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := &stubTokenService{}
			uc := NewLoginOwnerUseCase(tt.hash, plainPasswordService{}, tokens)

			out, err := uc.Execute(context.Background(), LoginOwnerInput{Password: tt.password})

			if tt.wantCode == "" {
				require.NoError(t, err)
				assert.Equal(t, "signed", out.AccessToken.Token)
				assert.Equal(t, OwnerSubject, tokens.subject)
				return
			}
			var aerr *domainerror.AuthError
			require.ErrorAs(t, err, &aerr)
			assert.Equal(t, tt.wantCode, aerr.Code)
			assert.Empty(t, tokens.subject)
		})
	}
}
