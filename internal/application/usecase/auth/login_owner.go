// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkprofit/backend/internal/application/adapter"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// OwnerSubject is the token subject of the single studio owner.
const OwnerSubject = "owner"

// LoginOwnerInput represents the input for owner login.
type LoginOwnerInput struct {
	Password string
}

// LoginOwnerOutput represents the output of owner login.
type LoginOwnerOutput struct {
	AccessToken *adapter.AccessToken
}

// LoginOwnerUseCase checks the owner password and issues an access token.
type LoginOwnerUseCase struct {
	passwordHash    string
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginOwnerUseCase creates a new LoginOwnerUseCase instance.
// An empty passwordHash leaves login disabled.
func NewLoginOwnerUseCase(
	passwordHash string,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginOwnerUseCase {
	return &LoginOwnerUseCase{
		passwordHash:    strings.TrimSpace(passwordHash),
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Enabled reports whether an owner password is configured.
func (uc *LoginOwnerUseCase) Enabled() bool {
	return uc.passwordHash != ""
}

// Execute performs the owner login.
func (uc *LoginOwnerUseCase) Execute(ctx context.Context, input LoginOwnerInput) (*LoginOwnerOutput, error) {
	if !uc.Enabled() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAuthNotConfigured,
			"owner login is not configured",
			domainerror.ErrAuthNotConfigured,
		)
	}

	if input.Password == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	if err := uc.passwordService.VerifyPassword(uc.passwordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, OwnerSubject)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginOwnerOutput{
		AccessToken: token,
	}, nil
}
