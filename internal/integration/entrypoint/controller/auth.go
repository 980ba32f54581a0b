// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/usecase/auth"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication endpoints.
type AuthController struct {
	loginUseCase *auth.LoginOwnerUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(loginUseCase *auth.LoginOwnerUseCase) *AuthController {
	return &AuthController{
		loginUseCase: loginUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeInvalidCredentials))
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginOwnerInput{
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTokenResponse(output.AccessToken))
}
