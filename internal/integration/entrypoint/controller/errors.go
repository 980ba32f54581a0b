// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// handleError maps a use case error to an HTTP response.
func handleError(ctx *gin.Context, err error) {
	status := statusForError(err)
	message, code := describeError(err)

	if status == http.StatusInternalServerError {
		slog.Error("Request failed",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"error", err,
		)
		message = "An internal error occurred"
	}

	ctx.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// statusForError classifies err into an HTTP status code.
func statusForError(err error) int {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case domainerror.ErrCodeRateLimited:
			return http.StatusTooManyRequests
		case domainerror.ErrCodeAuthNotConfigured:
			return http.StatusServiceUnavailable
		default:
			return http.StatusUnauthorized
		}
	}

	var shareErr *domainerror.ShareError
	if errors.As(err, &shareErr) && shareErr.Code == domainerror.ErrCodeDeliveryFailed {
		return http.StatusBadGateway
	}

	switch {
	case domainerror.IsValidation(err):
		return http.StatusBadRequest
	case domainerror.IsNotFound(err):
		return http.StatusNotFound
	case domainerror.IsInvalidTransition(err):
		return http.StatusConflict
	case errors.Is(err, domainerror.ErrChannelUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// describeError extracts the public message and code of a typed domain error.
func describeError(err error) (string, string) {
	var (
		proposalErr *domainerror.ProposalError
		clientErr   *domainerror.ClientError
		settingsErr *domainerror.SettingsError
		shareErr    *domainerror.ShareError
		authErr     *domainerror.AuthError
	)

	switch {
	case errors.As(err, &proposalErr):
		return proposalErr.Error(), string(proposalErr.Code)
	case errors.As(err, &clientErr):
		return clientErr.Error(), string(clientErr.Code)
	case errors.As(err, &settingsErr):
		return settingsErr.Error(), string(settingsErr.Code)
	case errors.As(err, &shareErr):
		return shareErr.Error(), string(shareErr.Code)
	case errors.As(err, &authErr):
		return authErr.Message, string(authErr.Code)
	default:
		return err.Error(), ""
	}
}

// badRequest writes a 400 response for malformed input.
func badRequest(ctx *gin.Context, message, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// invalidBody writes a 400 response for a request body that failed binding.
func invalidBody(ctx *gin.Context, err error, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Code:    code,
		Details: err.Error(),
	})
}

// parseIDParam reads a UUID path parameter, writing a 400 response when it is malformed.
func parseIDParam(ctx *gin.Context, name, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param(name))
	if err != nil {
		badRequest(ctx, "Invalid "+name+" format", code)
		return uuid.Nil, false
	}
	return id, true
}
