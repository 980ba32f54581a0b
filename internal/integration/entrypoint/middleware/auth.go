// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/adapter"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

// SubjectKey is the context key for the authenticated token subject.
const SubjectKey ContextKey = "subject"

// AuthMiddleware provides JWT authentication middleware for the studio owner.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	enabled      bool
}

// NewAuthMiddleware creates a new auth middleware instance.
// When enabled is false every request passes, which is how a local single-user install runs.
func NewAuthMiddleware(tokenService adapter.TokenService, enabled bool) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		enabled:      enabled,
	}
}

// Authenticate returns a Gin middleware handler that enforces JWT authentication.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.enabled {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			abortUnauthorized(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}
		if token == "" {
			abortUnauthorized(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Set(string(SubjectKey), claims.Subject)
		c.Next()
	}
}

// GetSubjectFromContext extracts the authenticated subject from the Gin context.
func GetSubjectFromContext(c *gin.Context) (string, bool) {
	subject, exists := c.Get(string(SubjectKey))
	if !exists {
		return "", false
	}
	s, ok := subject.(string)
	return s, ok
}

func abortUnauthorized(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}
