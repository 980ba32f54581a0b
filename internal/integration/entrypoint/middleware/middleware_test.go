package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
)

type stubTokenService struct{}

func (stubTokenService) GenerateAccessToken(_ context.Context, subject string) (*adapter.AccessToken, error) {
	return &adapter.AccessToken{Token: "valid"}, nil
}

func (stubTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "valid" {
		return nil, errors.New("bad token")
	}
	return &adapter.TokenClaims{Subject: "owner"}, nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlers = append(handlers, func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		c.String(http.StatusOK, subject)
	})
	r.GET("/", handlers...)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		enabled    bool
		header     string
		wantStatus int
		wantBody   string
	}{
		{"disabled lets everything through", false, "", http.StatusOK, ""},
		{"missing header", true, "", http.StatusUnauthorized, "AUTH-030003"},
		{"wrong scheme", true, "Basic abc", http.StatusUnauthorized, "AUTH-030001"},
		{"empty bearer", true, "Bearer ", http.StatusUnauthorized, "AUTH-030003"},
		{"invalid token", true, "Bearer nope", http.StatusUnauthorized, "AUTH-030001"},
		{"valid token", true, "Bearer valid", http.StatusOK, "owner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newEngine(NewAuthMiddleware(stubTokenService{}, tt.enabled).Authenticate())
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(2, time.Minute).WithClock(func() time.Time { return now })
	r := newEngine(limiter.Middleware())

	hit := func() int {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		return rec.Code
	}

	require.Equal(t, http.StatusOK, hit())
	require.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, hit())

	now = now.Add(2 * time.Minute)
	limiter.Cleanup()
	assert.Empty(t, limiter.entries)
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := newEngine(NewRateLimiter(-1, 0).Middleware())
	for i := 0; i < 10; i++ {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestRateLimiter_RunCleanupStopsWithContext(t *testing.T) {
	limiter := NewRateLimiter(1, time.Millisecond)
	require.True(t, limiter.allow("10.0.0.1"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		limiter.RunCleanup(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		limiter.mu.Lock()
		defer limiter.mu.Unlock()
		return len(limiter.entries) == 0
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
