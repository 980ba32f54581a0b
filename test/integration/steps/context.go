// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/config"
	"github.com/inkprofit/backend/internal/infra/dependency"
	"github.com/inkprofit/backend/internal/integration/messaging"
	"github.com/inkprofit/backend/internal/integration/persistence/model"
	"github.com/inkprofit/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken string

	// Collaborators
	cfg     *config.Config
	db      *mock.Db
	clock   *mock.Time
	sender  *messaging.MockSender
	advisor *mock.Advisor

	// Values captured from earlier responses, referenced as {name}
	vars map[string]string
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Auth.JWTSecret = testJWTSecret
		cfg.Auth.OwnerPasswordHash = ""
		cfg.Report.TimeZone = "UTC"

		database := mock.NewDb(model.All()...)
		if err := database.ClearDB(); err != nil {
			return ctx, fmt.Errorf("failed to clear database: %w", err)
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, fmt.Errorf("failed to clear redis: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            cfg,
			db:             database,
			clock:          mock.NewTime(),
			sender:         messaging.NewMockSender(),
			advisor:        mock.NewAdvisor(),
			vars:           make(map[string]string),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerSetupSteps(ctx)
	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerStateSteps(ctx)
}

// ensureServer builds the application lazily so setup steps can still change the configuration.
func (tc *TestContext) ensureServer() {
	if tc.server != nil {
		return
	}

	injector := dependency.NewInjector(tc.cfg, tc.db.DbConn, mock.NewRedis(), dependency.Overrides{
		Clock:          tc.clock,
		PricingAdvisor: tc.advisor,
		WhatsAppSender: tc.sender,
		EmailSender:    tc.sender,
	})
	tc.server = httptest.NewServer(injector.Router.Setup("test"))
}

// interpolate replaces {name} placeholders with values captured earlier in the scenario.
func (tc *TestContext) interpolate(s string) string {
	for name, value := range tc.vars {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}
