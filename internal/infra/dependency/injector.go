// Package dependency provides dependency injection for the application.
package dependency

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/inkprofit/backend/config"
	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/application/usecase/auth"
	"github.com/inkprofit/backend/internal/application/usecase/client"
	"github.com/inkprofit/backend/internal/application/usecase/document"
	"github.com/inkprofit/backend/internal/application/usecase/pricing"
	"github.com/inkprofit/backend/internal/application/usecase/proposal"
	"github.com/inkprofit/backend/internal/application/usecase/report"
	"github.com/inkprofit/backend/internal/application/usecase/settings"
	"github.com/inkprofit/backend/internal/application/usecase/share"
	infradb "github.com/inkprofit/backend/internal/infra/db"
	"github.com/inkprofit/backend/internal/infra/server/router"
	"github.com/inkprofit/backend/internal/integration/adapters"
	pdfdocument "github.com/inkprofit/backend/internal/integration/document"
	"github.com/inkprofit/backend/internal/integration/entrypoint/controller"
	"github.com/inkprofit/backend/internal/integration/entrypoint/middleware"
	"github.com/inkprofit/backend/internal/integration/messaging"
	"github.com/inkprofit/backend/internal/integration/persistence"
)

// Overrides replaces external collaborators, mainly for tests. Nil fields use the real implementation.
type Overrides struct {
	Clock          adapter.Clock
	PricingAdvisor adapter.PricingAdvisor
	WhatsAppSender adapter.WhatsAppSender
	EmailSender    adapter.EmailSender
	Renderer       adapter.DocumentRenderer
	HealthCheck    func() bool
}

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	LoginRateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, in which case settings are read straight from the database.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, overrides Overrides) *Injector {
	clock := overrides.Clock
	if clock == nil {
		clock = adapter.SystemClock()
	}

	// Create repositories
	proposalRepo := persistence.NewProposalRepository(db)
	clientRepo := persistence.NewClientRepository(db)
	settingsRepo := persistence.NewCachedSettingsRepository(
		persistence.NewSettingsRepository(db),
		redisClient,
		cfg.Redis.CacheTTL,
	)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry, clock)

	var advisor adapter.PricingAdvisor = adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if overrides.PricingAdvisor != nil {
		advisor = overrides.PricingAdvisor
	}

	var whatsApp adapter.WhatsAppSender = messaging.NewTwilioClient(
		cfg.Twilio.AccountSID,
		cfg.Twilio.AuthToken,
		cfg.Twilio.WhatsAppNumber,
	)
	if overrides.WhatsAppSender != nil {
		whatsApp = overrides.WhatsAppSender
	}

	var email adapter.EmailSender = messaging.NewResendClient(
		cfg.Email.ResendAPIKey,
		cfg.Email.FromName,
		cfg.Email.FromEmail,
	)
	if overrides.EmailSender != nil {
		email = overrides.EmailSender
	}

	var renderer adapter.DocumentRenderer = pdfdocument.NewPDFRenderer(cfg.Documents.FontFamily)
	if overrides.Renderer != nil {
		renderer = overrides.Renderer
	}

	// Create auth use cases
	loginUseCase := auth.NewLoginOwnerUseCase(cfg.Auth.OwnerPasswordHash, passwordService, tokenService)

	// Create settings use cases
	getCostProfileUseCase := settings.NewGetCostProfileUseCase(settingsRepo)
	updateCostProfileUseCase := settings.NewUpdateCostProfileUseCase(settingsRepo)
	getStudioProfileUseCase := settings.NewGetStudioProfileUseCase(settingsRepo)
	updateStudioProfileUseCase := settings.NewUpdateStudioProfileUseCase(settingsRepo)

	// Create pricing use cases
	catalogUseCase := pricing.NewGetCatalogUseCase()
	quoteUseCase := pricing.NewQuoteUseCase()
	analyzePricingUseCase := pricing.NewAnalyzePricingUseCase(advisor)
	salesPitchUseCase := pricing.NewGenerateSalesPitchUseCase(advisor)

	// Create client use cases
	listClientsUseCase := client.NewListClientsUseCase(clientRepo)
	createClientUseCase := client.NewCreateClientUseCase(clientRepo, clock)
	getClientUseCase := client.NewGetClientUseCase(clientRepo)
	updateClientUseCase := client.NewUpdateClientUseCase(clientRepo, clock)
	deleteClientUseCase := client.NewDeleteClientUseCase(clientRepo)

	// Create proposal use cases
	saveProposalUseCase := proposal.NewSaveProposalUseCase(proposalRepo, clientRepo, clock)
	listProposalsUseCase := proposal.NewListProposalsUseCase(proposalRepo)
	getProposalUseCase := proposal.NewGetProposalUseCase(proposalRepo)
	closeProposalUseCase := proposal.NewCloseProposalUseCase(proposalRepo)
	deleteProposalUseCase := proposal.NewDeleteProposalUseCase(proposalRepo)
	renderDocumentUseCase := document.NewRenderDocumentUseCase(proposalRepo, settingsRepo, renderer, clock)
	shareProposalUseCase := share.NewShareProposalUseCase(proposalRepo, clientRepo, settingsRepo, whatsApp, email)

	// Create report use cases
	financialReportUseCase := report.NewGetFinancialReportUseCase(proposalRepo, clock, cfg.Report.Location())

	// Create controllers
	dbHealthCheck := overrides.HealthCheck
	if dbHealthCheck == nil {
		dbHealthCheck = func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		}
	}
	healthController := controller.NewHealthController(dbHealthCheck, infradb.RedisHealthCheck(redisClient))

	authController := controller.NewAuthController(loginUseCase)

	settingsController := controller.NewSettingsController(
		getCostProfileUseCase,
		updateCostProfileUseCase,
		getStudioProfileUseCase,
		updateStudioProfileUseCase,
	)

	pricingController := controller.NewPricingController(
		catalogUseCase,
		quoteUseCase,
		analyzePricingUseCase,
		salesPitchUseCase,
		getCostProfileUseCase,
	)

	clientController := controller.NewClientController(
		listClientsUseCase,
		createClientUseCase,
		getClientUseCase,
		updateClientUseCase,
		deleteClientUseCase,
	)

	proposalController := controller.NewProposalController(
		saveProposalUseCase,
		listProposalsUseCase,
		getProposalUseCase,
		closeProposalUseCase,
		deleteProposalUseCase,
		renderDocumentUseCase,
		shareProposalUseCase,
		getCostProfileUseCase,
	)

	reportController := controller.NewReportController(financialReportUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	maxAttempts := cfg.Auth.LoginMaxAttempts
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		maxAttempts = 1000
	}
	loginRateLimiter := middleware.NewRateLimiter(maxAttempts, cfg.Auth.LoginAttemptWindow)
	authMiddleware := middleware.NewAuthMiddleware(tokenService, loginUseCase.Enabled())

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		settingsController,
		pricingController,
		clientController,
		proposalController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Redis:  redisClient,
		Router: r,

		LoginRateLimiter: loginRateLimiter,
	}
}
