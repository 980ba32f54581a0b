// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/usecase/pricing"
	"github.com/inkprofit/backend/internal/application/usecase/settings"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// PricingController handles quoting endpoints. Quotes always use the stored cost profile.
type PricingController struct {
	catalogUseCase        *pricing.GetCatalogUseCase
	quoteUseCase          *pricing.QuoteUseCase
	analyzeUseCase        *pricing.AnalyzePricingUseCase
	salesPitchUseCase     *pricing.GenerateSalesPitchUseCase
	getCostProfileUseCase *settings.GetCostProfileUseCase
}

// NewPricingController creates a new pricing controller instance.
func NewPricingController(
	catalogUseCase *pricing.GetCatalogUseCase,
	quoteUseCase *pricing.QuoteUseCase,
	analyzeUseCase *pricing.AnalyzePricingUseCase,
	salesPitchUseCase *pricing.GenerateSalesPitchUseCase,
	getCostProfileUseCase *settings.GetCostProfileUseCase,
) *PricingController {
	return &PricingController{
		catalogUseCase:        catalogUseCase,
		quoteUseCase:          quoteUseCase,
		analyzeUseCase:        analyzeUseCase,
		salesPitchUseCase:     salesPitchUseCase,
		getCostProfileUseCase: getCostProfileUseCase,
	}
}

// Catalog handles GET /pricing/catalog requests.
func (c *PricingController) Catalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.ToCatalogResponse(c.catalogUseCase.Execute()))
}

// Quote handles POST /pricing/quote requests.
func (c *PricingController) Quote(ctx *gin.Context) {
	var req dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeInvalidProject))
		return
	}

	costs, err := c.getCostProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.quoteUseCase.Execute(ctx.Request.Context(), pricing.QuoteInput{
		Project: req.ToProject(),
		Costs:   costs.Profile,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output.Breakdown))
}

// Analyze handles POST /pricing/analysis requests.
func (c *PricingController) Analyze(ctx *gin.Context) {
	var req dto.ProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeInvalidProject))
		return
	}

	costs, err := c.getCostProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), pricing.AnalyzePricingInput{
		Project: req.ToProject(),
		Costs:   costs.Profile,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output))
}

// SalesPitch handles POST /pricing/sales-pitch requests.
func (c *PricingController) SalesPitch(ctx *gin.Context) {
	var req dto.SalesPitchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeInvalidProject))
		return
	}

	costs, err := c.getCostProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.salesPitchUseCase.Execute(ctx.Request.Context(), pricing.GenerateSalesPitchInput{
		Project:    req.Project.ToProject(),
		Costs:      costs.Profile,
		ClientName: req.ClientName,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSalesPitchResponse(output))
}
