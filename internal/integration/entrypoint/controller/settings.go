// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/usecase/settings"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// SettingsController handles the studio's cost and identity profiles.
type SettingsController struct {
	getCostProfileUseCase      *settings.GetCostProfileUseCase
	updateCostProfileUseCase   *settings.UpdateCostProfileUseCase
	getStudioProfileUseCase    *settings.GetStudioProfileUseCase
	updateStudioProfileUseCase *settings.UpdateStudioProfileUseCase
}

// NewSettingsController creates a new settings controller instance.
func NewSettingsController(
	getCostProfileUseCase *settings.GetCostProfileUseCase,
	updateCostProfileUseCase *settings.UpdateCostProfileUseCase,
	getStudioProfileUseCase *settings.GetStudioProfileUseCase,
	updateStudioProfileUseCase *settings.UpdateStudioProfileUseCase,
) *SettingsController {
	return &SettingsController{
		getCostProfileUseCase:      getCostProfileUseCase,
		updateCostProfileUseCase:   updateCostProfileUseCase,
		getStudioProfileUseCase:    getStudioProfileUseCase,
		updateStudioProfileUseCase: updateStudioProfileUseCase,
	}
}

// GetCostProfile handles GET /settings/cost-profile requests.
func (c *SettingsController) GetCostProfile(ctx *gin.Context) {
	output, err := c.getCostProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostProfileResponse(output.Profile, output.IsDefault))
}

// UpdateCostProfile handles PUT /settings/cost-profile requests.
func (c *SettingsController) UpdateCostProfile(ctx *gin.Context) {
	var req dto.CostProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeMissingSettingsFields))
		return
	}

	output, err := c.updateCostProfileUseCase.Execute(ctx.Request.Context(), settings.UpdateCostProfileInput{
		Profile: req.ToCostProfile(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCostProfileResponse(output.Profile, false))
}

// GetStudioProfile handles GET /settings/studio-profile requests.
func (c *SettingsController) GetStudioProfile(ctx *gin.Context) {
	output, err := c.getStudioProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudioProfileResponse(output.Profile, output.IsDefault))
}

// UpdateStudioProfile handles PUT /settings/studio-profile requests.
func (c *SettingsController) UpdateStudioProfile(ctx *gin.Context) {
	var req dto.StudioProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeMissingSettingsFields))
		return
	}

	output, err := c.updateStudioProfileUseCase.Execute(ctx.Request.Context(), settings.UpdateStudioProfileInput{
		Profile: req.ToStudioProfile(),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStudioProfileResponse(output.Profile, false))
}
