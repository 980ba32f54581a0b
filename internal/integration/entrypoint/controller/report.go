// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/usecase/report"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	financialReportUseCase *report.GetFinancialReportUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(financialReportUseCase *report.GetFinancialReportUseCase) *ReportController {
	return &ReportController{
		financialReportUseCase: financialReportUseCase,
	}
}

// Financial handles GET /reports/financial requests. ?year defaults to the current year.
func (c *ReportController) Financial(ctx *gin.Context) {
	input := report.GetFinancialReportInput{}
	if raw := ctx.Query("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			badRequest(ctx, "year must be a positive integer", "")
			return
		}
		input.Year = year
	}

	output, err := c.financialReportUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFinancialReportResponse(&output.Report))
}
