// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/usecase/document"
	"github.com/inkprofit/backend/internal/application/usecase/proposal"
	"github.com/inkprofit/backend/internal/application/usecase/settings"
	"github.com/inkprofit/backend/internal/application/usecase/share"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// ProposalController handles saved proposal endpoints.
type ProposalController struct {
	saveUseCase           *proposal.SaveProposalUseCase
	listUseCase           *proposal.ListProposalsUseCase
	getUseCase            *proposal.GetProposalUseCase
	closeUseCase          *proposal.CloseProposalUseCase
	deleteUseCase         *proposal.DeleteProposalUseCase
	renderUseCase         *document.RenderDocumentUseCase
	shareUseCase          *share.ShareProposalUseCase
	getCostProfileUseCase *settings.GetCostProfileUseCase
}

// NewProposalController creates a new proposal controller instance.
func NewProposalController(
	saveUseCase *proposal.SaveProposalUseCase,
	listUseCase *proposal.ListProposalsUseCase,
	getUseCase *proposal.GetProposalUseCase,
	closeUseCase *proposal.CloseProposalUseCase,
	deleteUseCase *proposal.DeleteProposalUseCase,
	renderUseCase *document.RenderDocumentUseCase,
	shareUseCase *share.ShareProposalUseCase,
	getCostProfileUseCase *settings.GetCostProfileUseCase,
) *ProposalController {
	return &ProposalController{
		saveUseCase:           saveUseCase,
		listUseCase:           listUseCase,
		getUseCase:            getUseCase,
		closeUseCase:          closeUseCase,
		deleteUseCase:         deleteUseCase,
		renderUseCase:         renderUseCase,
		shareUseCase:          shareUseCase,
		getCostProfileUseCase: getCostProfileUseCase,
	}
}

// Save handles POST /proposals requests.
func (c *ProposalController) Save(ctx *gin.Context) {
	var req dto.SaveProposalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeMissingProposalFields))
		return
	}

	clientID := uuid.Nil
	if req.ClientID != "" {
		parsed, err := uuid.Parse(req.ClientID)
		if err != nil {
			badRequest(ctx, "Invalid client ID format", string(domainerror.ErrCodeMissingProposalFields))
			return
		}
		clientID = parsed
	}

	status := entity.ProposalStatus(req.Status)
	if status == "" {
		status = entity.ProposalStatusDraft
	}

	costs, err := c.getCostProfileUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), proposal.SaveProposalInput{
		Project:  req.Project.ToProject(),
		Costs:    costs.Profile,
		ClientID: clientID,
		Status:   status,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SaveProposalResponse{
		Proposal:  dto.ToProposalResponse(output.Proposal),
		Breakdown: dto.ToBreakdownResponse(output.Breakdown),
	})
}

// List handles GET /proposals requests.
func (c *ProposalController) List(ctx *gin.Context) {
	input := proposal.ListProposalsInput{}
	if raw := ctx.Query("status"); raw != "" {
		status := entity.ProposalStatus(raw)
		input.Status = &status
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProposalListResponse(output.Proposals))
}

// Get handles GET /proposals/:id requests.
func (c *ProposalController) Get(ctx *gin.Context) {
	proposalID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingProposalFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), proposal.GetProposalInput{ProposalID: proposalID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProposalResponse(output.Proposal))
}

// Close handles POST /proposals/:id/close requests.
func (c *ProposalController) Close(ctx *gin.Context) {
	proposalID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingProposalFields))
	if !ok {
		return
	}

	output, err := c.closeUseCase.Execute(ctx.Request.Context(), proposal.CloseProposalInput{ProposalID: proposalID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProposalResponse(output.Proposal))
}

// Delete handles DELETE /proposals/:id requests.
func (c *ProposalController) Delete(ctx *gin.Context) {
	proposalID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingProposalFields))
	if !ok {
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), proposal.DeleteProposalInput{ProposalID: proposalID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	if output.WasCompleted {
		slog.Info("Completed proposal deleted", "proposal_id", proposalID)
	}

	ctx.Status(http.StatusNoContent)
}

// Document handles GET /proposals/:id/documents/:type requests.
func (c *ProposalController) Document(ctx *gin.Context) {
	proposalID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingProposalFields))
	if !ok {
		return
	}

	output, err := c.renderUseCase.Execute(ctx.Request.Context(), document.RenderDocumentInput{
		ProposalID: proposalID,
		Type:       entity.DocumentType(ctx.Param("type")),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `inline; filename="`+output.FileName+`"`)
	ctx.Data(http.StatusOK, output.ContentType, output.Content)
}

// Share handles POST /proposals/:id/share requests.
func (c *ProposalController) Share(ctx *gin.Context) {
	proposalID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingProposalFields))
	if !ok {
		return
	}

	var req dto.ShareProposalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeInvalidShareChannel))
		return
	}

	output, err := c.shareUseCase.Execute(ctx.Request.Context(), share.ShareProposalInput{
		ProposalID: proposalID,
		Channel:    share.Channel(req.Channel),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToShareProposalResponse(output))
}
