// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inkprofit/backend/internal/application/usecase/client"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/entrypoint/dto"
)

// ClientController handles client registry endpoints.
type ClientController struct {
	listUseCase   *client.ListClientsUseCase
	createUseCase *client.CreateClientUseCase
	getUseCase    *client.GetClientUseCase
	updateUseCase *client.UpdateClientUseCase
	deleteUseCase *client.DeleteClientUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	createUseCase *client.CreateClientUseCase,
	getUseCase *client.GetClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context(), client.ListClientsInput{
		Search: ctx.Query("search"),
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeMissingClientFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), client.CreateClientInput{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Get handles GET /clients/:id requests.
func (c *ClientController) Get(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingClientFields))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), client.GetClientInput{ClientID: clientID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Update handles PUT /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingClientFields))
	if !ok {
		return
	}

	var req dto.ClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		invalidBody(ctx, err, string(domainerror.ErrCodeMissingClientFields))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), client.UpdateClientInput{
		ClientID: clientID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	clientID, ok := parseIDParam(ctx, "id", string(domainerror.ErrCodeMissingClientFields))
	if !ok {
		return
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), client.DeleteClientInput{ClientID: clientID}); err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
