// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/inkprofit/backend/internal/application/usecase/share"
	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

// SaveProposalRequest represents the request body for saving a proposal.
type SaveProposalRequest struct {
	Project  ProjectRequest `json:"project" binding:"required"`
	ClientID string         `json:"client_id"`
	Status   string         `json:"status" binding:"omitempty,oneof=draft completed"`
}

// ShareProposalRequest represents the request body for sharing a proposal.
type ShareProposalRequest struct {
	Channel string `json:"channel" binding:"required"`
}

// ProposalResponse represents a saved proposal in API responses.
type ProposalResponse struct {
	ID             string          `json:"id"`
	Project        ProjectResponse `json:"project"`
	ClientID       string          `json:"client_id"`
	ClientName     string          `json:"client_name"`
	ClientPhone    string          `json:"client_phone,omitempty"`
	Status         string          `json:"status"`
	FinalPrice     float64         `json:"final_price"`
	FinalCost      float64         `json:"final_cost"`
	FinalProfit    float64         `json:"final_profit"`
	FormattedPrice string          `json:"formatted_price"`
	CreatedAt      time.Time       `json:"created_at"`
}

// ProposalListResponse represents the response for listing proposals.
type ProposalListResponse struct {
	Proposals []ProposalResponse `json:"proposals"`
}

// SaveProposalResponse represents the response for a newly saved proposal.
type SaveProposalResponse struct {
	Proposal  ProposalResponse  `json:"proposal"`
	Breakdown BreakdownResponse `json:"breakdown"`
}

// ShareProposalResponse represents the result of sharing a proposal.
type ShareProposalResponse struct {
	Channel   string `json:"channel"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	MessageID string `json:"message_id,omitempty"`
	Link      string `json:"link,omitempty"`
}

// ToProposalResponse converts a domain SavedProject to a ProposalResponse DTO.
func ToProposalResponse(p *entity.SavedProject) ProposalResponse {
	return ProposalResponse{
		ID:             p.ID.String(),
		Project:        ToProjectResponse(p.Project),
		ClientID:       p.ClientID.String(),
		ClientName:     p.ClientName,
		ClientPhone:    p.ClientPhone,
		Status:         string(p.Status),
		FinalPrice:     valueobject.RoundCents(p.FinalPrice),
		FinalCost:      valueobject.RoundCents(p.FinalCost),
		FinalProfit:    valueobject.RoundCents(p.FinalProfit),
		FormattedPrice: valueobject.NewMoney(p.FinalPrice).String(),
		CreatedAt:      p.CreatedAt,
	}
}

// ToProposalListResponse converts a list of proposals to a ProposalListResponse DTO.
func ToProposalListResponse(proposals []*entity.SavedProject) ProposalListResponse {
	responses := make([]ProposalResponse, len(proposals))
	for i, p := range proposals {
		responses[i] = ToProposalResponse(p)
	}
	return ProposalListResponse{Proposals: responses}
}

// ToShareProposalResponse converts a share output to a ShareProposalResponse DTO.
func ToShareProposalResponse(output *share.ShareProposalOutput) ShareProposalResponse {
	return ShareProposalResponse{
		Channel:   string(output.Channel),
		Recipient: output.Recipient,
		Message:   output.Message,
		MessageID: output.MessageID,
		Link:      output.Link,
	}
}
