package bill

import (
	"github.com/azmirfakkri/jomsplit/internal/bill/split"
	"github.com/azmirfakkri/jomsplit/internal/tax"
)

// CreateItemRequest represents the request to create a bill item
type CreateItemRequest struct {
	SessionID   string   `json:"session_id" validate:"required"`
	Name        string   `json:"name" validate:"required,min=1,max=255"`
	TotalAmount float64  `json:"total_amount" validate:"required,gt=0"`
	PaidBy      string   `json:"paid_by" validate:"required"`
	SharedBy    []string `json:"shared_by" validate:"required,min=1"`
	HasSST      bool     `json:"has_sst"`
}

// UpdateItemRequest represents the request to update a bill item
type UpdateItemRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	TotalAmount *float64  `json:"total_amount,omitempty" validate:"omitempty,gt=0"`
	PaidBy      *string   `json:"paid_by,omitempty"`
	SharedBy    *[]string `json:"shared_by,omitempty" validate:"omitempty,min=1"`
	HasSST      *bool     `json:"has_sst,omitempty"`
}

// ItemResponse represents the response for a bill item
type ItemResponse struct {
	ID              string   `json:"id"`
	SessionID       string   `json:"session_id"`
	Name            string   `json:"name"`
	TotalAmount     float64  `json:"total_amount"`
	PaidBy          string   `json:"paid_by"`
	SharedBy        []string `json:"shared_by"`
	HasSST          bool     `json:"has_sst"`
	SSTAmount       float64  `json:"sst_amount"`
	PerPersonAmount float64  `json:"per_person_amount"`
	CreatedAt       string   `json:"created_at"`
}

// QuoteItemRequest is one line of a bill total preview
type QuoteItemRequest struct {
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	HasSST           bool    `json:"has_sst"`
	HasServiceCharge bool    `json:"has_service_charge"`
	Exempt           bool    `json:"exempt"`
}

// QuoteRequest represents the request to preview a bill's tax-inclusive total
type QuoteRequest struct {
	Items []QuoteItemRequest `json:"items" validate:"required,min=1,dive"`
}

// QuoteResponse carries the computed tax breakdown for a preview
type QuoteResponse struct {
	Breakdown tax.Breakdown `json:"breakdown"`
}

// SummaryResponse is the full calculation result for a session
type SummaryResponse struct {
	SessionID string           `json:"session_id"`
	Config    split.Config     `json:"config"`
	Result    split.Result     `json:"result"`
	Transfers []split.Transfer `json:"transfers"`
}

// ToResponse converts an Item model to an ItemResponse DTO
func (i *Item) ToResponse() *ItemResponse {
	return &ItemResponse{
		ID:              i.ID,
		SessionID:       i.SessionID,
		Name:            i.Name,
		TotalAmount:     i.TotalAmount,
		PaidBy:          i.PaidBy,
		SharedBy:        i.SharedBy,
		HasSST:          i.HasSST,
		SSTAmount:       i.SSTAmount,
		PerPersonAmount: i.PerPersonAmount,
		CreatedAt:       i.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
