package dto

import (
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Budget commitment DTOs ---

// CreateCommitmentRequest defines data for creating a commitment (in DRAFT).
type CreateCommitmentRequest struct {
	Description  string          `json:"description" binding:"required"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode" binding:"required,len=3"`
	BudgetMonth  string          `json:"budgetMonth" binding:"required,budgetmonth"`
	Category     string          `json:"category" binding:"required,oneof=LABOR PARTS THIRD_PARTY ADJUSTMENT"`
	CostCenterID string          `json:"costCenterID" binding:"required"`
}

// CommitmentResponse defines the data returned for a commitment.
type CommitmentResponse struct {
	CommitmentID string          `json:"commitmentID"`
	TenantID     string          `json:"tenantID"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	BudgetMonth  string          `json:"budgetMonth"`
	Category     string          `json:"category"`
	CostCenterID string          `json:"costCenterID"`
	Status       string          `json:"status"`
	ApprovedBy   *string         `json:"approvedBy,omitempty"`
	ApprovedAt   *time.Time      `json:"approvedAt,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToCommitmentResponse converts a domain.Commitment to its DTO.
func ToCommitmentResponse(c *domain.Commitment) CommitmentResponse {
	return CommitmentResponse{
		CommitmentID: c.CommitmentID,
		TenantID:     c.TenantID,
		Description:  c.Description,
		Amount:       c.Amount,
		CurrencyCode: c.CurrencyCode,
		BudgetMonth:  c.BudgetMonth,
		Category:     string(c.Category),
		CostCenterID: c.CostCenterID,
		Status:       string(c.Status),
		ApprovedBy:   c.ApprovedBy,
		ApprovedAt:   c.ApprovedAt,
		CreatedAt:    c.CreatedAt,
		CreatedBy:    c.CreatedBy,
	}
}

// ListCommitmentsResponse wraps a list of commitments.
type ListCommitmentsResponse struct {
	Commitments []CommitmentResponse `json:"commitments"`
}

// ToListCommitmentsResponse converts a slice of domain.Commitment to DTO.
func ToListCommitmentsResponse(cs []domain.Commitment) ListCommitmentsResponse {
	list := make([]CommitmentResponse, len(cs))
	for i, c := range cs {
		list[i] = ToCommitmentResponse(&c)
	}
	return ListCommitmentsResponse{Commitments: list}
}
