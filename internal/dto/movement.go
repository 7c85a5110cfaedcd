package dto

import (
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Stock movement DTOs ---

// CreateMovementRequest defines data for recording a stock movement.
type CreateMovementRequest struct {
	ItemName    string          `json:"itemName" binding:"required"`
	Kind        string          `json:"kind" binding:"required,oneof=IN OUT ADJUSTMENT TRANSFER RETURN"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	WorkOrderID *string         `json:"workOrderID"`
	AssetID     *string         `json:"assetID"`
	OccurredAt  *time.Time      `json:"occurredAt"` // Defaults to now when omitted
}

// MovementResponse defines the data returned for a stock movement.
type MovementResponse struct {
	MovementID  string          `json:"movementID"`
	TenantID    string          `json:"tenantID"`
	ItemName    string          `json:"itemName"`
	Kind        string          `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	TotalCost   decimal.Decimal `json:"totalCost"`
	WorkOrderID *string         `json:"workOrderID,omitempty"`
	AssetID     *string         `json:"assetID,omitempty"`
	OccurredAt  time.Time       `json:"occurredAt"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   string          `json:"createdBy"`
}

// ToMovementResponse converts a domain.StockMovement to its DTO.
func ToMovementResponse(m *domain.StockMovement) MovementResponse {
	return MovementResponse{
		MovementID:  m.MovementID,
		TenantID:    m.TenantID,
		ItemName:    m.ItemName,
		Kind:        string(m.Kind),
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		TotalCost:   m.TotalCost(),
		WorkOrderID: m.WorkOrderID,
		AssetID:     m.AssetID,
		OccurredAt:  m.OccurredAt,
		CreatedAt:   m.CreatedAt,
		CreatedBy:   m.CreatedBy,
	}
}

// ListMovementsResponse wraps a list of stock movements.
type ListMovementsResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// ToListMovementsResponse converts a slice of domain.StockMovement to DTO.
func ToListMovementsResponse(ms []domain.StockMovement) ListMovementsResponse {
	list := make([]MovementResponse, len(ms))
	for i, m := range ms {
		list[i] = ToMovementResponse(&m)
	}
	return ListMovementsResponse{Movements: list}
}
