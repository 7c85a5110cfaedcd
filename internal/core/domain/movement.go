package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind classifies a stock movement.
type MovementKind string

const (
	MovementIn         MovementKind = "IN"
	MovementOut        MovementKind = "OUT"
	MovementAdjustment MovementKind = "ADJUSTMENT"
	MovementTransfer   MovementKind = "TRANSFER"
	MovementReturn     MovementKind = "RETURN"
)

// IsValid reports whether k is one of the known movement kinds.
func (k MovementKind) IsValid() bool {
	switch k {
	case MovementIn, MovementOut, MovementAdjustment, MovementTransfer, MovementReturn:
		return true
	}
	return false
}

// StockMovement represents a single inventory movement owned by the inventory
// subsystem. The ledger core reads it, never mutates it.
type StockMovement struct {
	MovementID  string          `json:"movementID"` // Primary Key (UUID)
	TenantID    string          `json:"tenantID"`
	ItemName    string          `json:"itemName"`
	Kind        MovementKind    `json:"kind"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitCost    decimal.Decimal `json:"unitCost"`
	WorkOrderID *string         `json:"workOrderID"` // Nullable
	AssetID     *string         `json:"assetID"`     // Nullable
	OccurredAt  time.Time       `json:"occurredAt"`
	AuditFields
}

// TotalCost is the financial value of the movement: quantity * unit cost,
// decimal-exact.
func (m StockMovement) TotalCost() decimal.Decimal {
	return m.Quantity.Mul(m.UnitCost)
}
