package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementKind mirrors domain.MovementKind at the storage layer.
type MovementKind string

// StockMovement represents a stock movement row.
type StockMovement struct {
	MovementID  string          `db:"movement_id"`
	TenantID    string          `db:"tenant_id"`
	ItemName    string          `db:"item_name"`
	Kind        MovementKind    `db:"kind"`
	Quantity    decimal.Decimal `db:"quantity"`
	UnitCost    decimal.Decimal `db:"unit_cost"`
	WorkOrderID *string         `db:"work_order_id"` // Nullable
	AssetID     *string         `db:"asset_id"`      // Nullable
	OccurredAt  time.Time       `db:"occurred_at"`
	AuditFields
}
