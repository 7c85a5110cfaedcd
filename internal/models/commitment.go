package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitmentStatus mirrors domain.CommitmentStatus at the storage layer.
type CommitmentStatus string

// Commitment represents a budget commitment row.
type Commitment struct {
	CommitmentID string           `db:"commitment_id"`
	TenantID     string           `db:"tenant_id"`
	Description  string           `db:"description"`
	Amount       decimal.Decimal  `db:"amount"`
	CurrencyCode string           `db:"currency_code"`
	BudgetMonth  string           `db:"budget_month"`
	Category     string           `db:"category"`
	CostCenterID string           `db:"cost_center_id"`
	Status       CommitmentStatus `db:"status"`
	ApprovedBy   *string          `db:"approved_by"` // Nullable
	ApprovedAt   *time.Time       `db:"approved_at"` // Nullable
	AuditFields
}
