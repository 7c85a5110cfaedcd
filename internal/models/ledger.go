package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction represents a posted ledger entry row. The
// idempotency_key column carries a UNIQUE constraint; the writer relies on it
// to serialize concurrent posts of the same event.
type LedgerTransaction struct {
	TransactionID  string            `db:"transaction_id"`
	TenantID       string            `db:"tenant_id"`
	IdempotencyKey string            `db:"idempotency_key"`
	Amount         decimal.Decimal   `db:"amount"`
	CurrencyCode   string            `db:"currency_code"`
	Category       string            `db:"category"`
	CostCenterID   string            `db:"cost_center_id"`
	BudgetMonth    string            `db:"budget_month"`
	OccurredAt     time.Time         `db:"occurred_at"`
	Metadata       map[string]string `db:"metadata"` // JSONB
	CreatedAt      time.Time         `db:"created_at"`
}
