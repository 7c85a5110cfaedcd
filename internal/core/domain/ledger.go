package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionCategory classifies a ledger transaction for budget reporting.
type TransactionCategory string

const (
	CategoryLabor      TransactionCategory = "LABOR"
	CategoryParts      TransactionCategory = "PARTS"
	CategoryThirdParty TransactionCategory = "THIRD_PARTY"
	CategoryAdjustment TransactionCategory = "ADJUSTMENT"
)

// IsValid reports whether c is a known category.
func (c TransactionCategory) IsValid() bool {
	switch c {
	case CategoryLabor, CategoryParts, CategoryThirdParty, CategoryAdjustment:
		return true
	}
	return false
}

// LedgerTransaction is a single posted financial entry representing realized
// cost. At most one exists per idempotency key, enforced by a uniqueness
// constraint in the store. Entries are never updated or deleted by this
// service; corrections arrive as separate adjustment transactions.
type LedgerTransaction struct {
	TransactionID  string              `json:"transactionID"` // Primary Key (UUID)
	TenantID       string              `json:"tenantID"`
	IdempotencyKey string              `json:"idempotencyKey"` // Unique
	Amount         decimal.Decimal     `json:"amount"`
	CurrencyCode   string              `json:"currencyCode"`
	Category       TransactionCategory `json:"category"`
	CostCenterID   string              `json:"costCenterID"`
	BudgetMonth    string              `json:"budgetMonth"` // YYYY-MM
	OccurredAt     time.Time           `json:"occurredAt"`
	Metadata       map[string]string   `json:"metadata"` // Source event context
	CreatedAt      time.Time           `json:"createdAt"`
}

// TransactionDraft is the resolver's output: everything needed to write a
// ledger transaction except its idempotency key and generated identity.
type TransactionDraft struct {
	TenantID     string
	Amount       decimal.Decimal
	CurrencyCode string
	Category     TransactionCategory
	CostCenterID string
	BudgetMonth  string
	OccurredAt   time.Time
	Metadata     map[string]string
}
