package dto

import (
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Ledger query DTOs (downstream read layer) ---

// ListLedgerParams narrows a ledger listing. Bound from query parameters.
type ListLedgerParams struct {
	BudgetMonth  string `form:"budgetMonth" binding:"omitempty,budgetmonth"`
	CostCenterID string `form:"costCenterID"`
	Category     string `form:"category" binding:"omitempty,oneof=LABOR PARTS THIRD_PARTY ADJUSTMENT"`
	Limit        int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

// LedgerTransactionResponse defines the data returned for a posted entry.
type LedgerTransactionResponse struct {
	TransactionID  string            `json:"transactionID"`
	TenantID       string            `json:"tenantID"`
	IdempotencyKey string            `json:"idempotencyKey"`
	Amount         decimal.Decimal   `json:"amount"`
	CurrencyCode   string            `json:"currencyCode"`
	Category       string            `json:"category"`
	CostCenterID   string            `json:"costCenterID"`
	BudgetMonth    string            `json:"budgetMonth"`
	OccurredAt     time.Time         `json:"occurredAt"`
	Metadata       map[string]string `json:"metadata,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

// ToLedgerTransactionResponse converts a domain.LedgerTransaction to its DTO.
func ToLedgerTransactionResponse(t *domain.LedgerTransaction) LedgerTransactionResponse {
	return LedgerTransactionResponse{
		TransactionID:  t.TransactionID,
		TenantID:       t.TenantID,
		IdempotencyKey: t.IdempotencyKey,
		Amount:         t.Amount,
		CurrencyCode:   t.CurrencyCode,
		Category:       string(t.Category),
		CostCenterID:   t.CostCenterID,
		BudgetMonth:    t.BudgetMonth,
		OccurredAt:     t.OccurredAt,
		Metadata:       t.Metadata,
		CreatedAt:      t.CreatedAt,
	}
}

// ListLedgerResponse wraps a list of ledger transactions.
type ListLedgerResponse struct {
	Transactions []LedgerTransactionResponse `json:"transactions"`
}

// ToListLedgerResponse converts a slice of domain.LedgerTransaction to DTO.
func ToListLedgerResponse(ts []domain.LedgerTransaction) ListLedgerResponse {
	list := make([]LedgerTransactionResponse, len(ts))
	for i, t := range ts {
		list[i] = ToLedgerTransactionResponse(&t)
	}
	return ListLedgerResponse{Transactions: list}
}

// CategoryTotal is one row of a budget summary.
type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetSummaryResponse totals realized cost per category for one month.
type BudgetSummaryResponse struct {
	BudgetMonth string          `json:"budgetMonth"`
	Categories  []CategoryTotal `json:"categories"`
	Total       decimal.Decimal `json:"total"`
}
