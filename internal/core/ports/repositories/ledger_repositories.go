package repositories

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ListLedgerFilter narrows ledger reads. All fields are optional except the
// tenant, which is always required at the call site; zero values mean "no
// filter".
type ListLedgerFilter struct {
	BudgetMonth  string
	CostCenterID string
	Category     domain.TransactionCategory
	Limit        int
}

// LedgerReader defines read operations for posted ledger transactions.
type LedgerReader interface {
	// FindTransactionByKey retrieves a transaction by its idempotency key.
	// Returns apperrors.ErrNotFound when no row exists.
	FindTransactionByKey(ctx context.Context, idempotencyKey string) (*domain.LedgerTransaction, error)

	// ListTransactions retrieves a tenant's transactions, newest first,
	// narrowed by the filter.
	ListTransactions(ctx context.Context, tenantID string, filter ListLedgerFilter) ([]domain.LedgerTransaction, error)

	// SummarizeByCategory totals a tenant's transaction amounts per
	// category for one budget month.
	SummarizeByCategory(ctx context.Context, tenantID string, budgetMonth string) (map[domain.TransactionCategory]decimal.Decimal, error)
}

// LedgerWriter defines the single write operation of the posting core.
type LedgerWriter interface {
	// GetOrCreateTransaction atomically ensures exactly one transaction
	// exists for txn.IdempotencyKey. The returned bool is true when this
	// call inserted the row and false when an existing row was returned.
	// A uniqueness race must be resolved internally by re-fetching, never
	// surfaced to the caller.
	GetOrCreateTransaction(ctx context.Context, txn domain.LedgerTransaction) (*domain.LedgerTransaction, bool, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
