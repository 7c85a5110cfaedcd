package services

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// LedgerReaderSvc is the downstream finance query layer. The posting core
// only writes; these reads power budget summaries.
type LedgerReaderSvc interface {
	// ListTransactions retrieves a tenant's posted entries narrowed by the
	// query parameters.
	ListTransactions(ctx context.Context, tenantID string, params dto.ListLedgerParams) ([]domain.LedgerTransaction, error)

	// GetBudgetSummary totals realized cost per category for one month.
	GetBudgetSummary(ctx context.Context, tenantID string, budgetMonth string) (*dto.BudgetSummaryResponse, error)
}

// BackfillSvcFacade replays historical events through the posting core.
type BackfillSvcFacade interface {
	// Run executes one backfill pass and reports counts. Storage failures
	// abort the run; backfill is offline and retriable.
	Run(ctx context.Context, params dto.BackfillParams) (*dto.BackfillReport, error)
}
