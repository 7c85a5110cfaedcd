package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
	"github.com/shopspring/decimal"
)

// ledgerQueryService is the read side of the ledger: listings and budget
// summaries for the finance surface.
type ledgerQueryService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerQueryService creates a new ledger query service.
func NewLedgerQueryService(ledgerRepo portsrepo.LedgerReader) portssvc.LedgerReaderSvc {
	return &ledgerQueryService{ledgerRepo: ledgerRepo}
}

var _ portssvc.LedgerReaderSvc = (*ledgerQueryService)(nil)

// ListTransactions retrieves a tenant's posted entries narrowed by the query
// parameters.
func (s *ledgerQueryService) ListTransactions(ctx context.Context, tenantID string, params dto.ListLedgerParams) ([]domain.LedgerTransaction, error) {
	filter := portsrepo.ListLedgerFilter{
		BudgetMonth:  params.BudgetMonth,
		CostCenterID: params.CostCenterID,
		Category:     domain.TransactionCategory(params.Category),
		Limit:        params.Limit,
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	transactions, err := s.ledgerRepo.ListTransactions(ctx, tenantID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger transactions for tenant %s: %w", tenantID, err)
	}
	return transactions, nil
}

// GetBudgetSummary totals realized cost per category for one budget month.
// Categories are returned in alphabetical order for stable output.
func (s *ledgerQueryService) GetBudgetSummary(ctx context.Context, tenantID string, budgetMonth string) (*dto.BudgetSummaryResponse, error) {
	totals, err := s.ledgerRepo.SummarizeByCategory(ctx, tenantID, budgetMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize ledger for tenant %s month %s: %w", tenantID, budgetMonth, err)
	}

	categories := make([]dto.CategoryTotal, 0, len(totals))
	total := decimal.Zero
	for category, amount := range totals {
		categories = append(categories, dto.CategoryTotal{
			Category: string(category),
			Total:    amount,
		})
		total = total.Add(amount)
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].Category < categories[j].Category
	})

	return &dto.BudgetSummaryResponse{
		BudgetMonth: budgetMonth,
		Categories:  categories,
		Total:       total,
	}, nil
}
