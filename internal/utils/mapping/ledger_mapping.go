package mapping

import (
	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/models"
)

// ToModelLedgerTransaction converts a domain LedgerTransaction to a model LedgerTransaction
func ToModelLedgerTransaction(d domain.LedgerTransaction) models.LedgerTransaction {
	return models.LedgerTransaction{
		TransactionID:  d.TransactionID,
		TenantID:       d.TenantID,
		IdempotencyKey: d.IdempotencyKey,
		Amount:         d.Amount,
		CurrencyCode:   d.CurrencyCode,
		Category:       string(d.Category),
		CostCenterID:   d.CostCenterID,
		BudgetMonth:    d.BudgetMonth,
		OccurredAt:     d.OccurredAt,
		Metadata:       d.Metadata,
		CreatedAt:      d.CreatedAt,
	}
}

// ToDomainLedgerTransaction converts a model LedgerTransaction to a domain LedgerTransaction
func ToDomainLedgerTransaction(m models.LedgerTransaction) domain.LedgerTransaction {
	return domain.LedgerTransaction{
		TransactionID:  m.TransactionID,
		TenantID:       m.TenantID,
		IdempotencyKey: m.IdempotencyKey,
		Amount:         m.Amount,
		CurrencyCode:   m.CurrencyCode,
		Category:       domain.TransactionCategory(m.Category),
		CostCenterID:   m.CostCenterID,
		BudgetMonth:    m.BudgetMonth,
		OccurredAt:     m.OccurredAt,
		Metadata:       m.Metadata,
		CreatedAt:      m.CreatedAt,
	}
}

// ToDomainLedgerTransactionSlice converts a slice of model LedgerTransactions to domain ones
func ToDomainLedgerTransactionSlice(ms []models.LedgerTransaction) []domain.LedgerTransaction {
	ds := make([]domain.LedgerTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerTransaction(m)
	}
	return ds
}
