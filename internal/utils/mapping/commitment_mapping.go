package mapping

import (
	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/models"
)

// ToModelCommitment converts a domain Commitment to a model Commitment
func ToModelCommitment(d domain.Commitment) models.Commitment {
	return models.Commitment{
		CommitmentID: d.CommitmentID,
		TenantID:     d.TenantID,
		Description:  d.Description,
		Amount:       d.Amount,
		CurrencyCode: d.CurrencyCode,
		BudgetMonth:  d.BudgetMonth,
		Category:     string(d.Category),
		CostCenterID: d.CostCenterID,
		Status:       models.CommitmentStatus(d.Status),
		ApprovedBy:   d.ApprovedBy,
		ApprovedAt:   d.ApprovedAt,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCommitment converts a model Commitment to a domain Commitment
func ToDomainCommitment(m models.Commitment) domain.Commitment {
	return domain.Commitment{
		CommitmentID: m.CommitmentID,
		TenantID:     m.TenantID,
		Description:  m.Description,
		Amount:       m.Amount,
		CurrencyCode: m.CurrencyCode,
		BudgetMonth:  m.BudgetMonth,
		Category:     domain.TransactionCategory(m.Category),
		CostCenterID: m.CostCenterID,
		Status:       domain.CommitmentStatus(m.Status),
		ApprovedBy:   m.ApprovedBy,
		ApprovedAt:   m.ApprovedAt,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCommitmentSlice converts a slice of model Commitments to domain ones
func ToDomainCommitmentSlice(ms []models.Commitment) []domain.Commitment {
	ds := make([]domain.Commitment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCommitment(m)
	}
	return ds
}
