package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommitmentStatus is the lifecycle state of a budget commitment.
type CommitmentStatus string

const (
	CommitmentDraft     CommitmentStatus = "DRAFT"
	CommitmentSubmitted CommitmentStatus = "SUBMITTED"
	CommitmentApproved  CommitmentStatus = "APPROVED"
	CommitmentRejected  CommitmentStatus = "REJECTED"
	CommitmentCancelled CommitmentStatus = "CANCELLED"
)

// CanTransition reports whether the status machine allows moving from s to
// next. Approved, rejected and cancelled are terminal.
func (s CommitmentStatus) CanTransition(next CommitmentStatus) bool {
	switch s {
	case CommitmentDraft:
		return next == CommitmentSubmitted || next == CommitmentCancelled
	case CommitmentSubmitted:
		return next == CommitmentApproved || next == CommitmentRejected || next == CommitmentCancelled
	}
	return false
}

// Commitment is a budget reservation owned by the commitments subsystem. It
// becomes a realized cost, and therefore a ledger transaction, only upon
// approval.
type Commitment struct {
	CommitmentID string              `json:"commitmentID"` // Primary Key (UUID)
	TenantID     string              `json:"tenantID"`
	Description  string              `json:"description"`
	Amount       decimal.Decimal     `json:"amount"`
	CurrencyCode string              `json:"currencyCode"`
	BudgetMonth  string              `json:"budgetMonth"` // YYYY-MM
	Category     TransactionCategory `json:"category"`
	CostCenterID string              `json:"costCenterID"`
	Status       CommitmentStatus    `json:"status"`
	ApprovedBy   *string             `json:"approvedBy"` // Nullable until approval
	ApprovedAt   *time.Time          `json:"approvedAt"` // Nullable until approval
	AuditFields
}
