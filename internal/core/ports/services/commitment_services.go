package services

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// CommitmentSvcFacade exposes the budget commitment lifecycle.
type CommitmentSvcFacade interface {
	// CreateCommitment persists a new commitment in DRAFT.
	CreateCommitment(ctx context.Context, tenantID string, req dto.CreateCommitmentRequest, creatorID string) (*domain.Commitment, error)

	// SubmitCommitment transitions DRAFT -> SUBMITTED.
	SubmitCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error)

	// ApproveCommitment transitions SUBMITTED -> APPROVED and fires the
	// post-commit ledger hook. A failed hook never fails the approval.
	ApproveCommitment(ctx context.Context, tenantID string, commitmentID string, approverID string) (*domain.Commitment, error)

	// RejectCommitment transitions SUBMITTED -> REJECTED.
	RejectCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error)

	// CancelCommitment transitions DRAFT or SUBMITTED -> CANCELLED.
	CancelCommitment(ctx context.Context, tenantID string, commitmentID string, actorID string) (*domain.Commitment, error)

	// GetCommitmentByID retrieves one commitment scoped to its tenant.
	GetCommitmentByID(ctx context.Context, tenantID string, commitmentID string) (*domain.Commitment, error)

	// ListCommitments retrieves a tenant's commitments, optionally
	// filtered by status.
	ListCommitments(ctx context.Context, tenantID string, status *domain.CommitmentStatus, limit int) ([]domain.Commitment, error)
}
