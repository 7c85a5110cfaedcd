package repositories

import (
	"context"
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// CommitmentReader defines read operations for budget commitment data.
type CommitmentReader interface {
	// FindCommitmentByID retrieves a commitment scoped to its tenant.
	FindCommitmentByID(ctx context.Context, tenantID string, commitmentID string) (*domain.Commitment, error)

	// ListCommitments retrieves a tenant's commitments, newest first,
	// optionally filtered by status.
	ListCommitments(ctx context.Context, tenantID string, status *domain.CommitmentStatus, limit int) ([]domain.Commitment, error)

	// ListApprovedCommitmentsSince retrieves a tenant's approved
	// commitments approved at or after since (all of them when since is
	// nil), oldest first, capped at limit. Used by the backfill runner.
	ListApprovedCommitmentsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.Commitment, error)
}

// CommitmentWriter defines write operations for budget commitment data.
type CommitmentWriter interface {
	// SaveCommitment persists a new commitment.
	SaveCommitment(ctx context.Context, commitment domain.Commitment) error

	// UpdateCommitmentStatus persists a status transition together with the
	// approval fields and audit columns. The write only lands if the stored
	// status still equals expected; a lost race surfaces as
	// apperrors.ErrInvalidTransition.
	UpdateCommitmentStatus(ctx context.Context, commitment domain.Commitment, expected domain.CommitmentStatus) error
}

// CommitmentRepositoryFacade combines all commitment repository interfaces.
type CommitmentRepositoryFacade interface {
	CommitmentReader
	CommitmentWriter
}
