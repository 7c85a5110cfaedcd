package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	"github.com/maintkit/ledgerpost/internal/models"
	"github.com/maintkit/ledgerpost/internal/utils/mapping"
)

const commitmentColumns = `commitment_id, tenant_id, description, amount, currency_code, budget_month, category, cost_center_id, status, approved_by, approved_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxCommitmentRepository struct {
	BaseRepository
}

// newPgxCommitmentRepository creates a new repository for commitment data.
func newPgxCommitmentRepository(pool *pgxpool.Pool) portsrepo.CommitmentRepositoryFacade {
	return &PgxCommitmentRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CommitmentRepositoryFacade = (*PgxCommitmentRepository)(nil)

// SaveCommitment inserts a new commitment.
func (r *PgxCommitmentRepository) SaveCommitment(ctx context.Context, commitment domain.Commitment) error {
	modelCommitment := mapping.ToModelCommitment(commitment)

	query := `
		INSERT INTO commitments (` + commitmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCommitment.CommitmentID,
		modelCommitment.TenantID,
		modelCommitment.Description,
		modelCommitment.Amount,
		modelCommitment.CurrencyCode,
		modelCommitment.BudgetMonth,
		modelCommitment.Category,
		modelCommitment.CostCenterID,
		modelCommitment.Status,
		modelCommitment.ApprovedBy,
		modelCommitment.ApprovedAt,
		modelCommitment.CreatedAt,
		modelCommitment.CreatedBy,
		modelCommitment.LastUpdatedAt,
		modelCommitment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save commitment %s: %w", modelCommitment.CommitmentID, err)
	}
	return nil
}

// UpdateCommitmentStatus persists a status transition together with the
// approval fields and audit columns. The expected prior status is pinned in
// the WHERE clause so a transition that lost the race against a concurrent
// one never overwrites it.
func (r *PgxCommitmentRepository) UpdateCommitmentStatus(ctx context.Context, commitment domain.Commitment, expected domain.CommitmentStatus) error {
	modelCommitment := mapping.ToModelCommitment(commitment)

	query := `
		UPDATE commitments
		SET status = $1, approved_by = $2, approved_at = $3, last_updated_at = $4, last_updated_by = $5
		WHERE tenant_id = $6 AND commitment_id = $7 AND status = $8;
	`

	tag, err := r.Pool.Exec(ctx, query,
		modelCommitment.Status,
		modelCommitment.ApprovedBy,
		modelCommitment.ApprovedAt,
		modelCommitment.LastUpdatedAt,
		modelCommitment.LastUpdatedBy,
		modelCommitment.TenantID,
		modelCommitment.CommitmentID,
		models.CommitmentStatus(expected),
	)
	if err != nil {
		return fmt.Errorf("failed to update commitment %s: %w", modelCommitment.CommitmentID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: commitment %s is no longer in status %s", apperrors.ErrInvalidTransition, modelCommitment.CommitmentID, expected)
	}
	return nil
}

// FindCommitmentByID retrieves a commitment scoped to its tenant.
func (r *PgxCommitmentRepository) FindCommitmentByID(ctx context.Context, tenantID string, commitmentID string) (*domain.Commitment, error) {
	query := `
		SELECT ` + commitmentColumns + `
		FROM commitments
		WHERE tenant_id = $1 AND commitment_id = $2;
	`
	var modelCommitment models.Commitment
	err := r.Pool.QueryRow(ctx, query, tenantID, commitmentID).Scan(
		&modelCommitment.CommitmentID,
		&modelCommitment.TenantID,
		&modelCommitment.Description,
		&modelCommitment.Amount,
		&modelCommitment.CurrencyCode,
		&modelCommitment.BudgetMonth,
		&modelCommitment.Category,
		&modelCommitment.CostCenterID,
		&modelCommitment.Status,
		&modelCommitment.ApprovedBy,
		&modelCommitment.ApprovedAt,
		&modelCommitment.CreatedAt,
		&modelCommitment.CreatedBy,
		&modelCommitment.LastUpdatedAt,
		&modelCommitment.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find commitment %s: %w", commitmentID, err)
	}

	domainCommitment := mapping.ToDomainCommitment(modelCommitment)
	return &domainCommitment, nil
}

// ListCommitments retrieves a tenant's commitments, newest first, optionally
// filtered by status.
func (r *PgxCommitmentRepository) ListCommitments(ctx context.Context, tenantID string, status *domain.CommitmentStatus, limit int) ([]domain.Commitment, error) {
	query := `
		SELECT ` + commitmentColumns + `
		FROM commitments
		WHERE tenant_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at DESC, commitment_id
		LIMIT $3;
	`
	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}
	return r.queryCommitments(ctx, query, tenantID, statusArg, limit)
}

// ListApprovedCommitmentsSince retrieves a tenant's approved commitments
// approved at or after since, oldest first. A nil since means no lower bound.
func (r *PgxCommitmentRepository) ListApprovedCommitmentsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.Commitment, error) {
	query := `
		SELECT ` + commitmentColumns + `
		FROM commitments
		WHERE tenant_id = $1 AND status = 'APPROVED'
			AND ($2::timestamptz IS NULL OR approved_at >= $2)
		ORDER BY approved_at ASC, commitment_id
		LIMIT $3;
	`
	return r.queryCommitments(ctx, query, tenantID, since, limit)
}

func (r *PgxCommitmentRepository) queryCommitments(ctx context.Context, query string, args ...any) ([]domain.Commitment, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query commitments: %w", err)
	}
	defer rows.Close()

	modelCommitments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Commitment, error) {
		var commitment models.Commitment
		err := row.Scan(
			&commitment.CommitmentID,
			&commitment.TenantID,
			&commitment.Description,
			&commitment.Amount,
			&commitment.CurrencyCode,
			&commitment.BudgetMonth,
			&commitment.Category,
			&commitment.CostCenterID,
			&commitment.Status,
			&commitment.ApprovedBy,
			&commitment.ApprovedAt,
			&commitment.CreatedAt,
			&commitment.CreatedBy,
			&commitment.LastUpdatedAt,
			&commitment.LastUpdatedBy,
		)
		return commitment, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan commitments: %w", err)
	}

	return mapping.ToDomainCommitmentSlice(modelCommitments), nil
}
