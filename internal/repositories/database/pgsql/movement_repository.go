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

const movementColumns = `movement_id, tenant_id, item_name, kind, quantity, unit_cost, work_order_id, asset_id, occurred_at, created_at, created_by, last_updated_at, last_updated_by`

type PgxMovementRepository struct {
	BaseRepository
}

// newPgxMovementRepository creates a new repository for stock movement data.
func newPgxMovementRepository(pool *pgxpool.Pool) portsrepo.MovementRepositoryFacade {
	return &PgxMovementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MovementRepositoryFacade = (*PgxMovementRepository)(nil)

// SaveMovement inserts a new stock movement.
func (r *PgxMovementRepository) SaveMovement(ctx context.Context, movement domain.StockMovement) error {
	modelMovement := mapping.ToModelStockMovement(movement)

	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelMovement.MovementID,
		modelMovement.TenantID,
		modelMovement.ItemName,
		modelMovement.Kind,
		modelMovement.Quantity,
		modelMovement.UnitCost,
		modelMovement.WorkOrderID,
		modelMovement.AssetID,
		modelMovement.OccurredAt,
		modelMovement.CreatedAt,
		modelMovement.CreatedBy,
		modelMovement.LastUpdatedAt,
		modelMovement.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save movement %s: %w", modelMovement.MovementID, err)
	}
	return nil
}

// FindMovementByID retrieves a movement scoped to its tenant.
func (r *PgxMovementRepository) FindMovementByID(ctx context.Context, tenantID string, movementID string) (*domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE tenant_id = $1 AND movement_id = $2;
	`
	var modelMovement models.StockMovement
	err := r.Pool.QueryRow(ctx, query, tenantID, movementID).Scan(
		&modelMovement.MovementID,
		&modelMovement.TenantID,
		&modelMovement.ItemName,
		&modelMovement.Kind,
		&modelMovement.Quantity,
		&modelMovement.UnitCost,
		&modelMovement.WorkOrderID,
		&modelMovement.AssetID,
		&modelMovement.OccurredAt,
		&modelMovement.CreatedAt,
		&modelMovement.CreatedBy,
		&modelMovement.LastUpdatedAt,
		&modelMovement.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}

	domainMovement := mapping.ToDomainStockMovement(modelMovement)
	return &domainMovement, nil
}

// ListMovements retrieves a tenant's movements, newest first.
func (r *PgxMovementRepository) ListMovements(ctx context.Context, tenantID string, limit int) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE tenant_id = $1
		ORDER BY occurred_at DESC, movement_id
		LIMIT $2;
	`
	return r.queryMovements(ctx, query, tenantID, limit)
}

// ListMovementsSince retrieves a tenant's movements that occurred at or after
// since, oldest first. A nil since means no lower bound.
func (r *PgxMovementRepository) ListMovementsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements
		WHERE tenant_id = $1 AND ($2::timestamptz IS NULL OR occurred_at >= $2)
		ORDER BY occurred_at ASC, movement_id
		LIMIT $3;
	`
	return r.queryMovements(ctx, query, tenantID, since, limit)
}

func (r *PgxMovementRepository) queryMovements(ctx context.Context, query string, args ...any) ([]domain.StockMovement, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query movements: %w", err)
	}
	defer rows.Close()

	modelMovements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.StockMovement, error) {
		var movement models.StockMovement
		err := row.Scan(
			&movement.MovementID,
			&movement.TenantID,
			&movement.ItemName,
			&movement.Kind,
			&movement.Quantity,
			&movement.UnitCost,
			&movement.WorkOrderID,
			&movement.AssetID,
			&movement.OccurredAt,
			&movement.CreatedAt,
			&movement.CreatedBy,
			&movement.LastUpdatedAt,
			&movement.LastUpdatedBy,
		)
		return movement, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan movements: %w", err)
	}

	return mapping.ToDomainStockMovementSlice(modelMovements), nil
}
