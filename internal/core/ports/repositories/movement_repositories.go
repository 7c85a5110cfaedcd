package repositories

import (
	"context"
	"time"

	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// MovementReader defines read operations for stock movement data.
type MovementReader interface {
	// FindMovementByID retrieves a movement scoped to its tenant.
	FindMovementByID(ctx context.Context, tenantID string, movementID string) (*domain.StockMovement, error)

	// ListMovements retrieves a tenant's movements, newest first.
	ListMovements(ctx context.Context, tenantID string, limit int) ([]domain.StockMovement, error)

	// ListMovementsSince retrieves a tenant's movements that occurred at or
	// after since (all of them when since is nil), oldest first, capped at
	// limit. Used by the backfill runner.
	ListMovementsSince(ctx context.Context, tenantID string, since *time.Time, limit int) ([]domain.StockMovement, error)
}

// MovementWriter defines write operations for stock movement data.
type MovementWriter interface {
	// SaveMovement persists a new stock movement.
	SaveMovement(ctx context.Context, movement domain.StockMovement) error
}

// MovementRepositoryFacade combines all movement repository interfaces.
type MovementRepositoryFacade interface {
	MovementReader
	MovementWriter
}
