package services

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// MovementSvcFacade exposes the inventory subsystem's movement operations.
type MovementSvcFacade interface {
	// CreateMovement persists a stock movement and fires the post-commit
	// ledger hook. A failed hook never fails the create.
	CreateMovement(ctx context.Context, tenantID string, req dto.CreateMovementRequest, creatorID string) (*domain.StockMovement, error)

	// GetMovementByID retrieves one movement scoped to its tenant.
	GetMovementByID(ctx context.Context, tenantID string, movementID string) (*domain.StockMovement, error)

	// ListMovements retrieves a tenant's movements, newest first.
	ListMovements(ctx context.Context, tenantID string, limit int) ([]domain.StockMovement, error)
}
