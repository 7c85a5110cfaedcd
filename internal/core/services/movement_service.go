package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
)

const defaultListLimit = 100

// movementService owns stock movement persistence for the inventory
// subsystem. Ledger posting is attached as a post-commit hook, outside the
// failure domain of the primary write.
type movementService struct {
	BaseService
	movementRepo portsrepo.MovementRepositoryFacade
	tenantRepo   portsrepo.TenantReader
	hooks        []portssvc.MovementHook
}

// MovementServiceOption is a functional option for configuring the movement service.
type MovementServiceOption func(*movementService)

// WithMovementHooks registers post-commit hooks fired after a movement is saved.
func WithMovementHooks(hooks ...portssvc.MovementHook) MovementServiceOption {
	return func(s *movementService) {
		s.hooks = append(s.hooks, hooks...)
	}
}

// NewMovementService creates a new movement service.
func NewMovementService(movementRepo portsrepo.MovementRepositoryFacade, tenantRepo portsrepo.TenantReader, options ...MovementServiceOption) portssvc.MovementSvcFacade {
	svc := &movementService{
		movementRepo: movementRepo,
		tenantRepo:   tenantRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.MovementSvcFacade = (*movementService)(nil)

// CreateMovement persists a stock movement and then fires the registered
// post-commit hooks. Hook failures are the hooks' own concern; the movement
// stays committed and the caller sees success.
func (s *movementService) CreateMovement(ctx context.Context, tenantID string, req dto.CreateMovementRequest, creatorID string) (*domain.StockMovement, error) {
	kind := domain.MovementKind(req.Kind)
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown movement kind %q", apperrors.ErrValidation, req.Kind)
	}

	tenant, err := s.tenantRepo.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	if !tenant.IsActive {
		return nil, fmt.Errorf("%w: tenant %s is inactive", apperrors.ErrValidation, tenantID)
	}

	now := time.Now().UTC()
	occurredAt := now
	if req.OccurredAt != nil {
		occurredAt = req.OccurredAt.UTC()
	}

	movement := domain.StockMovement{
		MovementID:  uuid.NewString(),
		TenantID:    tenantID,
		ItemName:    req.ItemName,
		Kind:        kind,
		Quantity:    req.Quantity,
		UnitCost:    req.UnitCost,
		WorkOrderID: req.WorkOrderID,
		AssetID:     req.AssetID,
		OccurredAt:  occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.movementRepo.SaveMovement(ctx, movement); err != nil {
		return nil, fmt.Errorf("failed to save movement: %w", err)
	}

	// The primary write is committed; hooks run outside its failure domain.
	for _, hook := range s.hooks {
		hook.MovementSaved(ctx, movement)
	}

	return &movement, nil
}

// GetMovementByID retrieves a single movement scoped to its tenant.
func (s *movementService) GetMovementByID(ctx context.Context, tenantID string, movementID string) (*domain.StockMovement, error) {
	movement, err := s.movementRepo.FindMovementByID(ctx, tenantID, movementID)
	if err != nil {
		return nil, fmt.Errorf("failed to find movement %s: %w", movementID, err)
	}
	return movement, nil
}

// ListMovements retrieves a tenant's movements, newest first.
func (s *movementService) ListMovements(ctx context.Context, tenantID string, limit int) ([]domain.StockMovement, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	movements, err := s.movementRepo.ListMovements(ctx, tenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list movements for tenant %s: %w", tenantID, err)
	}
	return movements, nil
}
