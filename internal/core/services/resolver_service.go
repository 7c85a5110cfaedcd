package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
)

// budgetMonthLayout is the YYYY-MM format used for budget month columns.
const budgetMonthLayout = "2006-01"

// resolverService decides whether an event produces a ledger transaction and
// which category and cost center apply. It is stateless and reads master
// data fresh on every call so reconfiguration (e.g. a new tenant default
// cost center) takes effect immediately.
type resolverService struct {
	BaseService
	masterData portsrepo.MasterDataRepositoryFacade
}

// NewResolverService creates a new resolver.
func NewResolverService(masterData portsrepo.MasterDataRepositoryFacade) portssvc.ResolverSvc {
	return &resolverService{masterData: masterData}
}

var _ portssvc.ResolverSvc = (*resolverService)(nil)

// Resolve dispatches on the event variant. Returning (nil, nil) means the
// event does not qualify for a ledger transaction.
func (s *resolverService) Resolve(ctx context.Context, event domain.Event) (*domain.TransactionDraft, error) {
	switch ev := event.(type) {
	case domain.StockMovementEvent:
		return s.resolveMovement(ctx, ev.Movement)
	case domain.CommitmentApprovedEvent:
		return s.resolveCommitment(ctx, ev.Commitment)
	default:
		return nil, fmt.Errorf("unknown event kind %q", event.Kind())
	}
}

// resolveMovement qualifies OUT and ADJUSTMENT movements: they represent net
// financial consumption. IN, RETURN and TRANSFER do not and are skipped.
func (s *resolverService) resolveMovement(ctx context.Context, m domain.StockMovement) (*domain.TransactionDraft, error) {
	switch m.Kind {
	case domain.MovementOut, domain.MovementAdjustment:
	case domain.MovementIn, domain.MovementReturn, domain.MovementTransfer:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown movement kind %q for movement %s", m.Kind, m.MovementID)
	}

	amount := m.TotalCost()
	// Zero-cost movements carry no financial effect. Negative amounts
	// (corrections of earlier erroneous movements) still post.
	if amount.IsZero() {
		return nil, nil
	}

	tenant, err := s.masterData.FindTenantByID(ctx, m.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant %s: %w", m.TenantID, err)
	}

	costCenterID, err := s.resolveMovementCostCenter(ctx, m, tenant)
	if err != nil {
		return nil, err
	}

	return &domain.TransactionDraft{
		TenantID:     m.TenantID,
		Amount:       amount,
		CurrencyCode: tenant.CurrencyCode,
		Category:     domain.CategoryParts,
		CostCenterID: costCenterID,
		BudgetMonth:  m.OccurredAt.UTC().Format(budgetMonthLayout),
		OccurredAt:   m.OccurredAt,
		Metadata: map[string]string{
			"source":      string(domain.EventStockMovement),
			"movement_id": m.MovementID,
			"item_name":   m.ItemName,
			"kind":        string(m.Kind),
			"quantity":    m.Quantity.String(),
			"unit_cost":   m.UnitCost.String(),
		},
	}, nil
}

// resolveMovementCostCenter walks the ordered fallback chain: work order's
// cost center, then asset's, then the tenant default. The first match wins.
func (s *resolverService) resolveMovementCostCenter(ctx context.Context, m domain.StockMovement, tenant *domain.Tenant) (string, error) {
	if m.WorkOrderID != nil {
		wo, err := s.masterData.FindWorkOrderByID(ctx, m.TenantID, *m.WorkOrderID)
		switch {
		case err == nil:
			if wo.CostCenterID != nil && *wo.CostCenterID != "" {
				return *wo.CostCenterID, nil
			}
		case errors.Is(err, apperrors.ErrNotFound):
			// Dangling reference; continue down the chain.
			s.LogWarn(ctx, "Movement references unknown work order",
				slog.String("movement_id", m.MovementID),
				slog.String("work_order_id", *m.WorkOrderID))
		default:
			return "", fmt.Errorf("failed to load work order %s: %w", *m.WorkOrderID, err)
		}
	}

	if m.AssetID != nil {
		asset, err := s.masterData.FindAssetByID(ctx, m.TenantID, *m.AssetID)
		switch {
		case err == nil:
			if asset.CostCenterID != nil && *asset.CostCenterID != "" {
				return *asset.CostCenterID, nil
			}
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogWarn(ctx, "Movement references unknown asset",
				slog.String("movement_id", m.MovementID),
				slog.String("asset_id", *m.AssetID))
		default:
			return "", fmt.Errorf("failed to load asset %s: %w", *m.AssetID, err)
		}
	}

	if tenant.DefaultCostCenterID != nil && *tenant.DefaultCostCenterID != "" {
		return *tenant.DefaultCostCenterID, nil
	}

	return "", fmt.Errorf("%w: movement %s (tenant %s)", apperrors.ErrUnresolvedCostCenter, m.MovementID, m.TenantID)
}

// resolveCommitment qualifies only approved commitments. The category is
// carried on the commitment and passed through unchanged.
func (s *resolverService) resolveCommitment(ctx context.Context, c domain.Commitment) (*domain.TransactionDraft, error) {
	if c.Status != domain.CommitmentApproved {
		return nil, nil
	}
	if c.Amount.IsZero() {
		return nil, nil
	}

	costCenterID := c.CostCenterID
	if costCenterID == "" {
		tenant, err := s.masterData.FindTenantByID(ctx, c.TenantID)
		if err != nil {
			return nil, fmt.Errorf("failed to load tenant %s: %w", c.TenantID, err)
		}
		if tenant.DefaultCostCenterID == nil || *tenant.DefaultCostCenterID == "" {
			return nil, fmt.Errorf("%w: commitment %s (tenant %s)", apperrors.ErrUnresolvedCostCenter, c.CommitmentID, c.TenantID)
		}
		costCenterID = *tenant.DefaultCostCenterID
	}

	occurredAt := c.LastUpdatedAt
	if c.ApprovedAt != nil {
		occurredAt = *c.ApprovedAt
	}

	metadata := map[string]string{
		"source":        string(domain.EventCommitmentApproved),
		"commitment_id": c.CommitmentID,
		"description":   c.Description,
	}
	if c.ApprovedBy != nil {
		metadata["approved_by"] = *c.ApprovedBy
	}

	return &domain.TransactionDraft{
		TenantID:     c.TenantID,
		Amount:       c.Amount,
		CurrencyCode: c.CurrencyCode,
		Category:     c.Category,
		CostCenterID: costCenterID,
		BudgetMonth:  c.BudgetMonth,
		OccurredAt:   occurredAt,
		Metadata:     metadata,
	}, nil
}
