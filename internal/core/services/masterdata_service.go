package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	portssvc "github.com/maintkit/ledgerpost/internal/core/ports/services"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// masterDataService manages tenants, cost centers, work orders and assets.
type masterDataService struct {
	BaseService
	masterData portsrepo.MasterDataRepositoryFacade
}

// NewMasterDataService creates a new master data service.
func NewMasterDataService(masterData portsrepo.MasterDataRepositoryFacade) portssvc.MasterDataSvcFacade {
	return &masterDataService{masterData: masterData}
}

var _ portssvc.MasterDataSvcFacade = (*masterDataService)(nil)

func newAuditFields(creatorID string) domain.AuditFields {
	now := time.Now().UTC()
	return domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorID,
	}
}

// CreateTenant onboards a new tenant. Tenants start active and without a
// default cost center; one is attached via CreateCostCenter.
func (s *masterDataService) CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorID string) (*domain.Tenant, error) {
	tenant := domain.Tenant{
		TenantID:     uuid.NewString(),
		Name:         req.Name,
		CurrencyCode: req.CurrencyCode,
		IsActive:     true,
		AuditFields:  newAuditFields(creatorID),
	}
	if err := s.masterData.SaveTenant(ctx, tenant); err != nil {
		return nil, fmt.Errorf("failed to save tenant: %w", err)
	}
	return &tenant, nil
}

// GetTenantByID retrieves a single tenant.
func (s *masterDataService) GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	tenant, err := s.masterData.FindTenantByID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}
	return tenant, nil
}

// ListTenants retrieves all tenants.
func (s *masterDataService) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	tenants, err := s.masterData.ListTenants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	return tenants, nil
}

// CreateCostCenter creates a cost center for a tenant. When the request marks
// it as the tenant default it also becomes the ledger-posting fallback.
func (s *masterDataService) CreateCostCenter(ctx context.Context, tenantID string, req dto.CreateCostCenterRequest, creatorID string) (*domain.CostCenter, error) {
	if _, err := s.masterData.FindTenantByID(ctx, tenantID); err != nil {
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}

	costCenter := domain.CostCenter{
		CostCenterID: uuid.NewString(),
		TenantID:     tenantID,
		Code:         req.Code,
		Name:         req.Name,
		IsActive:     true,
		AuditFields:  newAuditFields(creatorID),
	}
	if err := s.masterData.SaveCostCenter(ctx, costCenter); err != nil {
		return nil, fmt.Errorf("failed to save cost center: %w", err)
	}

	if req.TenantDefault {
		if err := s.masterData.SetDefaultCostCenter(ctx, tenantID, costCenter.CostCenterID, creatorID); err != nil {
			return nil, fmt.Errorf("failed to set default cost center for tenant %s: %w", tenantID, err)
		}
	}

	return &costCenter, nil
}

// ListCostCenters retrieves a tenant's cost centers.
func (s *masterDataService) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	costCenters, err := s.masterData.ListCostCenters(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cost centers for tenant %s: %w", tenantID, err)
	}
	return costCenters, nil
}

// CreateWorkOrder creates a work order, optionally pinned to a cost center
// and an asset.
func (s *masterDataService) CreateWorkOrder(ctx context.Context, tenantID string, req dto.CreateWorkOrderRequest, creatorID string) (*domain.WorkOrder, error) {
	if req.CostCenterID != nil {
		if _, err := s.masterData.FindCostCenterByID(ctx, tenantID, *req.CostCenterID); err != nil {
			return nil, fmt.Errorf("failed to find cost center %s: %w", *req.CostCenterID, err)
		}
	}
	if req.AssetID != nil {
		if _, err := s.masterData.FindAssetByID(ctx, tenantID, *req.AssetID); err != nil {
			return nil, fmt.Errorf("failed to find asset %s: %w", *req.AssetID, err)
		}
	}

	workOrder := domain.WorkOrder{
		WorkOrderID:  uuid.NewString(),
		TenantID:     tenantID,
		Title:        req.Title,
		CostCenterID: req.CostCenterID,
		AssetID:      req.AssetID,
		AuditFields:  newAuditFields(creatorID),
	}
	if err := s.masterData.SaveWorkOrder(ctx, workOrder); err != nil {
		return nil, fmt.Errorf("failed to save work order: %w", err)
	}
	return &workOrder, nil
}

// CreateAsset creates an asset, optionally pinned to a cost center.
func (s *masterDataService) CreateAsset(ctx context.Context, tenantID string, req dto.CreateAssetRequest, creatorID string) (*domain.Asset, error) {
	if req.CostCenterID != nil {
		if _, err := s.masterData.FindCostCenterByID(ctx, tenantID, *req.CostCenterID); err != nil {
			return nil, fmt.Errorf("failed to find cost center %s: %w", *req.CostCenterID, err)
		}
	}

	asset := domain.Asset{
		AssetID:      uuid.NewString(),
		TenantID:     tenantID,
		Name:         req.Name,
		CostCenterID: req.CostCenterID,
		AuditFields:  newAuditFields(creatorID),
	}
	if err := s.masterData.SaveAsset(ctx, asset); err != nil {
		return nil, fmt.Errorf("failed to save asset: %w", err)
	}
	return &asset, nil
}
