package services

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/dto"
)

// MasterDataSvcFacade exposes the minimal master data operations the service
// needs to be operable stand-alone: tenants, cost centers, work orders,
// assets.
type MasterDataSvcFacade interface {
	CreateTenant(ctx context.Context, req dto.CreateTenantRequest, creatorID string) (*domain.Tenant, error)
	GetTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)

	CreateCostCenter(ctx context.Context, tenantID string, req dto.CreateCostCenterRequest, creatorID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)

	CreateWorkOrder(ctx context.Context, tenantID string, req dto.CreateWorkOrderRequest, creatorID string) (*domain.WorkOrder, error)
	CreateAsset(ctx context.Context, tenantID string, req dto.CreateAssetRequest, creatorID string) (*domain.Asset, error)
}
