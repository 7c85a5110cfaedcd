package repositories

import (
	"context"

	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// TenantReader defines read operations for tenant data.
type TenantReader interface {
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantWriter defines write operations for tenant data.
type TenantWriter interface {
	SaveTenant(ctx context.Context, tenant domain.Tenant) error

	// SetDefaultCostCenter points the tenant's ledger-posting fallback at
	// the given cost center.
	SetDefaultCostCenter(ctx context.Context, tenantID string, costCenterID string, updatedBy string) error
}

// CostCenterReader defines read operations for cost center data.
type CostCenterReader interface {
	FindCostCenterByID(ctx context.Context, tenantID string, costCenterID string) (*domain.CostCenter, error)
	ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error)
}

// CostCenterWriter defines write operations for cost center data.
type CostCenterWriter interface {
	SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error
}

// WorkOrderReader defines read operations for work order data.
type WorkOrderReader interface {
	FindWorkOrderByID(ctx context.Context, tenantID string, workOrderID string) (*domain.WorkOrder, error)
}

// WorkOrderWriter defines write operations for work order data.
type WorkOrderWriter interface {
	SaveWorkOrder(ctx context.Context, workOrder domain.WorkOrder) error
}

// AssetReader defines read operations for asset data.
type AssetReader interface {
	FindAssetByID(ctx context.Context, tenantID string, assetID string) (*domain.Asset, error)
}

// AssetWriter defines write operations for asset data.
type AssetWriter interface {
	SaveAsset(ctx context.Context, asset domain.Asset) error
}

// MasterDataRepositoryFacade combines all master data repository interfaces.
type MasterDataRepositoryFacade interface {
	TenantReader
	TenantWriter
	CostCenterReader
	CostCenterWriter
	WorkOrderReader
	WorkOrderWriter
	AssetReader
	AssetWriter
}
