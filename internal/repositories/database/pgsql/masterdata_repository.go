package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/maintkit/ledgerpost/internal/apperrors"
	"github.com/maintkit/ledgerpost/internal/core/domain"
	portsrepo "github.com/maintkit/ledgerpost/internal/core/ports/repositories"
	"github.com/maintkit/ledgerpost/internal/models"
	"github.com/maintkit/ledgerpost/internal/utils/mapping"
)

type PgxMasterDataRepository struct {
	BaseRepository
}

// newPgxMasterDataRepository creates a new repository covering tenants, cost
// centers, work orders and assets.
func newPgxMasterDataRepository(pool *pgxpool.Pool) portsrepo.MasterDataRepositoryFacade {
	return &PgxMasterDataRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MasterDataRepositoryFacade = (*PgxMasterDataRepository)(nil)

// --- Tenants ---

const tenantColumns = `tenant_id, name, currency_code, default_cost_center_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

// SaveTenant inserts a new tenant.
func (r *PgxMasterDataRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	modelTenant := mapping.ToModelTenant(tenant)

	query := `
		INSERT INTO tenants (` + tenantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelTenant.TenantID,
		modelTenant.Name,
		modelTenant.CurrencyCode,
		modelTenant.DefaultCostCenterID,
		modelTenant.IsActive,
		modelTenant.CreatedAt,
		modelTenant.CreatedBy,
		modelTenant.LastUpdatedAt,
		modelTenant.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save tenant %s: %w", modelTenant.TenantID, err)
	}
	return nil
}

// SetDefaultCostCenter points the tenant's ledger-posting fallback at the
// given cost center.
func (r *PgxMasterDataRepository) SetDefaultCostCenter(ctx context.Context, tenantID string, costCenterID string, updatedBy string) error {
	query := `
		UPDATE tenants
		SET default_cost_center_id = $1, last_updated_at = $2, last_updated_by = $3
		WHERE tenant_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, costCenterID, time.Now().UTC(), updatedBy, tenantID)
	if err != nil {
		return fmt.Errorf("failed to set default cost center for tenant %s: %w", tenantID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindTenantByID retrieves a tenant by id.
func (r *PgxMasterDataRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants
		WHERE tenant_id = $1;
	`
	var modelTenant models.Tenant
	err := r.Pool.QueryRow(ctx, query, tenantID).Scan(
		&modelTenant.TenantID,
		&modelTenant.Name,
		&modelTenant.CurrencyCode,
		&modelTenant.DefaultCostCenterID,
		&modelTenant.IsActive,
		&modelTenant.CreatedAt,
		&modelTenant.CreatedBy,
		&modelTenant.LastUpdatedAt,
		&modelTenant.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}

	domainTenant := mapping.ToDomainTenant(modelTenant)
	return &domainTenant, nil
}

// ListTenants retrieves all tenants.
func (r *PgxMasterDataRepository) ListTenants(ctx context.Context) ([]domain.Tenant, error) {
	query := `
		SELECT ` + tenantColumns + `
		FROM tenants
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tenants: %w", err)
	}
	defer rows.Close()

	modelTenants, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Tenant, error) {
		var tenant models.Tenant
		err := row.Scan(
			&tenant.TenantID,
			&tenant.Name,
			&tenant.CurrencyCode,
			&tenant.DefaultCostCenterID,
			&tenant.IsActive,
			&tenant.CreatedAt,
			&tenant.CreatedBy,
			&tenant.LastUpdatedAt,
			&tenant.LastUpdatedBy,
		)
		return tenant, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan tenants: %w", err)
	}

	tenants := make([]domain.Tenant, len(modelTenants))
	for i, m := range modelTenants {
		tenants[i] = mapping.ToDomainTenant(m)
	}
	return tenants, nil
}

// --- Cost centers ---

const costCenterColumns = `cost_center_id, tenant_id, code, name, is_active, created_at, created_by, last_updated_at, last_updated_by`

// SaveCostCenter inserts a new cost center. A code collision within the
// tenant surfaces as apperrors.ErrDuplicate.
func (r *PgxMasterDataRepository) SaveCostCenter(ctx context.Context, costCenter domain.CostCenter) error {
	modelCC := mapping.ToModelCostCenter(costCenter)

	query := `
		INSERT INTO cost_centers (` + costCenterColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCC.CostCenterID,
		modelCC.TenantID,
		modelCC.Code,
		modelCC.Name,
		modelCC.IsActive,
		modelCC.CreatedAt,
		modelCC.CreatedBy,
		modelCC.LastUpdatedAt,
		modelCC.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return fmt.Errorf("%w: cost center code %s already exists for tenant %s",
				apperrors.ErrDuplicate, modelCC.Code, modelCC.TenantID)
		}
		return fmt.Errorf("failed to save cost center %s: %w", modelCC.CostCenterID, err)
	}
	return nil
}

// FindCostCenterByID retrieves a cost center scoped to its tenant.
func (r *PgxMasterDataRepository) FindCostCenterByID(ctx context.Context, tenantID string, costCenterID string) (*domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		WHERE tenant_id = $1 AND cost_center_id = $2;
	`
	var modelCC models.CostCenter
	err := r.Pool.QueryRow(ctx, query, tenantID, costCenterID).Scan(
		&modelCC.CostCenterID,
		&modelCC.TenantID,
		&modelCC.Code,
		&modelCC.Name,
		&modelCC.IsActive,
		&modelCC.CreatedAt,
		&modelCC.CreatedBy,
		&modelCC.LastUpdatedAt,
		&modelCC.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cost center %s: %w", costCenterID, err)
	}

	domainCC := mapping.ToDomainCostCenter(modelCC)
	return &domainCC, nil
}

// ListCostCenters retrieves a tenant's cost centers.
func (r *PgxMasterDataRepository) ListCostCenters(ctx context.Context, tenantID string) ([]domain.CostCenter, error) {
	query := `
		SELECT ` + costCenterColumns + `
		FROM cost_centers
		WHERE tenant_id = $1
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cost centers: %w", err)
	}
	defer rows.Close()

	modelCCs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CostCenter, error) {
		var cc models.CostCenter
		err := row.Scan(
			&cc.CostCenterID,
			&cc.TenantID,
			&cc.Code,
			&cc.Name,
			&cc.IsActive,
			&cc.CreatedAt,
			&cc.CreatedBy,
			&cc.LastUpdatedAt,
			&cc.LastUpdatedBy,
		)
		return cc, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan cost centers: %w", err)
	}

	costCenters := make([]domain.CostCenter, len(modelCCs))
	for i, m := range modelCCs {
		costCenters[i] = mapping.ToDomainCostCenter(m)
	}
	return costCenters, nil
}

// --- Work orders ---

const workOrderColumns = `work_order_id, tenant_id, title, cost_center_id, asset_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveWorkOrder inserts a new work order.
func (r *PgxMasterDataRepository) SaveWorkOrder(ctx context.Context, workOrder domain.WorkOrder) error {
	modelWO := mapping.ToModelWorkOrder(workOrder)

	query := `
		INSERT INTO work_orders (` + workOrderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelWO.WorkOrderID,
		modelWO.TenantID,
		modelWO.Title,
		modelWO.CostCenterID,
		modelWO.AssetID,
		modelWO.CreatedAt,
		modelWO.CreatedBy,
		modelWO.LastUpdatedAt,
		modelWO.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save work order %s: %w", modelWO.WorkOrderID, err)
	}
	return nil
}

// FindWorkOrderByID retrieves a work order scoped to its tenant.
func (r *PgxMasterDataRepository) FindWorkOrderByID(ctx context.Context, tenantID string, workOrderID string) (*domain.WorkOrder, error) {
	query := `
		SELECT ` + workOrderColumns + `
		FROM work_orders
		WHERE tenant_id = $1 AND work_order_id = $2;
	`
	var modelWO models.WorkOrder
	err := r.Pool.QueryRow(ctx, query, tenantID, workOrderID).Scan(
		&modelWO.WorkOrderID,
		&modelWO.TenantID,
		&modelWO.Title,
		&modelWO.CostCenterID,
		&modelWO.AssetID,
		&modelWO.CreatedAt,
		&modelWO.CreatedBy,
		&modelWO.LastUpdatedAt,
		&modelWO.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work order %s: %w", workOrderID, err)
	}

	domainWO := mapping.ToDomainWorkOrder(modelWO)
	return &domainWO, nil
}

// --- Assets ---

const assetColumns = `asset_id, tenant_id, name, cost_center_id, created_at, created_by, last_updated_at, last_updated_by`

// SaveAsset inserts a new asset.
func (r *PgxMasterDataRepository) SaveAsset(ctx context.Context, asset domain.Asset) error {
	modelAsset := mapping.ToModelAsset(asset)

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAsset.AssetID,
		modelAsset.TenantID,
		modelAsset.Name,
		modelAsset.CostCenterID,
		modelAsset.CreatedAt,
		modelAsset.CreatedBy,
		modelAsset.LastUpdatedAt,
		modelAsset.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save asset %s: %w", modelAsset.AssetID, err)
	}
	return nil
}

// FindAssetByID retrieves an asset scoped to its tenant.
func (r *PgxMasterDataRepository) FindAssetByID(ctx context.Context, tenantID string, assetID string) (*domain.Asset, error) {
	query := `
		SELECT ` + assetColumns + `
		FROM assets
		WHERE tenant_id = $1 AND asset_id = $2;
	`
	var modelAsset models.Asset
	err := r.Pool.QueryRow(ctx, query, tenantID, assetID).Scan(
		&modelAsset.AssetID,
		&modelAsset.TenantID,
		&modelAsset.Name,
		&modelAsset.CostCenterID,
		&modelAsset.CreatedAt,
		&modelAsset.CreatedBy,
		&modelAsset.LastUpdatedAt,
		&modelAsset.LastUpdatedBy,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}

	domainAsset := mapping.ToDomainAsset(modelAsset)
	return &domainAsset, nil
}
