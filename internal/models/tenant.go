package models

// Tenant represents a tenant row.
type Tenant struct {
	TenantID            string  `db:"tenant_id"`
	Name                string  `db:"name"`
	CurrencyCode        string  `db:"currency_code"`
	DefaultCostCenterID *string `db:"default_cost_center_id"` // Nullable
	IsActive            bool    `db:"is_active"`
	AuditFields
}

// CostCenter represents a cost center row.
type CostCenter struct {
	CostCenterID string `db:"cost_center_id"`
	TenantID     string `db:"tenant_id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}

// Asset represents an asset row.
type Asset struct {
	AssetID      string  `db:"asset_id"`
	TenantID     string  `db:"tenant_id"`
	Name         string  `db:"name"`
	CostCenterID *string `db:"cost_center_id"` // Nullable
	AuditFields
}

// WorkOrder represents a work order row.
type WorkOrder struct {
	WorkOrderID  string  `db:"work_order_id"`
	TenantID     string  `db:"tenant_id"`
	Title        string  `db:"title"`
	CostCenterID *string `db:"cost_center_id"` // Nullable
	AssetID      *string `db:"asset_id"`       // Nullable
	AuditFields
}
