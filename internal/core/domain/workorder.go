package domain

// Asset is a maintainable piece of equipment. It may carry its own cost
// center, used as the second step of the cost-center fallback chain.
type Asset struct {
	AssetID      string  `json:"assetID"` // Primary Key (UUID)
	TenantID     string  `json:"tenantID"`
	Name         string  `json:"name"`
	CostCenterID *string `json:"costCenterID"` // Nullable
	AuditFields
}

// WorkOrder is a maintenance job. Its cost center, when set, takes precedence
// over the asset's in the fallback chain.
type WorkOrder struct {
	WorkOrderID  string  `json:"workOrderID"` // Primary Key (UUID)
	TenantID     string  `json:"tenantID"`
	Title        string  `json:"title"`
	CostCenterID *string `json:"costCenterID"` // Nullable
	AssetID      *string `json:"assetID"`      // Nullable
	AuditFields
}
