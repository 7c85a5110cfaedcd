package domain

// Tenant represents one customer organisation on the platform. Every row the
// ledger core touches is scoped to a tenant; no cross-tenant access exists.
type Tenant struct {
	TenantID            string  `json:"tenantID"`     // Primary Key (UUID)
	Name                string  `json:"name"`         // Display name
	CurrencyCode        string  `json:"currencyCode"` // Currency applied to movement-derived postings
	DefaultCostCenterID *string `json:"defaultCostCenterID"`
	IsActive            bool    `json:"isActive"`
	AuditFields
}

// CostCenter is an organisational bucket (department, site, contract) to which
// realized costs are attributed for reporting.
type CostCenter struct {
	CostCenterID string `json:"costCenterID"` // Primary Key (UUID)
	TenantID     string `json:"tenantID"`
	Code         string `json:"code"` // Short human code, unique per tenant
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
