package dto

import (
	"github.com/maintkit/ledgerpost/internal/core/domain"
)

// --- Master data DTOs ---

// CreateTenantRequest defines data for onboarding a tenant.
type CreateTenantRequest struct {
	Name         string `json:"name" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,len=3"`
}

// TenantResponse defines the data returned for a tenant.
type TenantResponse struct {
	TenantID            string  `json:"tenantID"`
	Name                string  `json:"name"`
	CurrencyCode        string  `json:"currencyCode"`
	DefaultCostCenterID *string `json:"defaultCostCenterID,omitempty"`
	IsActive            bool    `json:"isActive"`
}

// ToTenantResponse converts a domain.Tenant to its DTO.
func ToTenantResponse(t *domain.Tenant) TenantResponse {
	return TenantResponse{
		TenantID:            t.TenantID,
		Name:                t.Name,
		CurrencyCode:        t.CurrencyCode,
		DefaultCostCenterID: t.DefaultCostCenterID,
		IsActive:            t.IsActive,
	}
}

// CreateCostCenterRequest defines data for creating a cost center.
type CreateCostCenterRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
	// TenantDefault marks this cost center as the tenant's fallback for
	// ledger posting.
	TenantDefault bool `json:"tenantDefault"`
}

// CostCenterResponse defines the data returned for a cost center.
type CostCenterResponse struct {
	CostCenterID string `json:"costCenterID"`
	TenantID     string `json:"tenantID"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	IsActive     bool   `json:"isActive"`
}

// ToCostCenterResponse converts a domain.CostCenter to its DTO.
func ToCostCenterResponse(cc *domain.CostCenter) CostCenterResponse {
	return CostCenterResponse{
		CostCenterID: cc.CostCenterID,
		TenantID:     cc.TenantID,
		Code:         cc.Code,
		Name:         cc.Name,
		IsActive:     cc.IsActive,
	}
}

// CreateWorkOrderRequest defines data for creating a work order.
type CreateWorkOrderRequest struct {
	Title        string  `json:"title" binding:"required"`
	CostCenterID *string `json:"costCenterID"`
	AssetID      *string `json:"assetID"`
}

// WorkOrderResponse defines the data returned for a work order.
type WorkOrderResponse struct {
	WorkOrderID  string  `json:"workOrderID"`
	TenantID     string  `json:"tenantID"`
	Title        string  `json:"title"`
	CostCenterID *string `json:"costCenterID,omitempty"`
	AssetID      *string `json:"assetID,omitempty"`
}

// ToWorkOrderResponse converts a domain.WorkOrder to its DTO.
func ToWorkOrderResponse(w *domain.WorkOrder) WorkOrderResponse {
	return WorkOrderResponse{
		WorkOrderID:  w.WorkOrderID,
		TenantID:     w.TenantID,
		Title:        w.Title,
		CostCenterID: w.CostCenterID,
		AssetID:      w.AssetID,
	}
}

// CreateAssetRequest defines data for creating an asset.
type CreateAssetRequest struct {
	Name         string  `json:"name" binding:"required"`
	CostCenterID *string `json:"costCenterID"`
}

// AssetResponse defines the data returned for an asset.
type AssetResponse struct {
	AssetID      string  `json:"assetID"`
	TenantID     string  `json:"tenantID"`
	Name         string  `json:"name"`
	CostCenterID *string `json:"costCenterID,omitempty"`
}

// ToAssetResponse converts a domain.Asset to its DTO.
func ToAssetResponse(a *domain.Asset) AssetResponse {
	return AssetResponse{
		AssetID:      a.AssetID,
		TenantID:     a.TenantID,
		Name:         a.Name,
		CostCenterID: a.CostCenterID,
	}
}
