package mapping

import (
	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/models"
)

// ToModelTenant converts a domain Tenant to a model Tenant
func ToModelTenant(d domain.Tenant) models.Tenant {
	return models.Tenant{
		TenantID:            d.TenantID,
		Name:                d.Name,
		CurrencyCode:        d.CurrencyCode,
		DefaultCostCenterID: d.DefaultCostCenterID,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTenant converts a model Tenant to a domain Tenant
func ToDomainTenant(m models.Tenant) domain.Tenant {
	return domain.Tenant{
		TenantID:            m.TenantID,
		Name:                m.Name,
		CurrencyCode:        m.CurrencyCode,
		DefaultCostCenterID: m.DefaultCostCenterID,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCostCenter converts a domain CostCenter to a model CostCenter
func ToModelCostCenter(d domain.CostCenter) models.CostCenter {
	return models.CostCenter{
		CostCenterID: d.CostCenterID,
		TenantID:     d.TenantID,
		Code:         d.Code,
		Name:         d.Name,
		IsActive:     d.IsActive,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCostCenter converts a model CostCenter to a domain CostCenter
func ToDomainCostCenter(m models.CostCenter) domain.CostCenter {
	return domain.CostCenter{
		CostCenterID: m.CostCenterID,
		TenantID:     m.TenantID,
		Code:         m.Code,
		Name:         m.Name,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAsset converts a model Asset to a domain Asset
func ToDomainAsset(m models.Asset) domain.Asset {
	return domain.Asset{
		AssetID:      m.AssetID,
		TenantID:     m.TenantID,
		Name:         m.Name,
		CostCenterID: m.CostCenterID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelAsset converts a domain Asset to a model Asset
func ToModelAsset(d domain.Asset) models.Asset {
	return models.Asset{
		AssetID:      d.AssetID,
		TenantID:     d.TenantID,
		Name:         d.Name,
		CostCenterID: d.CostCenterID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainWorkOrder converts a model WorkOrder to a domain WorkOrder
func ToDomainWorkOrder(m models.WorkOrder) domain.WorkOrder {
	return domain.WorkOrder{
		WorkOrderID:  m.WorkOrderID,
		TenantID:     m.TenantID,
		Title:        m.Title,
		CostCenterID: m.CostCenterID,
		AssetID:      m.AssetID,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelWorkOrder converts a domain WorkOrder to a model WorkOrder
func ToModelWorkOrder(d domain.WorkOrder) models.WorkOrder {
	return models.WorkOrder{
		WorkOrderID:  d.WorkOrderID,
		TenantID:     d.TenantID,
		Title:        d.Title,
		CostCenterID: d.CostCenterID,
		AssetID:      d.AssetID,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}
