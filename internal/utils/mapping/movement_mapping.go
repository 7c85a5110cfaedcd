package mapping

import (
	"github.com/maintkit/ledgerpost/internal/core/domain"
	"github.com/maintkit/ledgerpost/internal/models"
)

// ToModelStockMovement converts a domain StockMovement to a model StockMovement
func ToModelStockMovement(d domain.StockMovement) models.StockMovement {
	return models.StockMovement{
		MovementID:  d.MovementID,
		TenantID:    d.TenantID,
		ItemName:    d.ItemName,
		Kind:        models.MovementKind(d.Kind),
		Quantity:    d.Quantity,
		UnitCost:    d.UnitCost,
		WorkOrderID: d.WorkOrderID,
		AssetID:     d.AssetID,
		OccurredAt:  d.OccurredAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStockMovement converts a model StockMovement to a domain StockMovement
func ToDomainStockMovement(m models.StockMovement) domain.StockMovement {
	return domain.StockMovement{
		MovementID:  m.MovementID,
		TenantID:    m.TenantID,
		ItemName:    m.ItemName,
		Kind:        domain.MovementKind(m.Kind),
		Quantity:    m.Quantity,
		UnitCost:    m.UnitCost,
		WorkOrderID: m.WorkOrderID,
		AssetID:     m.AssetID,
		OccurredAt:  m.OccurredAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainStockMovementSlice converts a slice of model StockMovements to domain ones
func ToDomainStockMovementSlice(ms []models.StockMovement) []domain.StockMovement {
	ds := make([]domain.StockMovement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainStockMovement(m)
	}
	return ds
}
