package query

import (
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// GetWarehouseQuery retrieves a warehouse by ID
type GetWarehouseQuery struct {
	ID uint
}

// GetWarehouseHandler handles the get warehouse query
type GetWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewGetWarehouseHandler creates a new get warehouse handler
func NewGetWarehouseHandler(warehouses domain.WarehouseRepository) *GetWarehouseHandler {
	return &GetWarehouseHandler{warehouses: warehouses}
}

// Handle executes the get warehouse query
func (h *GetWarehouseHandler) Handle(q GetWarehouseQuery) (*domain.Warehouse, error) {
	if q.ID == 0 {
		return nil, apperror.Validation("id is required")
	}
	return h.warehouses.FindByID(q.ID)
}
