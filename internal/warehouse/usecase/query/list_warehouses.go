package query

import (
	"fmt"

	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
)

// ListWarehousesQuery lists warehouses with pagination
type ListWarehousesQuery struct {
	Limit  int
	Offset int
}

// ListWarehousesHandler handles the list warehouses query
type ListWarehousesHandler struct {
	warehouses domain.WarehouseRepository
}

// NewListWarehousesHandler creates a new list warehouses handler
func NewListWarehousesHandler(warehouses domain.WarehouseRepository) *ListWarehousesHandler {
	return &ListWarehousesHandler{warehouses: warehouses}
}

// Handle executes the list warehouses query
func (h *ListWarehousesHandler) Handle(q ListWarehousesQuery) ([]domain.Warehouse, error) {
	if q.Limit == 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	warehouses, err := h.warehouses.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return warehouses, nil
}
