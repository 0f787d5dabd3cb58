package query

import (
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// ListWarehousesQuery lists the warehouses a product is stocked in
type ListWarehousesQuery struct {
	ProductID uint
}

// ListWarehousesHandler handles the list warehouses query
type ListWarehousesHandler struct {
	stocks     stockdomain.StockRepository
	warehouses warehousedomain.WarehouseRepository
}

// NewListWarehousesHandler creates a new list warehouses handler
func NewListWarehousesHandler(
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
) *ListWarehousesHandler {
	return &ListWarehousesHandler{stocks: stocks, warehouses: warehouses}
}

// Handle executes the list warehouses query. Warehouses that can no
// longer be resolved are skipped rather than reported as errors.
func (h *ListWarehousesHandler) Handle(q ListWarehousesQuery) ([]warehousedomain.Warehouse, error) {
	if q.ProductID == 0 {
		return nil, apperror.Validation("product id is required")
	}

	entries, err := h.stocks.FindByProductID(q.ProductID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, apperror.NotFound("no stock found for product")
	}

	warehouses := []warehousedomain.Warehouse{}
	for _, entry := range entries {
		warehouse, err := h.warehouses.FindByID(entry.WarehouseID)
		if err != nil {
			continue
		}
		warehouses = append(warehouses, *warehouse)
	}
	return warehouses, nil
}
