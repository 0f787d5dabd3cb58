package query

import (
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// GetInventoryQuery retrieves a product by ID
type GetInventoryQuery struct {
	ID uint
}

// GetInventoryHandler handles the get inventory query
type GetInventoryHandler struct {
	products domain.ProductRepository
}

// NewGetInventoryHandler creates a new get inventory handler
func NewGetInventoryHandler(products domain.ProductRepository) *GetInventoryHandler {
	return &GetInventoryHandler{products: products}
}

// Handle executes the get inventory query
func (h *GetInventoryHandler) Handle(q GetInventoryQuery) (*domain.Product, error) {
	if q.ID == 0 {
		return nil, apperror.Validation("id is required")
	}
	return h.products.FindByID(q.ID)
}
