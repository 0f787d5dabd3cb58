package query

import (
	"fmt"

	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
)

// ListInventoryQuery lists products with pagination
type ListInventoryQuery struct {
	Limit  int
	Offset int
}

// ListInventoryHandler handles the list inventory query
type ListInventoryHandler struct {
	products domain.ProductRepository
}

// NewListInventoryHandler creates a new list inventory handler
func NewListInventoryHandler(products domain.ProductRepository) *ListInventoryHandler {
	return &ListInventoryHandler{products: products}
}

// Handle executes the list inventory query
func (h *ListInventoryHandler) Handle(q ListInventoryQuery) ([]domain.Product, error) {
	if q.Limit == 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	products, err := h.products.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}
