package command

import (
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// DeleteInventoryCommand deletes a product by ID
type DeleteInventoryCommand struct {
	ID uint
}

// DeleteInventoryHandler handles the delete inventory command
type DeleteInventoryHandler struct {
	products domain.ProductRepository
}

// NewDeleteInventoryHandler creates a new delete inventory handler
func NewDeleteInventoryHandler(products domain.ProductRepository) *DeleteInventoryHandler {
	return &DeleteInventoryHandler{products: products}
}

// Handle executes the delete inventory command. Stock entries for the
// product are intentionally not cascaded; the report layer renders
// them with placeholders.
func (h *DeleteInventoryHandler) Handle(cmd DeleteInventoryCommand) error {
	if cmd.ID == 0 {
		return apperror.Validation("id is required")
	}
	return h.products.Delete(cmd.ID)
}
