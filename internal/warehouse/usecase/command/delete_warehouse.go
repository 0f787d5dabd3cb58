package command

import (
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// DeleteWarehouseCommand deletes a warehouse by ID
type DeleteWarehouseCommand struct {
	ID uint
}

// DeleteWarehouseHandler handles the delete warehouse command
type DeleteWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewDeleteWarehouseHandler creates a new delete warehouse handler
func NewDeleteWarehouseHandler(warehouses domain.WarehouseRepository) *DeleteWarehouseHandler {
	return &DeleteWarehouseHandler{warehouses: warehouses}
}

// Handle executes the delete warehouse command
func (h *DeleteWarehouseHandler) Handle(cmd DeleteWarehouseCommand) error {
	if cmd.ID == 0 {
		return apperror.Validation("id is required")
	}
	return h.warehouses.Delete(cmd.ID)
}
