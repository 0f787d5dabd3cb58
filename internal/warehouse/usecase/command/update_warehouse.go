package command

import (
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// UpdateWarehouseCommand is a full warehouse update
type UpdateWarehouseCommand struct {
	ID        uint
	Name      string
	Location  string
	ManagerID uint
}

// UpdateWarehouseHandler handles the full warehouse update command
type UpdateWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewUpdateWarehouseHandler creates a new update warehouse handler
func NewUpdateWarehouseHandler(warehouses domain.WarehouseRepository) *UpdateWarehouseHandler {
	return &UpdateWarehouseHandler{warehouses: warehouses}
}

// Handle executes the full warehouse update command
func (h *UpdateWarehouseHandler) Handle(cmd UpdateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	if cmd.Location == "" {
		return nil, apperror.Validation("location is required")
	}

	warehouse, err := h.warehouses.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	warehouse.Name = cmd.Name
	warehouse.Location = cmd.Location
	warehouse.ManagerID = cmd.ManagerID
	if err := h.warehouses.Update(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}
