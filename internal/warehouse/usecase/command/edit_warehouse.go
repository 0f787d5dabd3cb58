package command

import (
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// EditWarehouseCommand is a partial warehouse update: only supplied
// fields are written
type EditWarehouseCommand struct {
	ID        uint
	Name      *string
	Location  *string
	ManagerID *uint
}

// EditWarehouseHandler handles the partial warehouse update command
type EditWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewEditWarehouseHandler creates a new edit warehouse handler
func NewEditWarehouseHandler(warehouses domain.WarehouseRepository) *EditWarehouseHandler {
	return &EditWarehouseHandler{warehouses: warehouses}
}

// Handle executes the partial warehouse update command
func (h *EditWarehouseHandler) Handle(cmd EditWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, apperror.Validation("name cannot be empty")
	}
	if cmd.Location != nil && *cmd.Location == "" {
		return nil, apperror.Validation("location cannot be empty")
	}

	fields := map[string]interface{}{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
	}
	if cmd.Location != nil {
		fields["location"] = *cmd.Location
	}
	if cmd.ManagerID != nil {
		fields["manager_id"] = *cmd.ManagerID
	}

	if len(fields) > 0 {
		if err := h.warehouses.UpdateFields(cmd.ID, fields); err != nil {
			return nil, err
		}
	}

	return h.warehouses.FindByID(cmd.ID)
}
