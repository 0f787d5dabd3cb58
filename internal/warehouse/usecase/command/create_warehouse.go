package command

import (
	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// CreateWarehouseCommand creates a warehouse
type CreateWarehouseCommand struct {
	Name      string
	Location  string
	ManagerID uint
}

// CreateWarehouseHandler handles the create warehouse command
type CreateWarehouseHandler struct {
	warehouses domain.WarehouseRepository
}

// NewCreateWarehouseHandler creates a new create warehouse handler
func NewCreateWarehouseHandler(warehouses domain.WarehouseRepository) *CreateWarehouseHandler {
	return &CreateWarehouseHandler{warehouses: warehouses}
}

// Handle executes the create warehouse command
func (h *CreateWarehouseHandler) Handle(cmd CreateWarehouseCommand) (*domain.Warehouse, error) {
	if cmd.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	if cmd.Location == "" {
		return nil, apperror.Validation("location is required")
	}

	warehouse := &domain.Warehouse{
		Name:      cmd.Name,
		Location:  cmd.Location,
		ManagerID: cmd.ManagerID,
	}
	if err := h.warehouses.Create(warehouse); err != nil {
		return nil, err
	}
	return warehouse, nil
}
