package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// EditInventoryCommand is a partial update: only supplied fields are
// written. Stock fields follow the same invariant as the full update.
type EditInventoryCommand struct {
	ID                uint
	Name              *string
	Price             *float64
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// EditInventoryHandler handles the partial inventory update command
type EditInventoryHandler struct {
	products   domain.ProductRepository
	stocks     stockdomain.StockRepository
	warehouses warehousedomain.WarehouseRepository
	dispatcher alert.Dispatcher
}

// NewEditInventoryHandler creates a new edit inventory handler
func NewEditInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *EditInventoryHandler {
	return &EditInventoryHandler{
		products:   products,
		stocks:     stocks,
		warehouses: warehouses,
		dispatcher: dispatcher,
	}
}

// Handle executes the partial inventory update command
func (h *EditInventoryHandler) Handle(ctx context.Context, cmd EditInventoryCommand) (*domain.Product, error) {
	if cmd.Price != nil && *cmd.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, apperror.Validation("name cannot be empty")
	}

	full := UpdateInventoryCommand{
		ID:                cmd.ID,
		WarehouseID:       cmd.WarehouseID,
		Quantity:          cmd.Quantity,
		LowStockThreshold: cmd.LowStockThreshold,
	}
	if err := validateStockFields(&full); err != nil {
		return nil, err
	}

	product, err := h.products.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if cmd.Name != nil {
		fields["name"] = *cmd.Name
		product.Name = *cmd.Name
	}
	if cmd.Price != nil {
		fields["price"] = *cmd.Price
		product.Price = *cmd.Price
	}
	if len(fields) > 0 {
		if err := h.products.UpdateFields(cmd.ID, fields); err != nil {
			return nil, err
		}
	}

	if err := applyStockUpdate(ctx, h.stocks, h.warehouses, h.dispatcher, product.ID, product.Name, &full); err != nil {
		return nil, err
	}

	return product, nil
}
