package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// UpdateInventoryCommand is a full update: name and price are
// mandatory, stock fields are optional but constrained together
type UpdateInventoryCommand struct {
	ID                uint
	Name              *string
	Price             *float64
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// UpdateInventoryHandler handles the full inventory update command
type UpdateInventoryHandler struct {
	products   domain.ProductRepository
	stocks     stockdomain.StockRepository
	warehouses warehousedomain.WarehouseRepository
	dispatcher alert.Dispatcher
}

// NewUpdateInventoryHandler creates a new update inventory handler
func NewUpdateInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *UpdateInventoryHandler {
	return &UpdateInventoryHandler{
		products:   products,
		stocks:     stocks,
		warehouses: warehouses,
		dispatcher: dispatcher,
	}
}

// validateStockFields enforces the stock mutation invariant shared by
// full and partial updates: quantity and threshold travel together,
// and the owning warehouse reference must come with them.
func validateStockFields(cmd *UpdateInventoryCommand) error {
	touchesStock := cmd.Quantity != nil || cmd.LowStockThreshold != nil
	if !touchesStock {
		return nil
	}
	if cmd.WarehouseID == nil {
		return apperror.Validation("warehouse reference missing")
	}
	if cmd.Quantity == nil || cmd.LowStockThreshold == nil {
		return apperror.Validation("quantity and lowStockThreshold must be provided together")
	}
	if *cmd.Quantity < 0 {
		return apperror.Validation("quantity cannot be negative")
	}
	if *cmd.LowStockThreshold < 0 {
		return apperror.Validation("lowStockThreshold cannot be negative")
	}
	return nil
}

// applyStockUpdate writes the new quantity/threshold to the stock
// entry for (product, warehouse) and evaluates the low-stock predicate
// after the write.
func applyStockUpdate(
	ctx context.Context,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
	productID uint,
	productName string,
	cmd *UpdateInventoryCommand,
) error {
	if cmd.WarehouseID == nil || cmd.Quantity == nil {
		return nil
	}

	entry, err := stocks.FindByProductAndWarehouse(productID, *cmd.WarehouseID)
	if err != nil {
		return err
	}

	entry.Quantity = *cmd.Quantity
	entry.LowStockThreshold = *cmd.LowStockThreshold
	if err := stocks.Update(entry); err != nil {
		return err
	}

	dispatchIfLow(ctx, dispatcher, warehouses, productName, entry)
	return nil
}

// Handle executes the full inventory update command
func (h *UpdateInventoryHandler) Handle(ctx context.Context, cmd UpdateInventoryCommand) (*domain.Product, error) {
	if cmd.Name == nil || cmd.Price == nil {
		return nil, apperror.Validation("name and price are required")
	}
	if *cmd.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	if *cmd.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	if err := validateStockFields(&cmd); err != nil {
		return nil, err
	}

	product, err := h.products.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Name = *cmd.Name
	product.Price = *cmd.Price
	if err := h.products.Update(product); err != nil {
		return nil, err
	}

	if err := applyStockUpdate(ctx, h.stocks, h.warehouses, h.dispatcher, product.ID, product.Name, &cmd); err != nil {
		return nil, err
	}

	return product, nil
}
