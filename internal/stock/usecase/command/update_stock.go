package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// UpdateStockCommand is a full update of a stock entry's levels.
// Quantity and threshold must both be supplied, along with the owning
// warehouse reference.
type UpdateStockCommand struct {
	ID                uint
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// UpdateStockHandler handles the update stock command
type UpdateStockHandler struct {
	stocks     domain.StockRepository
	products   inventorydomain.ProductRepository
	warehouses warehousedomain.WarehouseRepository
	dispatcher alert.Dispatcher
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(
	stocks domain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *UpdateStockHandler {
	return &UpdateStockHandler{
		stocks:     stocks,
		products:   products,
		warehouses: warehouses,
		dispatcher: dispatcher,
	}
}

// validateLevels enforces the shared stock mutation invariant
func validateLevels(warehouseID *uint, quantity, threshold *int) error {
	if quantity == nil && threshold == nil {
		return nil
	}
	if warehouseID == nil {
		return apperror.Validation("warehouse reference missing")
	}
	if quantity == nil || threshold == nil {
		return apperror.Validation("quantity and lowStockThreshold must be provided together")
	}
	if *quantity < 0 {
		return apperror.Validation("quantity cannot be negative")
	}
	if *threshold < 0 {
		return apperror.Validation("lowStockThreshold cannot be negative")
	}
	return nil
}

// Handle executes the full stock update command
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.StockEntry, error) {
	if cmd.Quantity == nil || cmd.LowStockThreshold == nil {
		return nil, apperror.Validation("quantity and lowStockThreshold are required")
	}
	if err := validateLevels(cmd.WarehouseID, cmd.Quantity, cmd.LowStockThreshold); err != nil {
		return nil, err
	}

	entry, err := h.stocks.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}
	if entry.WarehouseID != *cmd.WarehouseID {
		return nil, apperror.Validation("warehouse reference does not match stock entry")
	}

	entry.Quantity = *cmd.Quantity
	entry.LowStockThreshold = *cmd.LowStockThreshold
	if err := h.stocks.Update(entry); err != nil {
		return nil, err
	}

	notifyIfLow(ctx, h.dispatcher, h.products, h.warehouses, entry)

	return entry, nil
}
