package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
)

// EditStockCommand is a partial update of a stock entry. When either
// level field is supplied the full invariant applies.
type EditStockCommand struct {
	ID                uint
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// EditStockHandler handles the partial stock update command
type EditStockHandler struct {
	stocks     domain.StockRepository
	products   inventorydomain.ProductRepository
	warehouses warehousedomain.WarehouseRepository
	dispatcher alert.Dispatcher
}

// NewEditStockHandler creates a new edit stock handler
func NewEditStockHandler(
	stocks domain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *EditStockHandler {
	return &EditStockHandler{
		stocks:     stocks,
		products:   products,
		warehouses: warehouses,
		dispatcher: dispatcher,
	}
}

// Handle executes the partial stock update command
func (h *EditStockHandler) Handle(ctx context.Context, cmd EditStockCommand) (*domain.StockEntry, error) {
	if err := validateLevels(cmd.WarehouseID, cmd.Quantity, cmd.LowStockThreshold); err != nil {
		return nil, err
	}

	entry, err := h.stocks.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Quantity == nil {
		// Nothing to change
		return entry, nil
	}

	entry.Quantity = *cmd.Quantity
	entry.LowStockThreshold = *cmd.LowStockThreshold
	if err := h.stocks.Update(entry); err != nil {
		return nil, err
	}

	notifyIfLow(ctx, h.dispatcher, h.products, h.warehouses, entry)

	return entry, nil
}
