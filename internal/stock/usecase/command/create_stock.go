package command

import (
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// CreateStockCommand creates a stock entry for a (product, warehouse)
// pair. All fields are mandatory.
type CreateStockCommand struct {
	ProductID         *uint
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// CreateStockHandler handles the create stock command
type CreateStockHandler struct {
	stocks domain.StockRepository
}

// NewCreateStockHandler creates a new create stock handler
func NewCreateStockHandler(stocks domain.StockRepository) *CreateStockHandler {
	return &CreateStockHandler{stocks: stocks}
}

// Handle executes the create stock command. At most one entry may
// exist per (product, warehouse) pair.
func (h *CreateStockHandler) Handle(cmd CreateStockCommand) (*domain.StockEntry, error) {
	if cmd.ProductID == nil || cmd.WarehouseID == nil || cmd.Quantity == nil || cmd.LowStockThreshold == nil {
		return nil, apperror.Validation("parameters missing")
	}
	if *cmd.Quantity < 0 {
		return nil, apperror.Validation("quantity cannot be negative")
	}
	if *cmd.LowStockThreshold < 0 {
		return nil, apperror.Validation("lowStockThreshold cannot be negative")
	}

	if existing, err := h.stocks.FindByProductAndWarehouse(*cmd.ProductID, *cmd.WarehouseID); err == nil && existing != nil {
		return nil, apperror.Validation("stock entry already exists for this product and warehouse")
	}

	entry := &domain.StockEntry{
		ProductID:         *cmd.ProductID,
		WarehouseID:       *cmd.WarehouseID,
		Quantity:          *cmd.Quantity,
		LowStockThreshold: *cmd.LowStockThreshold,
	}
	if err := h.stocks.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}
