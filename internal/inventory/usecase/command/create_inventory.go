package command

import (
	"context"

	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"github.com/inventoryops/warehouse-api/pkg/database"
)

// CreateInventoryCommand creates a product together with its initial
// stock entry. Pointer fields distinguish absent from zero.
type CreateInventoryCommand struct {
	Name              *string
	Price             *float64
	WarehouseID       *uint
	Quantity          *int
	LowStockThreshold *int
}

// CreateInventoryResult carries both created records
type CreateInventoryResult struct {
	Inventory *domain.Product         `json:"inventory"`
	Stock     *stockdomain.StockEntry `json:"stock"`
}

// CreateInventoryHandler handles the create inventory command
type CreateInventoryHandler struct {
	products   domain.ProductRepository
	stocks     stockdomain.StockRepository
	warehouses warehousedomain.WarehouseRepository
	dispatcher alert.Dispatcher
	tx         database.TxRunner
}

// NewCreateInventoryHandler creates a new create inventory handler
func NewCreateInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
	tx database.TxRunner,
) *CreateInventoryHandler {
	return &CreateInventoryHandler{
		products:   products,
		stocks:     stocks,
		warehouses: warehouses,
		dispatcher: dispatcher,
		tx:         tx,
	}
}

// Handle executes the create inventory command. The product and its
// stock entry are written in one transaction, so a failure leaves no
// orphaned product behind.
func (h *CreateInventoryHandler) Handle(ctx context.Context, cmd CreateInventoryCommand) (*CreateInventoryResult, error) {
	if cmd.Name == nil || cmd.Price == nil || cmd.WarehouseID == nil || cmd.Quantity == nil || cmd.LowStockThreshold == nil {
		return nil, apperror.Validation("parameters missing")
	}
	if *cmd.Name == "" {
		return nil, apperror.Validation("name is required")
	}
	if *cmd.Price < 0 {
		return nil, apperror.Validation("price cannot be negative")
	}
	if *cmd.Quantity < 0 {
		return nil, apperror.Validation("quantity cannot be negative")
	}
	if *cmd.LowStockThreshold < 0 {
		return nil, apperror.Validation("lowStockThreshold cannot be negative")
	}

	product := &domain.Product{
		Name:  *cmd.Name,
		Price: *cmd.Price,
	}
	entry := &stockdomain.StockEntry{
		WarehouseID:       *cmd.WarehouseID,
		Quantity:          *cmd.Quantity,
		LowStockThreshold: *cmd.LowStockThreshold,
	}

	err := h.tx.Transaction(func(tx *gorm.DB) error {
		if err := h.products.CreateInTx(tx, product); err != nil {
			return err
		}
		entry.ProductID = product.ID
		return h.stocks.CreateInTx(tx, entry)
	})
	if err != nil {
		return nil, err
	}

	dispatchIfLow(ctx, h.dispatcher, h.warehouses, product.Name, entry)

	return &CreateInventoryResult{Inventory: product, Stock: entry}, nil
}
