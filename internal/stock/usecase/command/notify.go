package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// notifyIfLow dispatches at most one low-stock alert after a committed
// stock write. Product and warehouse references that cannot be
// resolved degrade to placeholders; dispatch failures are logged and
// swallowed.
func notifyIfLow(
	ctx context.Context,
	dispatcher alert.Dispatcher,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	entry *domain.StockEntry,
) {
	if dispatcher == nil || !entry.IsLow() {
		return
	}

	productName := "Unknown"
	if product, err := products.FindByID(entry.ProductID); err == nil {
		productName = product.Name
	}

	warehouseName := "Unknown"
	warehouseLocation := "Unknown"
	if warehouse, err := warehouses.FindByID(entry.WarehouseID); err == nil {
		warehouseName = warehouse.Name
		warehouseLocation = warehouse.Location
	}

	a := alert.LowStockAlert{
		ProductName:       productName,
		WarehouseName:     warehouseName,
		WarehouseLocation: warehouseLocation,
		Quantity:          entry.Quantity,
		Threshold:         entry.LowStockThreshold,
	}

	if err := dispatcher.DispatchLowStock(ctx, a); err != nil {
		logger.Error(ctx).
			Err(err).
			Uint("product_id", entry.ProductID).
			Uint("warehouse_id", entry.WarehouseID).
			Msg("Failed to dispatch low stock alert")
		return
	}

	logger.Info(ctx).
		Uint("product_id", entry.ProductID).
		Uint("warehouse_id", entry.WarehouseID).
		Int("quantity", entry.Quantity).
		Msg("Low stock alert dispatched")
}
