package command

import (
	"context"

	"github.com/inventoryops/warehouse-api/internal/alert"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// dispatchIfLow evaluates the low-stock predicate after a committed
// stock write and dispatches at most one alert. Dispatch failures are
// logged and swallowed: a failed alert must not fail the update that
// triggered it.
func dispatchIfLow(
	ctx context.Context,
	dispatcher alert.Dispatcher,
	warehouses warehousedomain.WarehouseRepository,
	productName string,
	entry *stockdomain.StockEntry,
) {
	if dispatcher == nil || !entry.IsLow() {
		return
	}

	warehouseName := "Unknown"
	warehouseLocation := "Unknown"
	if warehouse, err := warehouses.FindByID(entry.WarehouseID); err == nil {
		warehouseName = warehouse.Name
		warehouseLocation = warehouse.Location
	} else {
		logger.Warn(ctx).
			Err(err).
			Uint("warehouse_id", entry.WarehouseID).
			Msg("Could not resolve warehouse for low stock alert")
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
			Str("product", productName).
			Int("quantity", entry.Quantity).
			Int("threshold", entry.LowStockThreshold).
			Msg("Failed to dispatch low stock alert")
		return
	}

	logger.Info(ctx).
		Str("product", productName).
		Int("quantity", entry.Quantity).
		Int("threshold", entry.LowStockThreshold).
		Msg("Low stock alert dispatched")
}
