package command

import (
	"context"
	"testing"

	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

func seedProductAndStock(t *testing.T, products *mockProductRepo, stocks *mockStockRepo, quantity, threshold int) (*domain.Product, *stockdomain.StockEntry) {
	t.Helper()
	product := &domain.Product{Name: "Widget", Price: 9.99}
	if err := products.Create(product); err != nil {
		t.Fatal(err)
	}
	entry := &stockdomain.StockEntry{ProductID: product.ID, WarehouseID: 1, Quantity: quantity, LowStockThreshold: threshold}
	if err := stocks.Create(entry); err != nil {
		t.Fatal(err)
	}
	return product, entry
}

func TestUpdateInventory_Success(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	warehouses := newMockWarehouseRepo(&warehousedomain.Warehouse{ID: 1, Name: "Central", Location: "Berlin"})
	dispatcher := &mockDispatcher{}
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewUpdateInventoryHandler(products, stocks, warehouses, dispatcher)

	updated, err := h.Handle(context.Background(), UpdateInventoryCommand{
		ID:                product.ID,
		Name:              ptrStr("Widget v2"),
		Price:             ptrFloat(19.99),
		WarehouseID:       ptrUint(1),
		Quantity:          ptrInt(40),
		LowStockThreshold: ptrInt(10),
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if updated.Name != "Widget v2" || updated.Price != 19.99 {
		t.Errorf("product not updated: %+v", updated)
	}
	if len(dispatcher.alerts) != 0 {
		t.Errorf("expected no alert for healthy stock, got %d", len(dispatcher.alerts))
	}
}

func TestUpdateInventory_DropBelowThresholdAlertsOnce(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	warehouses := newMockWarehouseRepo(&warehousedomain.Warehouse{ID: 1, Name: "Central", Location: "Berlin"})
	dispatcher := &mockDispatcher{}
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewUpdateInventoryHandler(products, stocks, warehouses, dispatcher)

	_, err := h.Handle(context.Background(), UpdateInventoryCommand{
		ID:                product.ID,
		Name:              ptrStr("Widget"),
		Price:             ptrFloat(9.99),
		WarehouseID:       ptrUint(1),
		Quantity:          ptrInt(3),
		LowStockThreshold: ptrInt(10),
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(dispatcher.alerts) != 1 {
		t.Fatalf("expected exactly one alert, got %d", len(dispatcher.alerts))
	}
	if dispatcher.alerts[0].Quantity != 3 || dispatcher.alerts[0].Threshold != 10 {
		t.Errorf("unexpected alert contents: %+v", dispatcher.alerts[0])
	}
}

func TestUpdateInventory_QuantityWithoutWarehouse(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewUpdateInventoryHandler(products, stocks, newMockWarehouseRepo(), &mockDispatcher{})

	_, err := h.Handle(context.Background(), UpdateInventoryCommand{
		ID:       product.ID,
		Name:     ptrStr("Widget"),
		Price:    ptrFloat(9.99),
		Quantity: ptrInt(3),
	})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestUpdateInventory_QuantityWithoutThreshold(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewUpdateInventoryHandler(products, stocks, newMockWarehouseRepo(), &mockDispatcher{})

	_, err := h.Handle(context.Background(), UpdateInventoryCommand{
		ID:          product.ID,
		Name:        ptrStr("Widget"),
		Price:       ptrFloat(9.99),
		WarehouseID: ptrUint(1),
		Quantity:    ptrInt(3),
	})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestUpdateInventory_MissingNameOrPrice(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewUpdateInventoryHandler(products, stocks, newMockWarehouseRepo(), &mockDispatcher{})

	if _, err := h.Handle(context.Background(), UpdateInventoryCommand{ID: product.ID, Name: ptrStr("W")}); !apperror.IsValidation(err) {
		t.Errorf("expected validation error without price, got: %v", err)
	}
}

func TestUpdateInventory_ProductNotFound(t *testing.T) {
	h := NewUpdateInventoryHandler(newMockProductRepo(), newMockStockRepo(), newMockWarehouseRepo(), &mockDispatcher{})

	_, err := h.Handle(context.Background(), UpdateInventoryCommand{
		ID:    99,
		Name:  ptrStr("Widget"),
		Price: ptrFloat(9.99),
	})
	if !apperror.IsNotFound(err) {
		t.Errorf("expected not found error, got: %v", err)
	}
}

func TestEditInventory_NameOnly(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	dispatcher := &mockDispatcher{}
	product, entry := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewEditInventoryHandler(products, stocks, newMockWarehouseRepo(), dispatcher)

	updated, err := h.Handle(context.Background(), EditInventoryCommand{
		ID:   product.ID,
		Name: ptrStr("Renamed"),
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if updated.Name != "Renamed" {
		t.Errorf("expected renamed product, got %q", updated.Name)
	}
	if updated.Price != 9.99 {
		t.Errorf("price must be untouched, got %v", updated.Price)
	}

	// Stock untouched, no alert
	current, _ := stocks.FindByID(entry.ID)
	if current.Quantity != 50 {
		t.Errorf("stock must be untouched, got quantity %d", current.Quantity)
	}
	if len(dispatcher.alerts) != 0 {
		t.Errorf("expected no alert, got %d", len(dispatcher.alerts))
	}
}

func TestEditInventory_StockInvariantStillApplies(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	product, _ := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewEditInventoryHandler(products, stocks, newMockWarehouseRepo(), &mockDispatcher{})

	_, err := h.Handle(context.Background(), EditInventoryCommand{
		ID:       product.ID,
		Quantity: ptrInt(3),
	})
	if !apperror.IsValidation(err) {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestEditInventory_StockUpdateAlerts(t *testing.T) {
	products := newMockProductRepo()
	stocks := newMockStockRepo()
	warehouses := newMockWarehouseRepo(&warehousedomain.Warehouse{ID: 1, Name: "Central", Location: "Berlin"})
	dispatcher := &mockDispatcher{}
	product, entry := seedProductAndStock(t, products, stocks, 50, 10)

	h := NewEditInventoryHandler(products, stocks, warehouses, dispatcher)

	_, err := h.Handle(context.Background(), EditInventoryCommand{
		ID:                product.ID,
		WarehouseID:       ptrUint(1),
		Quantity:          ptrInt(2),
		LowStockThreshold: ptrInt(10),
	})
	if err != nil {
		t.Fatalf("expected success, got error: %v", err)
	}
	if len(dispatcher.alerts) != 1 {
		t.Fatalf("expected one alert, got %d", len(dispatcher.alerts))
	}

	current, _ := stocks.FindByID(entry.ID)
	if current.Quantity != 2 {
		t.Errorf("expected quantity 2, got %d", current.Quantity)
	}
}
