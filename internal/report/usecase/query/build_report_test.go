package query

import (
	"testing"
	"time"

	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/report/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

func TestBuildReport_JoinsEntries(t *testing.T) {
	stocks := &mockStockRepo{entries: []stockdomain.StockEntry{
		{ID: 1, ProductID: 10, WarehouseID: 20, Quantity: 7, LowStockThreshold: 3},
	}}
	products := &mockProductRepo{products: []inventorydomain.Product{
		{ID: 10, Name: "Widget", Price: 12.5},
	}}
	warehouses := &mockWarehouseRepo{warehouses: []warehousedomain.Warehouse{
		{ID: 20, Name: "East", Location: "Hamburg"},
	}}

	handler := NewBuildReportHandler(stocks, products, warehouses)
	rows, err := handler.Handle(BuildReportQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	want := domain.Row{
		Name:              "Widget",
		Price:             12.5,
		Warehouse:         "East",
		Location:          "Hamburg",
		Quantity:          7,
		LowStockThreshold: 3,
	}
	if rows[0] != want {
		t.Errorf("row = %+v, want %+v", rows[0], want)
	}
}

func TestBuildReport_DanglingReferences(t *testing.T) {
	stocks := &mockStockRepo{entries: []stockdomain.StockEntry{
		{ID: 1, ProductID: 99, WarehouseID: 98, Quantity: 2, LowStockThreshold: 5},
	}}

	handler := NewBuildReportHandler(stocks, &mockProductRepo{}, &mockWarehouseRepo{})
	rows, err := handler.Handle(BuildReportQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}

	row := rows[0]
	if row.Name != domain.UnknownName {
		t.Errorf("Name = %q, want %q", row.Name, domain.UnknownName)
	}
	if row.Price != domain.UnknownPrice {
		t.Errorf("Price = %v, want %v", row.Price, domain.UnknownPrice)
	}
	if row.Warehouse != domain.UnknownName || row.Location != domain.UnknownName {
		t.Errorf("warehouse fields = %q/%q, want %q", row.Warehouse, row.Location, domain.UnknownName)
	}
	if row.Quantity != 2 || row.LowStockThreshold != 5 {
		t.Errorf("levels = %d/%d, want 2/5", row.Quantity, row.LowStockThreshold)
	}
}

func TestBuildReport_EmptyInventory(t *testing.T) {
	handler := NewBuildReportHandler(&mockStockRepo{}, &mockProductRepo{}, &mockWarehouseRepo{})
	rows, err := handler.Handle(BuildReportQuery{})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if rows == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(rows) != 0 {
		t.Errorf("expected 0 rows, got %d", len(rows))
	}
}

func TestBuildReport_DateFilter(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stocks := &mockStockRepo{entries: []stockdomain.StockEntry{
		{ID: 1, ProductID: 10, WarehouseID: 20, Quantity: 5, CreatedAt: base},
		{ID: 2, ProductID: 10, WarehouseID: 21, Quantity: 9, CreatedAt: base.AddDate(0, 1, 0)},
	}}
	products := &mockProductRepo{products: []inventorydomain.Product{{ID: 10, Name: "Widget", Price: 1}}}
	warehouses := &mockWarehouseRepo{warehouses: []warehousedomain.Warehouse{
		{ID: 20, Name: "East", Location: "Hamburg"},
		{ID: 21, Name: "West", Location: "Cologne"},
	}}

	handler := NewBuildReportHandler(stocks, products, warehouses)

	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 1)
	rows, err := handler.Handle(BuildReportQuery{StartDate: &start, EndDate: &end})
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row in range, got %d", len(rows))
	}
	if rows[0].Warehouse != "East" {
		t.Errorf("Warehouse = %q, want East", rows[0].Warehouse)
	}
}

func TestBuildReport_DateValidation(t *testing.T) {
	handler := NewBuildReportHandler(&mockStockRepo{}, &mockProductRepo{}, &mockWarehouseRepo{})
	now := time.Now()
	earlier := now.Add(-time.Hour)

	t.Run("start without end", func(t *testing.T) {
		_, err := handler.Handle(BuildReportQuery{StartDate: &now})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("end without start", func(t *testing.T) {
		_, err := handler.Handle(BuildReportQuery{EndDate: &now})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := handler.Handle(BuildReportQuery{StartDate: &now, EndDate: &earlier})
		if !apperror.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}
