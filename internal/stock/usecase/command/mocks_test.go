package command

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// Mock StockRepository
type mockStockRepo struct {
	entries map[uint]*domain.StockEntry
	nextID  uint
}

func newMockStockRepo(entries ...*domain.StockEntry) *mockStockRepo {
	m := &mockStockRepo{entries: make(map[uint]*domain.StockEntry), nextID: 1}
	for _, e := range entries {
		if e.ID == 0 {
			e.ID = m.nextID
		}
		if e.ID >= m.nextID {
			m.nextID = e.ID + 1
		}
		m.entries[e.ID] = e
	}
	return m
}

func (m *mockStockRepo) Create(entry *domain.StockEntry) error {
	return m.CreateInTx(nil, entry)
}

func (m *mockStockRepo) CreateInTx(_ *gorm.DB, entry *domain.StockEntry) error {
	entry.ID = m.nextID
	m.nextID++
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockStockRepo) FindByID(id uint) (*domain.StockEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, apperror.NotFound("stock entry not found")
	}
	cp := *entry
	return &cp, nil
}

func (m *mockStockRepo) FindByProductAndWarehouse(productID, warehouseID uint) (*domain.StockEntry, error) {
	for _, entry := range m.entries {
		if entry.ProductID == productID && entry.WarehouseID == warehouseID {
			cp := *entry
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("stock entry not found")
}

func (m *mockStockRepo) FindByProductID(productID uint) ([]domain.StockEntry, error) {
	var out []domain.StockEntry
	for _, entry := range m.entries {
		if entry.ProductID == productID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (m *mockStockRepo) FindAll(limit, offset int) ([]domain.StockEntry, error) {
	out := make([]domain.StockEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, *entry)
	}
	return out, nil
}

func (m *mockStockRepo) FindCreatedBetween(start, end time.Time) ([]domain.StockEntry, error) {
	return m.FindAll(0, 0)
}

func (m *mockStockRepo) Update(entry *domain.StockEntry) error {
	if _, ok := m.entries[entry.ID]; !ok {
		return apperror.NotFound("stock entry not found")
	}
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockStockRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	entry, ok := m.entries[id]
	if !ok {
		return apperror.NotFound("stock entry not found")
	}
	if q, ok := fields["quantity"].(int); ok {
		entry.Quantity = q
	}
	if th, ok := fields["low_stock_threshold"].(int); ok {
		entry.LowStockThreshold = th
	}
	return nil
}

func (m *mockStockRepo) Delete(id uint) error {
	if _, ok := m.entries[id]; !ok {
		return apperror.NotFound("stock entry not found")
	}
	delete(m.entries, id)
	return nil
}

// Mock ProductRepository
type mockProductRepo struct {
	products map[uint]*inventorydomain.Product
}

func newMockProductRepo(products ...*inventorydomain.Product) *mockProductRepo {
	m := &mockProductRepo{products: make(map[uint]*inventorydomain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepo) Create(product *inventorydomain.Product) error { return nil }

func (m *mockProductRepo) CreateInTx(_ *gorm.DB, product *inventorydomain.Product) error { return nil }

func (m *mockProductRepo) FindByID(id uint) (*inventorydomain.Product, error) {
	product, ok := m.products[id]
	if !ok {
		return nil, apperror.NotFound("product not found")
	}
	return product, nil
}

func (m *mockProductRepo) FindAll(limit, offset int) ([]inventorydomain.Product, error) {
	out := make([]inventorydomain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Update(product *inventorydomain.Product) error { return nil }

func (m *mockProductRepo) UpdateFields(id uint, fields map[string]interface{}) error { return nil }

func (m *mockProductRepo) Delete(id uint) error { return nil }

func (m *mockProductRepo) Count() (int64, error) { return int64(len(m.products)), nil }

// Mock WarehouseRepository
type mockWarehouseRepo struct {
	warehouses map[uint]*warehousedomain.Warehouse
}

func newMockWarehouseRepo(warehouses ...*warehousedomain.Warehouse) *mockWarehouseRepo {
	m := &mockWarehouseRepo{warehouses: make(map[uint]*warehousedomain.Warehouse)}
	for _, w := range warehouses {
		m.warehouses[w.ID] = w
	}
	return m
}

func (m *mockWarehouseRepo) Create(warehouse *warehousedomain.Warehouse) error { return nil }

func (m *mockWarehouseRepo) FindByID(id uint) (*warehousedomain.Warehouse, error) {
	warehouse, ok := m.warehouses[id]
	if !ok {
		return nil, apperror.NotFound("warehouse not found")
	}
	return warehouse, nil
}

func (m *mockWarehouseRepo) FindAll(limit, offset int) ([]warehousedomain.Warehouse, error) {
	out := make([]warehousedomain.Warehouse, 0, len(m.warehouses))
	for _, w := range m.warehouses {
		out = append(out, *w)
	}
	return out, nil
}

func (m *mockWarehouseRepo) Update(warehouse *warehousedomain.Warehouse) error { return nil }

func (m *mockWarehouseRepo) UpdateFields(id uint, fields map[string]interface{}) error { return nil }

func (m *mockWarehouseRepo) Delete(id uint) error { return nil }

// Mock Dispatcher
type mockDispatcher struct {
	alerts []alert.LowStockAlert
	err    error
}

func (m *mockDispatcher) DispatchLowStock(_ context.Context, a alert.LowStockAlert) error {
	if m.err != nil {
		return m.err
	}
	m.alerts = append(m.alerts, a)
	return nil
}

func ptrUint(u uint) *uint { return &u }
func ptrInt(i int) *int    { return &i }
