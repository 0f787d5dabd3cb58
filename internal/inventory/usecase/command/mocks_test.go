package command

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// Mock ProductRepository
type mockProductRepo struct {
	products map[uint]*domain.Product
	nextID   uint
	err      error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]*domain.Product), nextID: 1}
}

func (m *mockProductRepo) Create(product *domain.Product) error {
	return m.CreateInTx(nil, product)
}

func (m *mockProductRepo) CreateInTx(_ *gorm.DB, product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	product.ID = m.nextID
	m.nextID++
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *mockProductRepo) FindByID(id uint) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product, ok := m.products[id]
	if !ok {
		return nil, apperror.NotFound("product not found")
	}
	cp := *product
	return &cp, nil
}

func (m *mockProductRepo) FindAll(limit, offset int) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockProductRepo) Update(product *domain.Product) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.products[product.ID]; !ok {
		return apperror.NotFound("product not found")
	}
	cp := *product
	m.products[product.ID] = &cp
	return nil
}

func (m *mockProductRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	product, ok := m.products[id]
	if !ok {
		return apperror.NotFound("product not found")
	}
	if name, ok := fields["name"].(string); ok {
		product.Name = name
	}
	if price, ok := fields["price"].(float64); ok {
		product.Price = price
	}
	return nil
}

func (m *mockProductRepo) Delete(id uint) error {
	if _, ok := m.products[id]; !ok {
		return apperror.NotFound("product not found")
	}
	delete(m.products, id)
	return nil
}

func (m *mockProductRepo) Count() (int64, error) {
	return int64(len(m.products)), m.err
}

// Mock StockRepository
type mockStockRepo struct {
	entries map[uint]*stockdomain.StockEntry
	nextID  uint
	err     error
}

func newMockStockRepo() *mockStockRepo {
	return &mockStockRepo{entries: make(map[uint]*stockdomain.StockEntry), nextID: 1}
}

func (m *mockStockRepo) Create(entry *stockdomain.StockEntry) error {
	return m.CreateInTx(nil, entry)
}

func (m *mockStockRepo) CreateInTx(_ *gorm.DB, entry *stockdomain.StockEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = m.nextID
	m.nextID++
	cp := *entry
	m.entries[entry.ID] = &cp
	return nil
}

func (m *mockStockRepo) FindByID(id uint) (*stockdomain.StockEntry, error) {
	entry, ok := m.entries[id]
	if !ok {
		return nil, apperror.NotFound("stock entry not found")
	}
	cp := *entry
	return &cp, nil
}

func (m *mockStockRepo) FindByProductAndWarehouse(productID, warehouseID uint) (*stockdomain.StockEntry, error) {
	for _, entry := range m.entries {
		if entry.ProductID == productID && entry.WarehouseID == warehouseID {
			cp := *entry
			return &cp, nil
		}
	}
	return nil, apperror.NotFound("stock entry not found")
}

func (m *mockStockRepo) FindByProductID(productID uint) ([]stockdomain.StockEntry, error) {
	var out []stockdomain.StockEntry
	for _, entry := range m.entries {
		if entry.ProductID == productID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (m *mockStockRepo) FindAll(limit, offset int) ([]stockdomain.StockEntry, error) {
	out := make([]stockdomain.StockEntry, 0, len(m.entries))
	for _, entry := range m.entries {
		out = append(out, *entry)
	}
	return out, nil
}

func (m *mockStockRepo) FindCreatedBetween(start, end time.Time) ([]stockdomain.StockEntry, error) {
	return m.FindAll(0, 0)
}

func (m *mockStockRepo) Update(entry *stockdomain.StockEntry) error {
	if m.err != nil {
		return m.err
	}
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

func (m *mockWarehouseRepo) Create(warehouse *warehousedomain.Warehouse) error {
	m.warehouses[warehouse.ID] = warehouse
	return nil
}

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

// Mock TxRunner. The callback runs with a nil tx handle; the mock
// repositories ignore it.
type mockTxRunner struct {
	err error
}

func (m *mockTxRunner) Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error {
	if m.err != nil {
		return m.err
	}
	return fc(nil)
}

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

func ptrStr(s string) *string     { return &s }
func ptrFloat(f float64) *float64 { return &f }
func ptrUint(u uint) *uint        { return &u }
func ptrInt(i int) *int           { return &i }
