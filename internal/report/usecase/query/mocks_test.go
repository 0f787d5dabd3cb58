package query

import (
	"time"

	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
	"gorm.io/gorm"
)

type mockStockRepo struct {
	entries []stockdomain.StockEntry
	err     error
}

func (m *mockStockRepo) Create(entry *stockdomain.StockEntry) error { return m.err }

func (m *mockStockRepo) CreateInTx(tx *gorm.DB, entry *stockdomain.StockEntry) error {
	return m.err
}

func (m *mockStockRepo) FindByID(id uint) (*stockdomain.StockEntry, error) {
	for i := range m.entries {
		if m.entries[i].ID == id {
			return &m.entries[i], nil
		}
	}
	return nil, apperror.NotFound("stock entry not found")
}

func (m *mockStockRepo) FindByProductAndWarehouse(productID, warehouseID uint) (*stockdomain.StockEntry, error) {
	return nil, apperror.NotFound("stock entry not found")
}

func (m *mockStockRepo) FindByProductID(productID uint) ([]stockdomain.StockEntry, error) {
	return nil, m.err
}

func (m *mockStockRepo) FindAll(limit, offset int) ([]stockdomain.StockEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockStockRepo) FindCreatedBetween(start, end time.Time) ([]stockdomain.StockEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var filtered []stockdomain.StockEntry
	for _, entry := range m.entries {
		if !entry.CreatedAt.Before(start) && !entry.CreatedAt.After(end) {
			filtered = append(filtered, entry)
		}
	}
	return filtered, nil
}

func (m *mockStockRepo) Update(entry *stockdomain.StockEntry) error { return m.err }
func (m *mockStockRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return m.err
}
func (m *mockStockRepo) Delete(id uint) error { return m.err }

type mockProductRepo struct {
	products []inventorydomain.Product
	err      error
}

func (m *mockProductRepo) Create(product *inventorydomain.Product) error { return m.err }
func (m *mockProductRepo) CreateInTx(tx *gorm.DB, product *inventorydomain.Product) error {
	return m.err
}

func (m *mockProductRepo) FindByID(id uint) (*inventorydomain.Product, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i], nil
		}
	}
	return nil, apperror.NotFound("product not found")
}

func (m *mockProductRepo) FindAll(limit, offset int) ([]inventorydomain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *mockProductRepo) Update(product *inventorydomain.Product) error { return m.err }
func (m *mockProductRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return m.err
}
func (m *mockProductRepo) Delete(id uint) error { return m.err }

func (m *mockProductRepo) Count() (int64, error) {
	return int64(len(m.products)), m.err
}

type mockWarehouseRepo struct {
	warehouses []warehousedomain.Warehouse
	err        error
}

func (m *mockWarehouseRepo) Create(warehouse *warehousedomain.Warehouse) error { return m.err }

func (m *mockWarehouseRepo) FindByID(id uint) (*warehousedomain.Warehouse, error) {
	for i := range m.warehouses {
		if m.warehouses[i].ID == id {
			return &m.warehouses[i], nil
		}
	}
	return nil, apperror.NotFound("warehouse not found")
}

func (m *mockWarehouseRepo) FindAll(limit, offset int) ([]warehousedomain.Warehouse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.warehouses, nil
}

func (m *mockWarehouseRepo) Update(warehouse *warehousedomain.Warehouse) error { return m.err }
func (m *mockWarehouseRepo) UpdateFields(id uint, fields map[string]interface{}) error {
	return m.err
}
func (m *mockWarehouseRepo) Delete(id uint) error { return m.err }
