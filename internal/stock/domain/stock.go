package domain

import (
	"time"

	"gorm.io/gorm"
)

// StockEntry is the per-warehouse quantity/threshold record for a
// product. At most one entry exists per (product, warehouse) pair.
type StockEntry struct {
	ID                uint           `json:"id" gorm:"primaryKey"`
	ProductID         uint           `json:"product_id" gorm:"not null;uniqueIndex:idx_product_warehouse"`
	WarehouseID       uint           `json:"warehouse_id" gorm:"not null;uniqueIndex:idx_product_warehouse"`
	Quantity          int            `json:"quantity" gorm:"not null;default:0"`
	LowStockThreshold int            `json:"lowStockThreshold" gorm:"not null;default:0"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (StockEntry) TableName() string {
	return "stock_entries"
}

// IsLow reports the low-stock condition. A quantity exactly at the
// threshold counts as low; a zero threshold alerts only when the
// stock is fully exhausted.
func (s *StockEntry) IsLow() bool {
	return s.Quantity <= s.LowStockThreshold
}

// StockRepository defines the contract for stock entry data access
type StockRepository interface {
	Create(entry *StockEntry) error
	CreateInTx(tx *gorm.DB, entry *StockEntry) error
	FindByID(id uint) (*StockEntry, error)
	FindByProductAndWarehouse(productID, warehouseID uint) (*StockEntry, error)
	FindByProductID(productID uint) ([]StockEntry, error)
	FindAll(limit, offset int) ([]StockEntry, error)
	FindCreatedBetween(start, end time.Time) ([]StockEntry, error)
	Update(entry *StockEntry) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}
