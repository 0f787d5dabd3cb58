package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GORM stock repository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// Create inserts a new stock entry into the database
func (r *GormStockRepository) Create(entry *domain.StockEntry) error {
	return r.CreateInTx(r.db, entry)
}

// CreateInTx inserts a new stock entry using the given transaction handle
func (r *GormStockRepository) CreateInTx(tx *gorm.DB, entry *domain.StockEntry) error {
	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create stock entry: %w", err)
	}
	return nil
}

// FindByID retrieves a stock entry by ID
func (r *GormStockRepository) FindByID(id uint) (*domain.StockEntry, error) {
	var entry domain.StockEntry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("stock entry not found")
		}
		return nil, fmt.Errorf("failed to find stock entry: %w", err)
	}
	return &entry, nil
}

// FindByProductAndWarehouse retrieves the stock entry for a
// (product, warehouse) pair
func (r *GormStockRepository) FindByProductAndWarehouse(productID, warehouseID uint) (*domain.StockEntry, error) {
	var entry domain.StockEntry
	err := r.db.Where("product_id = ? AND warehouse_id = ?", productID, warehouseID).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("stock entry not found")
		}
		return nil, fmt.Errorf("failed to find stock entry: %w", err)
	}
	return &entry, nil
}

// FindByProductID retrieves all stock entries for a product
func (r *GormStockRepository) FindByProductID(productID uint) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	if err := r.db.Where("product_id = ?", productID).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find stock entries: %w", err)
	}
	return entries, nil
}

// FindAll retrieves all stock entries with pagination
func (r *GormStockRepository) FindAll(limit, offset int) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to find stock entries: %w", err)
	}
	return entries, nil
}

// FindCreatedBetween retrieves stock entries created inside the range
func (r *GormStockRepository) FindCreatedBetween(start, end time.Time) ([]domain.StockEntry, error) {
	var entries []domain.StockEntry
	err := r.db.Where("created_at >= ? AND created_at <= ?", start, end).Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find stock entries: %w", err)
	}
	return entries, nil
}

// Update saves a full stock entry record
func (r *GormStockRepository) Update(entry *domain.StockEntry) error {
	if err := r.db.Save(entry).Error; err != nil {
		return fmt.Errorf("failed to update stock entry: %w", err)
	}
	return nil
}

// UpdateFields applies a partial patch without clobbering unspecified fields
func (r *GormStockRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&domain.StockEntry{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update stock entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("stock entry not found")
	}
	return nil
}

// Delete soft deletes a stock entry
func (r *GormStockRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.StockEntry{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete stock entry: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("stock entry not found")
	}
	return nil
}
