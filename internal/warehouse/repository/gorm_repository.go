package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// GormWarehouseRepository implements WarehouseRepository using GORM
type GormWarehouseRepository struct {
	db *gorm.DB
}

// NewGormWarehouseRepository creates a new GORM warehouse repository
func NewGormWarehouseRepository(db *gorm.DB) *GormWarehouseRepository {
	return &GormWarehouseRepository{db: db}
}

// Create inserts a new warehouse into the database
func (r *GormWarehouseRepository) Create(warehouse *domain.Warehouse) error {
	if err := r.db.Create(warehouse).Error; err != nil {
		return fmt.Errorf("failed to create warehouse: %w", err)
	}
	return nil
}

// FindByID retrieves a warehouse by ID
func (r *GormWarehouseRepository) FindByID(id uint) (*domain.Warehouse, error) {
	var warehouse domain.Warehouse
	if err := r.db.First(&warehouse, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("warehouse not found")
		}
		return nil, fmt.Errorf("failed to find warehouse: %w", err)
	}
	return &warehouse, nil
}

// FindAll retrieves all warehouses with pagination
func (r *GormWarehouseRepository) FindAll(limit, offset int) ([]domain.Warehouse, error) {
	var warehouses []domain.Warehouse
	query := r.db.Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&warehouses).Error; err != nil {
		return nil, fmt.Errorf("failed to find warehouses: %w", err)
	}
	return warehouses, nil
}

// Update saves a full warehouse record
func (r *GormWarehouseRepository) Update(warehouse *domain.Warehouse) error {
	if err := r.db.Save(warehouse).Error; err != nil {
		return fmt.Errorf("failed to update warehouse: %w", err)
	}
	return nil
}

// UpdateFields applies a partial patch without clobbering unspecified fields
func (r *GormWarehouseRepository) UpdateFields(id uint, fields map[string]interface{}) error {
	result := r.db.Model(&domain.Warehouse{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return fmt.Errorf("failed to update warehouse: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("warehouse not found")
	}
	return nil
}

// Delete soft deletes a warehouse
func (r *GormWarehouseRepository) Delete(id uint) error {
	result := r.db.Delete(&domain.Warehouse{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete warehouse: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperror.NotFound("warehouse not found")
	}
	return nil
}
