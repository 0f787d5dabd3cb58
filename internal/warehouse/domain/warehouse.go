package domain

import (
	"time"

	"gorm.io/gorm"
)

// Warehouse represents a storage location managed by a user
type Warehouse struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Location  string         `json:"location" gorm:"not null"`
	ManagerID uint           `json:"manager_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName specifies the table name
func (Warehouse) TableName() string {
	return "warehouses"
}

// WarehouseRepository defines the contract for warehouse data access
type WarehouseRepository interface {
	Create(warehouse *Warehouse) error
	FindByID(id uint) (*Warehouse, error)
	FindAll(limit, offset int) ([]Warehouse, error)
	Update(warehouse *Warehouse) error
	UpdateFields(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}
