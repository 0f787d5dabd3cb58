package repository

import (
	"testing"

	"github.com/inventoryops/warehouse-api/internal/stock/domain"
)

var (
	_ domain.StockRepository = (*GormStockRepository)(nil)
	_ domain.StockRepository = (*GormStockRepositoryWithTracing)(nil)
)

func TestNewGormStockRepositoryWithTracing(t *testing.T) {
	r := NewGormStockRepositoryWithTracing(nil)
	if r.GormStockRepository == nil {
		t.Fatal("expected embedded repository to be set")
	}
}
