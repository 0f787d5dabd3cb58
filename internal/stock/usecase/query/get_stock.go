package query

import (
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// GetStockQuery retrieves a stock entry by ID
type GetStockQuery struct {
	ID uint
}

// GetStockHandler handles the get stock query
type GetStockHandler struct {
	stocks domain.StockRepository
}

// NewGetStockHandler creates a new get stock handler
func NewGetStockHandler(stocks domain.StockRepository) *GetStockHandler {
	return &GetStockHandler{stocks: stocks}
}

// Handle executes the get stock query
func (h *GetStockHandler) Handle(q GetStockQuery) (*domain.StockEntry, error) {
	if q.ID == 0 {
		return nil, apperror.Validation("id is required")
	}
	return h.stocks.FindByID(q.ID)
}
