package query

import (
	"fmt"

	"github.com/inventoryops/warehouse-api/internal/stock/domain"
)

// ListStockQuery lists stock entries with pagination
type ListStockQuery struct {
	Limit  int
	Offset int
}

// ListStockHandler handles the list stock query
type ListStockHandler struct {
	stocks domain.StockRepository
}

// NewListStockHandler creates a new list stock handler
func NewListStockHandler(stocks domain.StockRepository) *ListStockHandler {
	return &ListStockHandler{stocks: stocks}
}

// Handle executes the list stock query
func (h *ListStockHandler) Handle(q ListStockQuery) ([]domain.StockEntry, error) {
	if q.Limit == 0 {
		q.Limit = 10
	}
	if q.Limit > 100 {
		q.Limit = 100
	}

	entries, err := h.stocks.FindAll(q.Limit, q.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list stock entries: %w", err)
	}
	return entries, nil
}
