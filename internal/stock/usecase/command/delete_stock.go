package command

import (
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// DeleteStockCommand deletes a stock entry by ID
type DeleteStockCommand struct {
	ID uint
}

// DeleteStockHandler handles the delete stock command
type DeleteStockHandler struct {
	stocks domain.StockRepository
}

// NewDeleteStockHandler creates a new delete stock handler
func NewDeleteStockHandler(stocks domain.StockRepository) *DeleteStockHandler {
	return &DeleteStockHandler{stocks: stocks}
}

// Handle executes the delete stock command
func (h *DeleteStockHandler) Handle(cmd DeleteStockCommand) error {
	if cmd.ID == 0 {
		return apperror.Validation("id is required")
	}
	return h.stocks.Delete(cmd.ID)
}
