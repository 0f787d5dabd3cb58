package query

import (
	"time"

	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/report/domain"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	"github.com/inventoryops/warehouse-api/pkg/apperror"
)

// BuildReportQuery builds the stock status report. The creation time
// filter applies only when both bounds are supplied.
type BuildReportQuery struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// BuildReportHandler joins stock entries with products and warehouses
// into flat report rows. Read-only: it never filters on or alerts
// about low stock.
type BuildReportHandler struct {
	stocks     stockdomain.StockRepository
	products   inventorydomain.ProductRepository
	warehouses warehousedomain.WarehouseRepository
}

// NewBuildReportHandler creates a new build report handler
func NewBuildReportHandler(
	stocks stockdomain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
) *BuildReportHandler {
	return &BuildReportHandler{
		stocks:     stocks,
		products:   products,
		warehouses: warehouses,
	}
}

// Handle executes the build report query
func (h *BuildReportHandler) Handle(q BuildReportQuery) ([]domain.Row, error) {
	if (q.StartDate == nil) != (q.EndDate == nil) {
		return nil, apperror.Validation("startDate and endDate must be supplied together")
	}
	if q.StartDate != nil && q.EndDate.Before(*q.StartDate) {
		return nil, apperror.Validation("endDate must not be before startDate")
	}

	var entries []stockdomain.StockEntry
	var err error
	if q.StartDate != nil {
		entries, err = h.stocks.FindCreatedBetween(*q.StartDate, *q.EndDate)
	} else {
		entries, err = h.stocks.FindAll(0, 0)
	}
	if err != nil {
		return nil, err
	}

	products, err := h.products.FindAll(0, 0)
	if err != nil {
		return nil, err
	}
	warehouses, err := h.warehouses.FindAll(0, 0)
	if err != nil {
		return nil, err
	}

	productsByID := make(map[uint]*inventorydomain.Product, len(products))
	for i := range products {
		productsByID[products[i].ID] = &products[i]
	}
	warehousesByID := make(map[uint]*warehousedomain.Warehouse, len(warehouses))
	for i := range warehouses {
		warehousesByID[warehouses[i].ID] = &warehouses[i]
	}

	rows := make([]domain.Row, 0, len(entries))
	for _, entry := range entries {
		row := domain.Row{
			Name:              domain.UnknownName,
			Price:             domain.UnknownPrice,
			Warehouse:         domain.UnknownName,
			Location:          domain.UnknownName,
			Quantity:          entry.Quantity,
			LowStockThreshold: entry.LowStockThreshold,
		}
		if product, ok := productsByID[entry.ProductID]; ok {
			row.Name = product.Name
			row.Price = product.Price
		}
		if warehouse, ok := warehousesByID[entry.WarehouseID]; ok {
			row.Warehouse = warehouse.Name
			row.Location = warehouse.Location
		}
		rows = append(rows, row)
	}

	return rows, nil
}
