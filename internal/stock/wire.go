//go:build wireinject
// +build wireinject

package stock

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/alert"
	inventorydomain "github.com/inventoryops/warehouse-api/internal/inventory/domain"
	inventoryrepo "github.com/inventoryops/warehouse-api/internal/inventory/repository"
	"github.com/inventoryops/warehouse-api/internal/stock/delivery/http"
	"github.com/inventoryops/warehouse-api/internal/stock/domain"
	"github.com/inventoryops/warehouse-api/internal/stock/repository"
	"github.com/inventoryops/warehouse-api/internal/stock/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/stock/usecase/query"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	warehouserepo "github.com/inventoryops/warehouse-api/internal/warehouse/repository"
	"github.com/inventoryops/warehouse-api/pkg/auth"
)

// ProvideStockRepository provides the stock repository
func ProvideStockRepository(db *gorm.DB) domain.StockRepository {
	return repository.NewGormStockRepositoryWithTracing(db)
}

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) inventorydomain.ProductRepository {
	return inventoryrepo.NewGormProductRepositoryWithTracing(db)
}

// ProvideWarehouseRepository provides the warehouse repository
func ProvideWarehouseRepository(db *gorm.DB) warehousedomain.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepositoryWithTracing(db)
}

// Command Handlers Providers
func ProvideCreateStockHandler(stocks domain.StockRepository) *command.CreateStockHandler {
	return command.NewCreateStockHandler(stocks)
}

func ProvideUpdateStockHandler(
	stocks domain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *command.UpdateStockHandler {
	return command.NewUpdateStockHandler(stocks, products, warehouses, dispatcher)
}

func ProvideEditStockHandler(
	stocks domain.StockRepository,
	products inventorydomain.ProductRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *command.EditStockHandler {
	return command.NewEditStockHandler(stocks, products, warehouses, dispatcher)
}

func ProvideDeleteStockHandler(stocks domain.StockRepository) *command.DeleteStockHandler {
	return command.NewDeleteStockHandler(stocks)
}

// Query Handlers Providers
func ProvideGetStockHandler(stocks domain.StockRepository) *query.GetStockHandler {
	return query.NewGetStockHandler(stocks)
}

func ProvideListStockHandler(stocks domain.StockRepository) *query.ListStockHandler {
	return query.NewListStockHandler(stocks)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideStockRepository,
	ProvideProductRepository,
	ProvideWarehouseRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateStockHandler,
	ProvideUpdateStockHandler,
	ProvideEditStockHandler,
	ProvideDeleteStockHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetStockHandler,
	ProvideListStockHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, dispatcher alert.Dispatcher, tokens *auth.TokenManager) (*http.StockHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewStockHandlerWithDI,
	)
	return nil, nil
}
