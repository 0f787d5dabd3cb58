//go:build wireinject
// +build wireinject

package inventory

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/alert"
	"github.com/inventoryops/warehouse-api/internal/inventory/delivery/http"
	"github.com/inventoryops/warehouse-api/internal/inventory/domain"
	"github.com/inventoryops/warehouse-api/internal/inventory/repository"
	"github.com/inventoryops/warehouse-api/internal/inventory/usecase/command"
	"github.com/inventoryops/warehouse-api/internal/inventory/usecase/query"
	stockdomain "github.com/inventoryops/warehouse-api/internal/stock/domain"
	stockrepo "github.com/inventoryops/warehouse-api/internal/stock/repository"
	warehousedomain "github.com/inventoryops/warehouse-api/internal/warehouse/domain"
	warehouserepo "github.com/inventoryops/warehouse-api/internal/warehouse/repository"
	"github.com/inventoryops/warehouse-api/pkg/auth"
	"github.com/inventoryops/warehouse-api/pkg/database"
)

// ProvideProductRepository provides the product repository
func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepositoryWithTracing(db)
}

// ProvideStockRepository provides the stock repository
func ProvideStockRepository(db *gorm.DB) stockdomain.StockRepository {
	return stockrepo.NewGormStockRepositoryWithTracing(db)
}

// ProvideWarehouseRepository provides the warehouse repository
func ProvideWarehouseRepository(db *gorm.DB) warehousedomain.WarehouseRepository {
	return warehouserepo.NewGormWarehouseRepositoryWithTracing(db)
}

// ProvideTxRunner provides the transaction runner
func ProvideTxRunner(db *gorm.DB) database.TxRunner {
	return db
}

// Command Handlers Providers
func ProvideCreateInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
	tx database.TxRunner,
) *command.CreateInventoryHandler {
	return command.NewCreateInventoryHandler(products, stocks, warehouses, dispatcher, tx)
}

func ProvideUpdateInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *command.UpdateInventoryHandler {
	return command.NewUpdateInventoryHandler(products, stocks, warehouses, dispatcher)
}

func ProvideEditInventoryHandler(
	products domain.ProductRepository,
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
	dispatcher alert.Dispatcher,
) *command.EditInventoryHandler {
	return command.NewEditInventoryHandler(products, stocks, warehouses, dispatcher)
}

func ProvideDeleteInventoryHandler(products domain.ProductRepository) *command.DeleteInventoryHandler {
	return command.NewDeleteInventoryHandler(products)
}

// Query Handlers Providers
func ProvideGetInventoryHandler(products domain.ProductRepository) *query.GetInventoryHandler {
	return query.NewGetInventoryHandler(products)
}

func ProvideListInventoryHandler(products domain.ProductRepository) *query.ListInventoryHandler {
	return query.NewListInventoryHandler(products)
}

func ProvideListWarehousesHandler(
	stocks stockdomain.StockRepository,
	warehouses warehousedomain.WarehouseRepository,
) *query.ListWarehousesHandler {
	return query.NewListWarehousesHandler(stocks, warehouses)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideProductRepository,
	ProvideStockRepository,
	ProvideWarehouseRepository,
	ProvideTxRunner,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateInventoryHandler,
	ProvideUpdateInventoryHandler,
	ProvideEditInventoryHandler,
	ProvideDeleteInventoryHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetInventoryHandler,
	ProvideListInventoryHandler,
	ProvideListWarehousesHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, dispatcher alert.Dispatcher, tokens *auth.TokenManager) (*http.InventoryHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewInventoryHandlerWithDI,
	)
	return nil, nil
}
