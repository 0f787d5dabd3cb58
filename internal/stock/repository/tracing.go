package repository

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/stock/domain"
)

var tracer = otel.Tracer("stock-repository")

// GormStockRepositoryWithTracing wraps GormStockRepository with tracing
type GormStockRepositoryWithTracing struct {
	*GormStockRepository
}

// NewGormStockRepositoryWithTracing creates a new repository with tracing
func NewGormStockRepositoryWithTracing(db *gorm.DB) *GormStockRepositoryWithTracing {
	return &GormStockRepositoryWithTracing{
		GormStockRepository: NewGormStockRepository(db),
	}
}

// Create with tracing
func (r *GormStockRepositoryWithTracing) CreateWithContext(ctx context.Context, entry *domain.StockEntry) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("product.id", int(entry.ProductID)),
			attribute.Int("warehouse.id", int(entry.WarehouseID)),
			attribute.Int("stock.quantity", entry.Quantity),
		),
	)
	defer span.End()

	err := r.GormStockRepository.Create(entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("stock.id", int(entry.ID)))
	return nil
}

// FindByID with tracing
func (r *GormStockRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.StockEntry, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("stock.id", int(id)),
		),
	)
	defer span.End()

	entry, err := r.GormStockRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.quantity", entry.Quantity))
	return entry, nil
}

// FindByProductAndWarehouse with tracing
func (r *GormStockRepositoryWithTracing) FindByProductAndWarehouseWithContext(ctx context.Context, productID, warehouseID uint) (*domain.StockEntry, error) {
	_, span := tracer.Start(ctx, "repository.FindByProductAndWarehouse",
		trace.WithAttributes(
			attribute.Int("product.id", int(productID)),
			attribute.Int("warehouse.id", int(warehouseID)),
		),
	)
	defer span.End()

	entry, err := r.GormStockRepository.FindByProductAndWarehouse(productID, warehouseID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("stock.id", int(entry.ID)))
	return entry, nil
}

// FindAll with tracing
func (r *GormStockRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.StockEntry, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	entries, err := r.GormStockRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(entries)))
	return entries, nil
}

// FindCreatedBetween with tracing
func (r *GormStockRepositoryWithTracing) FindCreatedBetweenWithContext(ctx context.Context, start, end time.Time) ([]domain.StockEntry, error) {
	_, span := tracer.Start(ctx, "repository.FindCreatedBetween",
		trace.WithAttributes(
			attribute.String("query.start", start.Format(time.RFC3339)),
			attribute.String("query.end", end.Format(time.RFC3339)),
		),
	)
	defer span.End()

	entries, err := r.GormStockRepository.FindCreatedBetween(start, end)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(entries)))
	return entries, nil
}

// Update with tracing
func (r *GormStockRepositoryWithTracing) UpdateWithContext(ctx context.Context, entry *domain.StockEntry) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("stock.id", int(entry.ID)),
			attribute.Int("stock.quantity", entry.Quantity),
		),
	)
	defer span.End()

	err := r.GormStockRepository.Update(entry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormStockRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("stock.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormStockRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
