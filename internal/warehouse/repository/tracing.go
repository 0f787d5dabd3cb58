package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/inventoryops/warehouse-api/internal/warehouse/domain"
)

var tracer = otel.Tracer("warehouse-repository")

// GormWarehouseRepositoryWithTracing wraps GormWarehouseRepository with tracing
type GormWarehouseRepositoryWithTracing struct {
	*GormWarehouseRepository
}

// NewGormWarehouseRepositoryWithTracing creates a new repository with tracing
func NewGormWarehouseRepositoryWithTracing(db *gorm.DB) *GormWarehouseRepositoryWithTracing {
	return &GormWarehouseRepositoryWithTracing{
		GormWarehouseRepository: NewGormWarehouseRepository(db),
	}
}

// Create with tracing
func (r *GormWarehouseRepositoryWithTracing) CreateWithContext(ctx context.Context, warehouse *domain.Warehouse) error {
	_, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.String("warehouse.name", warehouse.Name),
			attribute.String("warehouse.location", warehouse.Location),
		),
	)
	defer span.End()

	err := r.GormWarehouseRepository.Create(warehouse)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("warehouse.id", int(warehouse.ID)))
	return nil
}

// FindByID with tracing
func (r *GormWarehouseRepositoryWithTracing) FindByIDWithContext(ctx context.Context, id uint) (*domain.Warehouse, error) {
	_, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(id)),
		),
	)
	defer span.End()

	warehouse, err := r.GormWarehouseRepository.FindByID(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.String("warehouse.name", warehouse.Name))
	return warehouse, nil
}

// FindAll with tracing
func (r *GormWarehouseRepositoryWithTracing) FindAllWithContext(ctx context.Context, limit, offset int) ([]domain.Warehouse, error) {
	_, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		),
	)
	defer span.End()

	warehouses, err := r.GormWarehouseRepository.FindAll(limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(warehouses)))
	return warehouses, nil
}

// Update with tracing
func (r *GormWarehouseRepositoryWithTracing) UpdateWithContext(ctx context.Context, warehouse *domain.Warehouse) error {
	_, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(warehouse.ID)),
		),
	)
	defer span.End()

	err := r.GormWarehouseRepository.Update(warehouse)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}

// Delete with tracing
func (r *GormWarehouseRepositoryWithTracing) DeleteWithContext(ctx context.Context, id uint) error {
	_, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("warehouse.id", int(id)),
		),
	)
	defer span.End()

	err := r.GormWarehouseRepository.Delete(id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
