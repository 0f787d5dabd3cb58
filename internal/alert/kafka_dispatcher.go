package alert

import (
	"context"

	"github.com/inventoryops/warehouse-api/kafka"
)

// KafkaDispatcher publishes low-stock alerts as domain events instead
// of (or alongside) inline mail dispatch
type KafkaDispatcher struct {
	publisher *kafka.Publisher
}

// NewKafkaDispatcher creates a Kafka-backed dispatcher
func NewKafkaDispatcher(publisher *kafka.Publisher) *KafkaDispatcher {
	return &KafkaDispatcher{publisher: publisher}
}

// DispatchLowStock publishes one stock.low event
func (d *KafkaDispatcher) DispatchLowStock(ctx context.Context, a LowStockAlert) error {
	err := d.publisher.PublishStockLow(ctx, kafka.StockLowEvent{
		ProductName:       a.ProductName,
		WarehouseName:     a.WarehouseName,
		WarehouseLocation: a.WarehouseLocation,
		Quantity:          a.Quantity,
		Threshold:         a.Threshold,
		RestockFloor:      a.RestockFloor(),
	})
	if err != nil {
		dispatchedAlerts.WithLabelValues("kafka", "error").Inc()
		return err
	}

	dispatchedAlerts.WithLabelValues("kafka", "ok").Inc()
	return nil
}
