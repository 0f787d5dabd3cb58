package kafka

import "time"

// StockLowEvent is emitted after a stock write commits with the
// quantity at or below the threshold
type StockLowEvent struct {
	EventID           string    `json:"event_id"`
	EventType         string    `json:"event_type"`
	ProductName       string    `json:"product_name"`
	WarehouseName     string    `json:"warehouse_name"`
	WarehouseLocation string    `json:"warehouse_location"`
	Quantity          int       `json:"quantity"`
	Threshold         int       `json:"threshold"`
	RestockFloor      int       `json:"restock_floor"`
	Timestamp         time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeStockLow = "stock.low"
)

// Kafka topics
const (
	TopicStockAlerts = "stock-alerts"
)
