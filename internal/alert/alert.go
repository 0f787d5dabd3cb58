// Package alert carries low-stock notifications out of the mutation
// path. Dispatch happens after the stock write commits and failures
// never propagate back into the update that triggered them.
package alert

import (
	"context"
	"fmt"
)

// LowStockAlert describes a stock entry that crossed its threshold
type LowStockAlert struct {
	ProductName       string
	WarehouseName     string
	WarehouseLocation string
	Quantity          int
	Threshold         int
}

// RestockFloor is the advised minimum quantity to store
func (a LowStockAlert) RestockFloor() int {
	return a.Threshold + 1
}

// Dispatcher delivers a low-stock alert to one sink
type Dispatcher interface {
	DispatchLowStock(ctx context.Context, alert LowStockAlert) error
}

// Message is a fully formed mail message
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
	HTML    bool
}

// Sender sends a fully formed message. No retry or queueing semantics
// are defined; delivery confirmation is not surfaced upward.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// LowStockSubject builds the alert mail subject
func LowStockSubject(a LowStockAlert) string {
	return fmt.Sprintf("Low Stock Alert: %s", a.ProductName)
}

// LowStockBody builds the alert mail body
func LowStockBody(a LowStockAlert) string {
	return fmt.Sprintf(`<p>Dear Admin,</p>
<p>We noticed that the following product is running low in the warehouse inventory:</p>
<ul>
    <li><strong>Product Name:</strong> %s</li>
    <li><strong>Warehouse:</strong> %s, <strong>Location:</strong> %s</li>
    <li><strong>Stock Quantity:</strong> %d</li>
    <li><strong>It is advisable to store atleast </strong>%d</li>
</ul>
<p>Please take the necessary action to restock this item.</p>
<p>Thank you,</p>
<p>Your Inventory Management Team</p>`,
		a.ProductName, a.WarehouseName, a.WarehouseLocation, a.Quantity, a.RestockFloor())
}
