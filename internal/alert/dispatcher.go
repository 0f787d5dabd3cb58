package alert

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/inventoryops/warehouse-api/pkg/logger"
)

var dispatchedAlerts = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "warehouse_low_stock_alerts_total",
		Help: "Total number of low stock alerts dispatched",
	},
	[]string{"sink", "status"},
)

func init() {
	prometheus.MustRegister(dispatchedAlerts)
}

// MailDispatcher delivers low-stock alerts by mail
type MailDispatcher struct {
	sender Sender
	from   string
	to     string
}

// NewMailDispatcher creates a mail dispatcher addressed to the
// configured alert recipient
func NewMailDispatcher(sender Sender, from, to string) *MailDispatcher {
	return &MailDispatcher{sender: sender, from: from, to: to}
}

// DispatchLowStock sends one alert mail
func (d *MailDispatcher) DispatchLowStock(ctx context.Context, a LowStockAlert) error {
	err := d.sender.Send(ctx, Message{
		From:    d.from,
		To:      d.to,
		Subject: LowStockSubject(a),
		Body:    LowStockBody(a),
		HTML:    true,
	})
	if err != nil {
		dispatchedAlerts.WithLabelValues("mail", "error").Inc()
		return fmt.Errorf("failed to dispatch low stock mail: %w", err)
	}

	dispatchedAlerts.WithLabelValues("mail", "ok").Inc()
	return nil
}

// MultiDispatcher fans a low-stock alert out to every configured sink.
// A failing sink does not stop the others; the first error is returned
// so the caller can log it.
type MultiDispatcher struct {
	sinks []Dispatcher
}

// NewMultiDispatcher creates a fan-out dispatcher
func NewMultiDispatcher(sinks ...Dispatcher) *MultiDispatcher {
	return &MultiDispatcher{sinks: sinks}
}

// DispatchLowStock dispatches to all sinks
func (d *MultiDispatcher) DispatchLowStock(ctx context.Context, a LowStockAlert) error {
	var firstErr error
	for _, sink := range d.sinks {
		if err := sink.DispatchLowStock(ctx, a); err != nil {
			logger.Error(ctx).
				Err(err).
				Str("product", a.ProductName).
				Msg("Alert sink failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
