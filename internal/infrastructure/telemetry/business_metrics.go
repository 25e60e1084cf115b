// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// BusinessMetrics provides business metrics for the parts ERP.
// It tracks order creation, payment activity, and stock health.
type BusinessMetrics struct {
	meter  metric.Meter
	logger *zap.Logger

	// Counter metrics (monotonically increasing)
	orderCreatedTotal *Counter
	orderAmountTotal  *Counter
	paymentTotal      *Counter

	// Gauge metrics (point-in-time values)
	stockReservedQuantity *Gauge
	stockBelowMinCount    *Gauge

	// Periodic collector
	stopChan    chan struct{}
	stopOnce    sync.Once
	collectOnce sync.Once

	// Data provider for periodic collection
	stockProvider StockMetricsProvider
}

// StockMetricsProvider provides stock data for periodic metrics collection.
// This interface allows the telemetry layer to query stock state without
// depending on the inventory domain directly.
type StockMetricsProvider interface {
	// GetReservedQuantityByWarehouse returns total reserved quantity per warehouse
	GetReservedQuantityByWarehouse(ctx context.Context) (map[uuid.UUID]int64, error)

	// GetBelowMinimumCount returns the count of ledger rows at or below their minimum
	GetBelowMinimumCount(ctx context.Context) (int64, error)
}

// BusinessMetricsConfig holds configuration for business metrics.
type BusinessMetricsConfig struct {
	Meter           metric.Meter
	Logger          *zap.Logger
	CollectInterval time.Duration // Default: 5 minutes
	StockProvider   StockMetricsProvider
}

// NewBusinessMetrics creates a new BusinessMetrics instance.
func NewBusinessMetrics(cfg BusinessMetricsConfig) (*BusinessMetrics, error) {
	if cfg.Meter == nil {
		return nil, ErrMeterNil
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	bm := &BusinessMetrics{
		meter:         cfg.Meter,
		logger:        logger,
		stopChan:      make(chan struct{}),
		stockProvider: cfg.StockProvider,
	}

	// Initialize counter metrics
	var err error

	// Order metrics
	bm.orderCreatedTotal, err = NewCounter(
		cfg.Meter,
		"partserp_order_created_total",
		"Total number of orders created",
		"{orders}",
	)
	if err != nil {
		return nil, err
	}

	bm.orderAmountTotal, err = NewCounter(
		cfg.Meter,
		"partserp_order_amount_total",
		"Total order amount in cents",
		"{cents}",
	)
	if err != nil {
		return nil, err
	}

	// Payment metrics
	bm.paymentTotal, err = NewCounter(
		cfg.Meter,
		"partserp_payment_total",
		"Total number of payment transactions",
		"{payments}",
	)
	if err != nil {
		return nil, err
	}

	// Stock gauge metrics
	bm.stockReservedQuantity, err = NewGauge(
		cfg.Meter,
		"partserp_stock_reserved_quantity",
		"Current reserved stock quantity",
		"{units}",
	)
	if err != nil {
		return nil, err
	}

	bm.stockBelowMinCount, err = NewGauge(
		cfg.Meter,
		"partserp_stock_below_minimum_count",
		"Number of item-warehouse pairs at or below minimum stock",
		"{ledgers}",
	)
	if err != nil {
		return nil, err
	}

	return bm, nil
}

// =============================================================================
// Order Metrics
// =============================================================================

// OrderType represents the type of order for metrics labeling.
type OrderType string

const (
	OrderTypeSales    OrderType = "sales"
	OrderTypePurchase OrderType = "purchase"
)

// RecordOrderCreated records an order creation event.
// This should be called from the application layer when an order is created.
func (bm *BusinessMetrics) RecordOrderCreated(ctx context.Context, orderType OrderType) {
	bm.orderCreatedTotal.Inc(ctx,
		AttrOrderType.String(string(orderType)),
	)
}

// RecordOrderAmount records the order amount.
// Amount should be in the smallest currency unit (cents).
func (bm *BusinessMetrics) RecordOrderAmount(ctx context.Context, orderType OrderType, amountCents int64) {
	bm.orderAmountTotal.Add(ctx, amountCents,
		AttrOrderType.String(string(orderType)),
	)
}

// RecordOrderWithAmount is a convenience method that records both order count and amount.
func (bm *BusinessMetrics) RecordOrderWithAmount(ctx context.Context, orderType OrderType, amount decimal.Decimal) {
	bm.RecordOrderCreated(ctx, orderType)

	// Convert to cents (multiply by 100)
	amountCents := amount.Mul(decimal.NewFromInt(100)).IntPart()
	bm.RecordOrderAmount(ctx, orderType, amountCents)
}

// =============================================================================
// Payment Metrics
// =============================================================================

// PaymentStatus represents the outcome of a payment for metrics labeling.
type PaymentStatus string

const (
	PaymentStatusSuccess PaymentStatus = "success"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// RecordPayment records a payment transaction.
func (bm *BusinessMetrics) RecordPayment(ctx context.Context, paymentMethod string, status PaymentStatus) {
	bm.paymentTotal.Inc(ctx,
		AttrPaymentMethod.String(paymentMethod),
		AttrPaymentStatus.String(string(status)),
	)
}

// =============================================================================
// Stock Metrics
// =============================================================================

// RecordReservedQuantity records the current reserved stock quantity for a warehouse.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordReservedQuantity(ctx context.Context, warehouseID uuid.UUID, quantity int64) {
	bm.stockReservedQuantity.Record(ctx, quantity,
		AttrWarehouseID.String(warehouseID.String()),
	)
}

// RecordBelowMinimumCount records the number of ledger rows at or below minimum.
// This is a gauge metric that should be updated periodically.
func (bm *BusinessMetrics) RecordBelowMinimumCount(ctx context.Context, count int64) {
	bm.stockBelowMinCount.Record(ctx, count)
}

// =============================================================================
// Periodic Collection
// =============================================================================

// StartPeriodicCollection starts periodic collection of gauge metrics.
// It collects stock metrics every interval (default: 5 minutes).
// This is non-blocking - use Stop() to stop collection.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	bm.collectOnce.Do(func() {
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		go bm.runPeriodicCollection(ctx, interval)
	})
}

// runPeriodicCollection runs the periodic collection loop.
func (bm *BusinessMetrics) runPeriodicCollection(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	// Collect immediately on start
	bm.collectStockMetrics(ctx)

	for {
		select {
		case <-bm.stopChan:
			bm.logger.Info("Stopping periodic business metrics collection")
			return
		case <-ctx.Done():
			bm.logger.Info("Context cancelled, stopping periodic business metrics collection")
			return
		case <-ticker.C:
			bm.collectStockMetrics(ctx)
		}
	}
}

// collectStockMetrics collects stock gauge metrics.
func (bm *BusinessMetrics) collectStockMetrics(ctx context.Context) {
	if bm.stockProvider == nil {
		bm.logger.Debug("No stock provider configured, skipping stock metrics collection")
		return
	}

	// Collect reserved quantity by warehouse
	reservedByWarehouse, err := bm.stockProvider.GetReservedQuantityByWarehouse(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get reserved quantity", zap.Error(err))
	} else {
		for warehouseID, quantity := range reservedByWarehouse {
			bm.RecordReservedQuantity(ctx, warehouseID, quantity)
		}
	}

	// Collect below-minimum count
	belowMinCount, err := bm.stockProvider.GetBelowMinimumCount(ctx)
	if err != nil {
		bm.logger.Warn("Failed to get below-minimum count", zap.Error(err))
	} else {
		bm.RecordBelowMinimumCount(ctx, belowMinCount)
	}
}

// Stop stops the periodic collection.
func (bm *BusinessMetrics) Stop() {
	bm.stopOnce.Do(func() {
		close(bm.stopChan)
	})
}

// =============================================================================
// Error Types
// =============================================================================

// ErrMeterNil is returned when meter is nil.
var ErrMeterNil = &MetricsError{Op: "NewBusinessMetrics", Err: "meter cannot be nil"}

// MetricsError represents a metrics-related error.
type MetricsError struct {
	Op  string
	Err string
}

func (e *MetricsError) Error() string {
	return e.Op + ": " + e.Err
}
