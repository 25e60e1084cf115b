// Package telemetry provides OpenTelemetry integration for metrics collection.
package telemetry

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMetricsProvider implements StockMetricsProvider using GORM.
// It queries the stock_ledgers table directly for aggregated metrics.
type GormStockMetricsProvider struct {
	db *gorm.DB
}

// NewGormStockMetricsProvider creates a new GormStockMetricsProvider.
func NewGormStockMetricsProvider(db *gorm.DB) *GormStockMetricsProvider {
	return &GormStockMetricsProvider{db: db}
}

// GetReservedQuantityByWarehouse returns total reserved quantity per warehouse.
func (p *GormStockMetricsProvider) GetReservedQuantityByWarehouse(ctx context.Context) (map[uuid.UUID]int64, error) {
	type result struct {
		WarehouseID      uuid.UUID `gorm:"column:warehouse_id"`
		ReservedQuantity int64     `gorm:"column:reserved_quantity"`
	}

	var results []result
	err := p.db.WithContext(ctx).
		Table("stock_ledgers").
		Select("warehouse_id, COALESCE(SUM(reserved_quantity), 0) as reserved_quantity").
		Group("warehouse_id").
		Having("SUM(reserved_quantity) > 0").
		Find(&results).Error

	if err != nil {
		return nil, err
	}

	m := make(map[uuid.UUID]int64, len(results))
	for _, r := range results {
		m[r.WarehouseID] = r.ReservedQuantity
	}

	return m, nil
}

// GetBelowMinimumCount returns the count of ledger rows at or below their minimum.
func (p *GormStockMetricsProvider) GetBelowMinimumCount(ctx context.Context) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).
		Table("stock_ledgers").
		Where("min_quantity > 0 AND quantity <= min_quantity").
		Count(&count).Error

	return count, err
}
