package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStockAlertRepository implements StockAlertRepository using GORM
type GormStockAlertRepository struct {
	db *gorm.DB
}

// NewGormStockAlertRepository creates a new GormStockAlertRepository
func NewGormStockAlertRepository(db *gorm.DB) *GormStockAlertRepository {
	return &GormStockAlertRepository{db: db}
}

// FindByID finds an alert by its ID
func (r *GormStockAlertRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockAlert, error) {
	var alert inventory.StockAlert
	if err := r.db.WithContext(ctx).First(&alert, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindPendingByLedger finds the PENDING alert for a ledger row, if any
func (r *GormStockAlertRepository) FindPendingByLedger(ctx context.Context, stockLedgerID uuid.UUID) (*inventory.StockAlert, error) {
	var alert inventory.StockAlert
	if err := r.db.WithContext(ctx).
		Where("stock_ledger_id = ? AND status = ?", stockLedgerID, inventory.AlertStatusPending).
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindByStatus finds alerts with a given status, newest first, optionally
// restricted to one warehouse
func (r *GormStockAlertRepository) FindByStatus(ctx context.Context, status inventory.AlertStatus, warehouseID *uuid.UUID, filter shared.Filter) ([]inventory.StockAlert, error) {
	var alerts []inventory.StockAlert
	query := r.db.WithContext(ctx).Model(&inventory.StockAlert{}).
		Where("status = ?", status)
	if warehouseID != nil {
		query = query.Where("warehouse_id = ?", *warehouseID)
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StockAlertSortFields, "created_at")
	if err := query.Order(orderBy + " DESC").Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Save creates or updates an alert
func (r *GormStockAlertRepository) Save(ctx context.Context, alert *inventory.StockAlert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

// CountByStatus counts alerts with a given status
func (r *GormStockAlertRepository) CountByStatus(ctx context.Context, status inventory.AlertStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&inventory.StockAlert{}).
		Where("status = ?", status).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStockAlertRepository implements StockAlertRepository
var _ inventory.StockAlertRepository = (*GormStockAlertRepository)(nil)
