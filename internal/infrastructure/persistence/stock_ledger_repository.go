package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockLedgerRepository implements StockLedgerRepository using GORM
type GormStockLedgerRepository struct {
	db *gorm.DB
}

// NewGormStockLedgerRepository creates a new GormStockLedgerRepository
func NewGormStockLedgerRepository(db *gorm.DB) *GormStockLedgerRepository {
	return &GormStockLedgerRepository{db: db}
}

// FindByID finds a ledger row by its ID
func (r *GormStockLedgerRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.StockLedger, error) {
	var ledger inventory.StockLedger
	if err := r.db.WithContext(ctx).First(&ledger, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

// FindByItemAndWarehouse finds the ledger row for an item-warehouse pair
func (r *GormStockLedgerRepository) FindByItemAndWarehouse(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	var ledger inventory.StockLedger
	if err := r.db.WithContext(ctx).
		Where("item_id = ? AND warehouse_id = ?", itemID, warehouseID).
		First(&ledger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &ledger, nil
}

// GetForUpdate loads the row for an item-warehouse pair with an exclusive
// row lock. The transaction's lock_timeout bounds the wait; an exceeded
// wait surfaces as LOCK_TIMEOUT.
func (r *GormStockLedgerRepository) GetForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	var ledger inventory.StockLedger
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("item_id = ? AND warehouse_id = ?", itemID, warehouseID).
		First(&ledger).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, translatePgError(err, nil)
	}
	return &ledger, nil
}

// GetOrCreateForUpdate is GetForUpdate that lazily creates an empty row
// for the pair when none exists yet. The insert tolerates a concurrent
// creator; the locked re-read settles who proceeds first.
func (r *GormStockLedgerRepository) GetOrCreateForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*inventory.StockLedger, error) {
	ledger, err := r.GetForUpdate(ctx, itemID, warehouseID)
	if err == nil {
		return ledger, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	ledger, err = inventory.NewStockLedger(itemID, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}, {Name: "warehouse_id"}},
			DoNothing: true,
		}).
		Create(ledger).Error; err != nil {
		return nil, translatePgError(err, nil)
	}

	return r.GetForUpdate(ctx, itemID, warehouseID)
}

// FindAll finds ledger rows matching the filter
func (r *GormStockLedgerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.StockLedger, error) {
	var ledgers []inventory.StockLedger
	query := r.applyFilter(r.db.WithContext(ctx).Model(&inventory.StockLedger{}), filter)
	if err := query.Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}

// FindByWarehouse finds all ledger rows in a warehouse
func (r *GormStockLedgerRepository) FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]inventory.StockLedger, error) {
	var ledgers []inventory.StockLedger
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockLedger{}).
			Where("warehouse_id = ?", warehouseID),
		filter,
	)
	if err := query.Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}

// FindByItem finds ledger rows for an item across warehouses
func (r *GormStockLedgerRepository) FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]inventory.StockLedger, error) {
	var ledgers []inventory.StockLedger
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockLedger{}).
			Where("item_id = ?", itemID),
		filter,
	)
	if err := query.Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}

// FindBelowMinimum finds rows at or below their minimum threshold
func (r *GormStockLedgerRepository) FindBelowMinimum(ctx context.Context, filter shared.Filter) ([]inventory.StockLedger, error) {
	var ledgers []inventory.StockLedger
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&inventory.StockLedger{}).
			Where("quantity <= min_quantity"),
		filter,
	)
	if err := query.Find(&ledgers).Error; err != nil {
		return nil, err
	}
	return ledgers, nil
}

// Save creates or updates a ledger row
func (r *GormStockLedgerRepository) Save(ctx context.Context, ledger *inventory.StockLedger) error {
	return translatePgError(r.db.WithContext(ctx).Save(ledger).Error, nil)
}

// SaveWithLock saves with an optimistic version check
func (r *GormStockLedgerRepository) SaveWithLock(ctx context.Context, ledger *inventory.StockLedger) error {
	result := r.db.WithContext(ctx).
		Model(ledger).
		Where("id = ? AND version = ?", ledger.ID, ledger.Version-1).
		Updates(map[string]interface{}{
			"quantity":           ledger.Quantity,
			"reserved_quantity":  ledger.ReservedQuantity,
			"available_quantity": ledger.AvailableQuantity,
			"min_quantity":       ledger.MinQuantity,
			"max_quantity":       ledger.MaxQuantity,
			"average_cost":       ledger.AverageCost,
			"last_restocked":     ledger.LastRestocked,
			"version":            ledger.Version,
			"updated_at":         ledger.UpdatedAt,
		})

	if result.Error != nil {
		return translatePgError(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		return shared.NewDomainError("CONCURRENCY_CONFLICT", "Stock ledger row was modified by another transaction")
	}
	return nil
}

// Count counts ledger rows matching the filter
func (r *GormStockLedgerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&inventory.StockLedger{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormStockLedgerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, StockLedgerSortFields, "updated_at")
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormStockLedgerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "warehouse_id":
			query = query.Where("warehouse_id = ?", value)
		case "item_id":
			query = query.Where("item_id = ?", value)
		case "below_minimum":
			if value == true {
				query = query.Where("quantity <= min_quantity")
			}
		case "out_of_stock":
			if value == true {
				query = query.Where("quantity = 0")
			}
		}
	}
	return query
}

// Ensure GormStockLedgerRepository implements StockLedgerRepository
var _ inventory.StockLedgerRepository = (*GormStockLedgerRepository)(nil)
