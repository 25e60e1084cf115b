package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormLedgerEntryRepository implements LedgerEntryRepository using GORM
type GormLedgerEntryRepository struct {
	db *gorm.DB
}

// NewGormLedgerEntryRepository creates a new GormLedgerEntryRepository
func NewGormLedgerEntryRepository(db *gorm.DB) *GormLedgerEntryRepository {
	return &GormLedgerEntryRepository{db: db}
}

// FindByID finds a ledger entry by its ID
func (r *GormLedgerEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.LedgerEntry, error) {
	var entry finance.LedgerEntry
	if err := r.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

// FindByDateRange finds entries with entry_date within [start, end]
func (r *GormLedgerEntryRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]finance.LedgerEntry, error) {
	var entries []finance.LedgerEntry
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).
			Where("entry_date >= ? AND entry_date <= ?", start, end),
		filter,
	)
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// TotalDebits sums debit amounts within [start, end]
func (r *GormLedgerEntryRepository) TotalDebits(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "debit_amount", start, end)
}

// TotalCredits sums credit amounts within [start, end]
func (r *GormLedgerEntryRepository) TotalCredits(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	return r.sumColumn(ctx, "credit_amount", start, end)
}

func (r *GormLedgerEntryRepository) sumColumn(ctx context.Context, column string, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&finance.LedgerEntry{}).
		Select("COALESCE(SUM("+column+"), 0)").
		Where("entry_date >= ? AND entry_date <= ?", start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Save appends a ledger entry
func (r *GormLedgerEntryRepository) Save(ctx context.Context, entry *finance.LedgerEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

// Count counts entries matching the filter
func (r *GormLedgerEntryRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&finance.LedgerEntry{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormLedgerEntryRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, LedgerEntrySortFields, "entry_date")
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormLedgerEntryRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "entry_type":
			query = query.Where("entry_type = ?", value)
		case "payment_id":
			query = query.Where("payment_id = ?", value)
		case "reference_id":
			query = query.Where("reference_id = ?", value)
		}
	}
	return query
}

// Ensure GormLedgerEntryRepository implements LedgerEntryRepository
var _ finance.LedgerEntryRepository = (*GormLedgerEntryRepository)(nil)
