package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProfitLossRepository implements ProfitLossRepository using GORM
type GormProfitLossRepository struct {
	db *gorm.DB
}

// NewGormProfitLossRepository creates a new GormProfitLossRepository
func NewGormProfitLossRepository(db *gorm.DB) *GormProfitLossRepository {
	return &GormProfitLossRepository{db: db}
}

// FindByPeriod finds the report for an exact period, if one exists
func (r *GormProfitLossRepository) FindByPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*finance.ProfitLossReport, error) {
	var report finance.ProfitLossReport
	if err := r.db.WithContext(ctx).
		Where("period_start = ? AND period_end = ?", periodStart, periodEnd).
		First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// FindRecent lists reports ordered by period_end descending
func (r *GormProfitLossRepository) FindRecent(ctx context.Context, filter shared.Filter) ([]finance.ProfitLossReport, error) {
	var reports []finance.ProfitLossReport
	query := r.db.WithContext(ctx).Model(&finance.ProfitLossReport{}).
		Order("period_end DESC")

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

// Upsert creates the report or replaces the stored figures for the same period.
// A rerun over an existing period wins; the period key stays stable.
func (r *GormProfitLossRepository) Upsert(ctx context.Context, report *finance.ProfitLossReport) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "period_start"}, {Name: "period_end"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_revenue",
				"total_cost_of_goods",
				"total_expenses",
				"gross_profit",
				"net_profit",
				"updated_at",
			}),
		}).
		Create(report).Error
}

// Ensure GormProfitLossRepository implements ProfitLossRepository
var _ finance.ProfitLossRepository = (*GormProfitLossRepository)(nil)
