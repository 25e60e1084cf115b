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

// GormPaymentRepository implements PaymentRepository using GORM
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Payment, error) {
	var payment finance.Payment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindByVendor finds payments made to a vendor
func (r *GormPaymentRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]finance.Payment, error) {
	var payments []finance.Payment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.Payment{}).Where("vendor_id = ?", vendorID),
		filter,
	)
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByClient finds payments received from a client
func (r *GormPaymentRepository) FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]finance.Payment, error) {
	var payments []finance.Payment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.Payment{}).Where("client_id = ?", clientID),
		filter,
	)
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// FindByDateRange finds payments with payment_date within [start, end]
func (r *GormPaymentRepository) FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]finance.Payment, error) {
	var payments []finance.Payment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&finance.Payment{}).
			Where("payment_date >= ? AND payment_date <= ?", start, end),
		filter,
	)
	if err := query.Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// SumByTypeAndDateRange sums payment amounts of a given type within [start, end]
func (r *GormPaymentRepository) SumByTypeAndDateRange(ctx context.Context, paymentType finance.PaymentType, start, end time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).Model(&finance.Payment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payment_type = ? AND payment_date >= ? AND payment_date <= ?", paymentType, start, end).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *finance.Payment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Count counts payments matching the filter
func (r *GormPaymentRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&finance.Payment{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormPaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PaymentSortFields, "payment_date")
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormPaymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "payment_type":
			query = query.Where("payment_type = ?", value)
		case "payment_method":
			query = query.Where("payment_method = ?", value)
		case "is_reconciled":
			query = query.Where("is_reconciled = ?", value)
		case "purchase_order_id":
			query = query.Where("purchase_order_id = ?", value)
		case "sales_order_id":
			query = query.Where("sales_order_id = ?", value)
		}
	}
	return query
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ finance.PaymentRepository = (*GormPaymentRepository)(nil)
