package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentRepository defines the interface for payment persistence
type PaymentRepository interface {
	// FindByID finds a payment by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Payment, error)

	// FindByVendor finds payments made to a vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Payment, error)

	// FindByClient finds payments received from a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]Payment, error)

	// FindByDateRange finds payments with payment_date within [start, end]
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]Payment, error)

	// SumByTypeAndDateRange sums payment amounts of a given type within
	// [start, end]. Returns zero when no rows match.
	SumByTypeAndDateRange(ctx context.Context, paymentType PaymentType, start, end time.Time) (decimal.Decimal, error)

	// Save creates or updates a payment
	Save(ctx context.Context, payment *Payment) error

	// Count counts payments matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// LedgerEntryRepository defines the interface for ledger entry persistence
type LedgerEntryRepository interface {
	// FindByID finds a ledger entry by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*LedgerEntry, error)

	// FindByDateRange finds entries with entry_date within [start, end]
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]LedgerEntry, error)

	// TotalDebits sums debit amounts within [start, end]
	TotalDebits(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// TotalCredits sums credit amounts within [start, end]
	TotalCredits(ctx context.Context, start, end time.Time) (decimal.Decimal, error)

	// Save appends a ledger entry
	Save(ctx context.Context, entry *LedgerEntry) error

	// Count counts entries matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ProfitLossRepository defines the interface for profit/loss report persistence
type ProfitLossRepository interface {
	// FindByPeriod finds the report for an exact period, if one exists
	FindByPeriod(ctx context.Context, periodStart, periodEnd time.Time) (*ProfitLossReport, error)

	// FindRecent lists reports ordered by period_end descending
	FindRecent(ctx context.Context, filter shared.Filter) ([]ProfitLossReport, error)

	// Upsert creates the report or replaces the stored figures for the
	// same period
	Upsert(ctx context.Context, report *ProfitLossReport) error
}
