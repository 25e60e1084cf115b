package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
)

// StockLedgerRepository defines the interface for stock ledger persistence.
//
// Every mutating flow follows the same shape: acquire the row with
// GetForUpdate inside a transaction scope, mutate the aggregate, then Save.
// Plain finders are for non-locking snapshot reads only and must never feed
// a read-modify-write cycle.
type StockLedgerRepository interface {
	// FindByID finds a ledger row by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockLedger, error)

	// FindByItemAndWarehouse finds the ledger row for an item-warehouse pair
	FindByItemAndWarehouse(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockLedger, error)

	// GetForUpdate loads the row for an item-warehouse pair with an
	// exclusive row lock (SELECT ... FOR UPDATE). Must be called inside a
	// transaction; the lock is held until the transaction ends. A lock wait
	// exceeding the configured bound surfaces as LOCK_TIMEOUT.
	GetForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockLedger, error)

	// GetOrCreateForUpdate is GetForUpdate that lazily creates an empty row
	// for the pair when none exists yet
	GetOrCreateForUpdate(ctx context.Context, itemID, warehouseID uuid.UUID) (*StockLedger, error)

	// FindAll finds ledger rows matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]StockLedger, error)

	// FindByWarehouse finds all ledger rows in a warehouse
	FindByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]StockLedger, error)

	// FindByItem finds ledger rows for an item across warehouses
	FindByItem(ctx context.Context, itemID uuid.UUID, filter shared.Filter) ([]StockLedger, error)

	// FindBelowMinimum finds rows at or below their minimum threshold
	FindBelowMinimum(ctx context.Context, filter shared.Filter) ([]StockLedger, error)

	// Save creates or updates a ledger row
	Save(ctx context.Context, ledger *StockLedger) error

	// SaveWithLock saves with an optimistic version check; returns
	// CONCURRENCY_CONFLICT when the row changed underneath
	SaveWithLock(ctx context.Context, ledger *StockLedger) error

	// Count counts ledger rows matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StockAlertRepository defines the interface for stock alert persistence
type StockAlertRepository interface {
	// FindByID finds an alert by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*StockAlert, error)

	// FindPendingByLedger finds the PENDING alert for a ledger row, if any.
	// The dedup invariant guarantees at most one.
	FindPendingByLedger(ctx context.Context, stockLedgerID uuid.UUID) (*StockAlert, error)

	// FindByStatus finds alerts with a given status, newest first,
	// optionally restricted to one warehouse
	FindByStatus(ctx context.Context, status AlertStatus, warehouseID *uuid.UUID, filter shared.Filter) ([]StockAlert, error)

	// Save creates or updates an alert
	Save(ctx context.Context, alert *StockAlert) error

	// CountByStatus counts alerts with a given status
	CountByStatus(ctx context.Context, status AlertStatus) (int64, error)
}
