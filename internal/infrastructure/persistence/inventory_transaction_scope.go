package persistence

import (
	"context"
	"fmt"
	"time"

	appinv "github.com/partserp/backend/internal/application/inventory"
	"github.com/partserp/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// GormInventoryTransactionScope implements the inventory TransactionScope
// using GORM transactions. Every transaction starts with a SET LOCAL
// lock_timeout so a row-lock wait is bounded instead of open-ended.
type GormInventoryTransactionScope struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB, lockTimeout time.Duration) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db, lockTimeout: lockTimeout}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyLockTimeout(tx, s.lockTimeout); err != nil {
			return err
		}
		return fn(&gormInventoryRepositories{tx: tx})
	})
}

// applyLockTimeout bounds row-lock waits for the current transaction.
// SET LOCAL reverts automatically at commit or rollback.
func applyLockTimeout(tx *gorm.DB, lockTimeout time.Duration) error {
	if lockTimeout <= 0 {
		return nil
	}
	return tx.Exec(fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", lockTimeout.Milliseconds())).Error
}

// gormInventoryRepositories provides access to the inventory repositories
// within a transaction.
type gormInventoryRepositories struct {
	tx *gorm.DB
}

// LedgerRepo returns the stock ledger repository scoped to the current transaction
func (r *gormInventoryRepositories) LedgerRepo() inventory.StockLedgerRepository {
	return NewGormStockLedgerRepository(r.tx)
}

// AlertRepo returns the stock alert repository scoped to the current transaction
func (r *gormInventoryRepositories) AlertRepo() inventory.StockAlertRepository {
	return NewGormStockAlertRepository(r.tx)
}

// Ensure GormInventoryTransactionScope implements TransactionScope
var _ appinv.TransactionScope = (*GormInventoryTransactionScope)(nil)

// Ensure gormInventoryRepositories implements TransactionalRepositories
var _ appinv.TransactionalRepositories = (*gormInventoryRepositories)(nil)
