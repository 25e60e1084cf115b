package persistence

import (
	"context"
	"time"

	apptrade "github.com/partserp/backend/internal/application/trade"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements the trade TransactionScope using
// GORM transactions. Fulfillment flows change order state and stock in the
// same transaction, so the scope exposes the inventory and bookkeeping
// repositories alongside the order repositories.
type GormTradeTransactionScope struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB, lockTimeout time.Duration) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db, lockTimeout: lockTimeout}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyLockTimeout(tx, s.lockTimeout); err != nil {
			return err
		}
		return fn(&gormTradeRepositories{tx: tx})
	})
}

// gormTradeRepositories provides access to the trade, inventory and
// bookkeeping repositories within a transaction.
type gormTradeRepositories struct {
	tx *gorm.DB
}

// SalesOrderRepo returns the sales order repository scoped to the current transaction
func (r *gormTradeRepositories) SalesOrderRepo() trade.SalesOrderRepository {
	return NewGormSalesOrderRepository(r.tx)
}

// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
func (r *gormTradeRepositories) PurchaseOrderRepo() trade.PurchaseOrderRepository {
	return NewGormPurchaseOrderRepository(r.tx)
}

// LedgerRepo returns the stock ledger repository scoped to the current transaction
func (r *gormTradeRepositories) LedgerRepo() inventory.StockLedgerRepository {
	return NewGormStockLedgerRepository(r.tx)
}

// LedgerEntryRepo returns the bookkeeping ledger entry repository scoped to the current transaction
func (r *gormTradeRepositories) LedgerEntryRepo() finance.LedgerEntryRepository {
	return NewGormLedgerEntryRepository(r.tx)
}

// Ensure GormTradeTransactionScope implements TransactionScope
var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)

// Ensure gormTradeRepositories implements TransactionalRepositories
var _ apptrade.TransactionalRepositories = (*gormTradeRepositories)(nil)
