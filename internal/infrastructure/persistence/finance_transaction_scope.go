package persistence

import (
	"context"
	"time"

	appfin "github.com/partserp/backend/internal/application/finance"
	"github.com/partserp/backend/internal/domain/finance"
	"gorm.io/gorm"
)

// GormFinanceTransactionScope implements the finance TransactionScope
// using GORM transactions. A payment and its bookkeeping entry are always
// written in the same transaction.
type GormFinanceTransactionScope struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// NewGormFinanceTransactionScope creates a new GormFinanceTransactionScope
func NewGormFinanceTransactionScope(db *gorm.DB, lockTimeout time.Duration) *GormFinanceTransactionScope {
	return &GormFinanceTransactionScope{db: db, lockTimeout: lockTimeout}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// If the function succeeds, the transaction is committed.
func (s *GormFinanceTransactionScope) Execute(ctx context.Context, fn func(repos appfin.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := applyLockTimeout(tx, s.lockTimeout); err != nil {
			return err
		}
		return fn(&gormFinanceRepositories{tx: tx})
	})
}

// gormFinanceRepositories provides access to the finance repositories
// within a transaction.
type gormFinanceRepositories struct {
	tx *gorm.DB
}

// PaymentRepo returns the payment repository scoped to the current transaction
func (r *gormFinanceRepositories) PaymentRepo() finance.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

// LedgerEntryRepo returns the ledger entry repository scoped to the current transaction
func (r *gormFinanceRepositories) LedgerEntryRepo() finance.LedgerEntryRepository {
	return NewGormLedgerEntryRepository(r.tx)
}

// Ensure GormFinanceTransactionScope implements TransactionScope
var _ appfin.TransactionScope = (*GormFinanceTransactionScope)(nil)

// Ensure gormFinanceRepositories implements TransactionalRepositories
var _ appfin.TransactionalRepositories = (*gormFinanceRepositories)(nil)
