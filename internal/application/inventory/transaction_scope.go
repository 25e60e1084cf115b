package inventory

import (
	"context"

	"github.com/partserp/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to inventory repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically. Row locks taken with GetForUpdate are held until the
// scope ends.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the inventory repositories
// within a transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// LedgerRepo returns the stock ledger repository scoped to the current transaction
	LedgerRepo() inventory.StockLedgerRepository
	// AlertRepo returns the stock alert repository scoped to the current transaction
	AlertRepo() inventory.StockAlertRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	ledgerRepo inventory.StockLedgerRepository
	alertRepo  inventory.StockAlertRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	ledgerRepo inventory.StockLedgerRepository,
	alertRepo inventory.StockAlertRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		ledgerRepo: ledgerRepo,
		alertRepo:  alertRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// LedgerRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() inventory.StockLedgerRepository {
	return s.ledgerRepo
}

// AlertRepo returns the stock alert repository.
func (s *NoOpTransactionScope) AlertRepo() inventory.StockAlertRepository {
	return s.alertRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
