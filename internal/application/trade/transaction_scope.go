package trade

import (
	"context"

	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a
// fulfillment flow touches. Order state and its stock effect always change
// in the same database transaction; ledger row locks taken inside the scope
// are held until it ends.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the trade, inventory and
// bookkeeping repositories within a transaction. All repositories returned
// share the same underlying database transaction.
type TransactionalRepositories interface {
	// SalesOrderRepo returns the sales order repository scoped to the current transaction
	SalesOrderRepo() trade.SalesOrderRepository
	// PurchaseOrderRepo returns the purchase order repository scoped to the current transaction
	PurchaseOrderRepo() trade.PurchaseOrderRepository
	// LedgerRepo returns the stock ledger repository scoped to the current transaction
	LedgerRepo() inventory.StockLedgerRepository
	// LedgerEntryRepo returns the bookkeeping ledger entry repository scoped to the current transaction
	LedgerEntryRepo() finance.LedgerEntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	salesOrderRepo    trade.SalesOrderRepository
	purchaseOrderRepo trade.PurchaseOrderRepository
	ledgerRepo        inventory.StockLedgerRepository
	ledgerEntryRepo   finance.LedgerEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	salesOrderRepo trade.SalesOrderRepository,
	purchaseOrderRepo trade.PurchaseOrderRepository,
	ledgerRepo inventory.StockLedgerRepository,
	ledgerEntryRepo finance.LedgerEntryRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		salesOrderRepo:    salesOrderRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		ledgerRepo:        ledgerRepo,
		ledgerEntryRepo:   ledgerEntryRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SalesOrderRepo returns the sales order repository.
func (s *NoOpTransactionScope) SalesOrderRepo() trade.SalesOrderRepository {
	return s.salesOrderRepo
}

// PurchaseOrderRepo returns the purchase order repository.
func (s *NoOpTransactionScope) PurchaseOrderRepo() trade.PurchaseOrderRepository {
	return s.purchaseOrderRepo
}

// LedgerRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) LedgerRepo() inventory.StockLedgerRepository {
	return s.ledgerRepo
}

// LedgerEntryRepo returns the bookkeeping ledger entry repository.
func (s *NoOpTransactionScope) LedgerEntryRepo() finance.LedgerEntryRepository {
	return s.ledgerEntryRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
