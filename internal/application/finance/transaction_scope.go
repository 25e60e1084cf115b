package finance

import (
	"context"

	"github.com/partserp/backend/internal/domain/finance"
)

// TransactionScope provides transactional access to the finance
// repositories. A payment and its derived ledger entry are always written
// in the same database transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the finance repositories
// within a transaction. All repositories returned share the same
// underlying database transaction.
type TransactionalRepositories interface {
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() finance.PaymentRepository
	// LedgerEntryRepo returns the ledger entry repository scoped to the current transaction
	LedgerEntryRepo() finance.LedgerEntryRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	paymentRepo     finance.PaymentRepository
	ledgerEntryRepo finance.LedgerEntryRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(paymentRepo finance.PaymentRepository, ledgerEntryRepo finance.LedgerEntryRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		paymentRepo:     paymentRepo,
		ledgerEntryRepo: ledgerEntryRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PaymentRepo returns the payment repository.
func (s *NoOpTransactionScope) PaymentRepo() finance.PaymentRepository {
	return s.paymentRepo
}

// LedgerEntryRepo returns the ledger entry repository.
func (s *NoOpTransactionScope) LedgerEntryRepo() finance.LedgerEntryRepository {
	return s.ledgerEntryRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
