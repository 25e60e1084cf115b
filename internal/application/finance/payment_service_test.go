package finance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPaymentService() (*PaymentService, *MockPaymentRepository, *MockLedgerEntryRepository, *MockEventPublisher) {
	paymentRepo := new(MockPaymentRepository)
	entryRepo := new(MockLedgerEntryRepository)
	publisher := NewMockEventPublisher()
	service := NewPaymentService(NewNoOpTransactionScope(paymentRepo, entryRepo), paymentRepo, entryRepo)
	service.SetEventPublisher(publisher)
	return service, paymentRepo, entryRepo, publisher
}

func TestPaymentService_Record(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()
	clientID := uuid.New()
	paymentDate := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("vendor debit books money out", func(t *testing.T) {
		service, paymentRepo, entryRepo, publisher := newPaymentService()

		paymentRepo.On("Save", ctx, mock.AnythingOfType("*finance.Payment")).Return(nil)
		entryRepo.On("Save", ctx, mock.MatchedBy(func(entry *finance.LedgerEntry) bool {
			return entry.Type == finance.EntryTypePayment &&
				entry.DebitAmount.Equal(decimal.NewFromInt(1200)) &&
				entry.CreditAmount.IsZero()
		})).Return(nil)

		resp, err := service.Record(ctx, RecordPaymentRequest{
			VendorID:    &vendorID,
			Amount:      decimal.NewFromInt(1200),
			Type:        "DEBIT",
			PaymentDate: &paymentDate,
			Description: "March freight invoice",
		})
		require.NoError(t, err)

		assert.Equal(t, finance.PaymentTypeDebit, resp.Type)
		assert.Equal(t, finance.PaymentMethodBankTransfer, resp.Method, "method defaults to bank transfer")
		assert.NotEmpty(t, publisher.GetEventsByType(finance.EventTypePaymentRecorded))
		entryRepo.AssertExpectations(t)
	})

	t.Run("client credit books money in", func(t *testing.T) {
		service, paymentRepo, entryRepo, _ := newPaymentService()

		paymentRepo.On("Save", ctx, mock.Anything).Return(nil)
		entryRepo.On("Save", ctx, mock.MatchedBy(func(entry *finance.LedgerEntry) bool {
			return entry.CreditAmount.Equal(decimal.NewFromInt(450)) && entry.DebitAmount.IsZero()
		})).Return(nil)

		resp, err := service.Record(ctx, RecordPaymentRequest{
			ClientID:    &clientID,
			Amount:      decimal.NewFromInt(450),
			Type:        "CREDIT",
			Method:      "CASH",
			PaymentDate: &paymentDate,
			Description: "Counter sale",
		})
		require.NoError(t, err)

		assert.Equal(t, finance.PaymentMethodCash, resp.Method)
		entryRepo.AssertExpectations(t)
	})

	t.Run("payment for both counterparties is rejected", func(t *testing.T) {
		service, paymentRepo, _, _ := newPaymentService()

		_, err := service.Record(ctx, RecordPaymentRequest{
			VendorID:    &vendorID,
			ClientID:    &clientID,
			Amount:      decimal.NewFromInt(100),
			Type:        "DEBIT",
			PaymentDate: &paymentDate,
			Description: "ambiguous",
		})
		require.Error(t, err)
		paymentRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("entry save failure fails the recording", func(t *testing.T) {
		service, paymentRepo, entryRepo, _ := newPaymentService()

		paymentRepo.On("Save", ctx, mock.Anything).Return(nil)
		entryRepo.On("Save", ctx, mock.Anything).Return(assert.AnError)

		_, err := service.Record(ctx, RecordPaymentRequest{
			VendorID:    &vendorID,
			Amount:      decimal.NewFromInt(100),
			Type:        "DEBIT",
			PaymentDate: &paymentDate,
			Description: "doomed",
		})
		assert.Error(t, err)
	})
}

func TestPaymentService_Reconcile(t *testing.T) {
	ctx := context.Background()
	vendorID := uuid.New()

	service, paymentRepo, _, _ := newPaymentService()
	payment, err := finance.NewPayment(&vendorID, nil, moneyUSD(300), finance.PaymentTypeDebit,
		finance.PaymentMethodCheque, time.Now(), "Cheque 1182")
	require.NoError(t, err)
	payment.ClearDomainEvents()

	paymentRepo.On("FindByID", ctx, payment.ID).Return(payment, nil)
	paymentRepo.On("Save", ctx, payment).Return(nil)

	resp, err := service.Reconcile(ctx, payment.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsReconciled)
}

func TestPaymentService_TrialBalance(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	service, _, entryRepo, _ := newPaymentService()
	entryRepo.On("TotalDebits", ctx, start, end).Return(decimal.NewFromInt(7000), nil)
	entryRepo.On("TotalCredits", ctx, start, end).Return(decimal.NewFromInt(10500), nil)

	balance, err := service.TrialBalance(ctx, start, end)
	require.NoError(t, err)

	assert.True(t, balance.TotalDebits.Equal(decimal.NewFromInt(7000)))
	assert.True(t, balance.TotalCredits.Equal(decimal.NewFromInt(10500)))
	assert.True(t, balance.Balance.Equal(decimal.NewFromInt(3500)))
}
