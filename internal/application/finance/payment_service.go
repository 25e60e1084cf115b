package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
)

// PaymentService records payments and keeps the bookkeeping ledger in
// step with them.
//
// Every payment produces exactly one ledger entry, written in the same
// transaction: debit payments book money out, credit payments money in.
// The ledger itself is append-only.
type PaymentService struct {
	txScope        TransactionScope
	paymentRepo    finance.PaymentRepository
	entryRepo      finance.LedgerEntryRepository
	eventPublisher shared.EventPublisher
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(txScope TransactionScope, paymentRepo finance.PaymentRepository, entryRepo finance.LedgerEntryRepository) *PaymentService {
	return &PaymentService{
		txScope:     txScope,
		paymentRepo: paymentRepo,
		entryRepo:   entryRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Record records a payment and books its ledger entry atomically
func (s *PaymentService) Record(ctx context.Context, req RecordPaymentRequest) (*PaymentResponse, error) {
	paymentDate := time.Now()
	if req.PaymentDate != nil {
		paymentDate = *req.PaymentDate
	}

	payment, err := finance.NewPayment(
		req.VendorID,
		req.ClientID,
		valueobject.NewMoneyUSD(req.Amount),
		finance.PaymentType(req.Type),
		finance.PaymentMethod(req.Method),
		paymentDate,
		req.Description,
	)
	if err != nil {
		return nil, err
	}
	payment.ReferenceNumber = req.ReferenceNumber
	if req.PurchaseOrderID != nil {
		payment.LinkPurchaseOrder(*req.PurchaseOrderID)
	}
	if req.SalesOrderID != nil {
		payment.LinkSalesOrder(*req.SalesOrderID)
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}
		return repos.LedgerEntryRepo().Save(ctx, payment.ToLedgerEntry())
	})
	if err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		_ = s.eventPublisher.Publish(ctx, payment.GetDomainEvents()...)
		payment.ClearDomainEvents()
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// Reconcile flags a payment as matched against a bank statement
func (s *PaymentService) Reconcile(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	var payment *finance.Payment

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payment, err = repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		payment.MarkReconciled()
		return repos.PaymentRepo().Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a payment by ID
func (s *PaymentService) GetByID(ctx context.Context, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, filter PaymentListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := buildPaymentFilter(&filter)

	var (
		payments []finance.Payment
		err      error
	)
	switch {
	case filter.VendorID != nil:
		payments, err = s.paymentRepo.FindByVendor(ctx, *filter.VendorID, domainFilter)
	case filter.ClientID != nil:
		payments, err = s.paymentRepo.FindByClient(ctx, *filter.ClientID, domainFilter)
	default:
		start, end := dateRangeOrDefault(filter.StartDate, filter.EndDate)
		payments, err = s.paymentRepo.FindByDateRange(ctx, start, end, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.paymentRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// LedgerEntries lists bookkeeping entries within a date range
func (s *PaymentService) LedgerEntries(ctx context.Context, start, end time.Time, filter PaymentListFilter) ([]LedgerEntryResponse, int64, error) {
	domainFilter := buildPaymentFilter(&filter)

	entries, err := s.entryRepo.FindByDateRange(ctx, start, end, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.entryRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses, total, nil
}

// TrialBalance sums debits and credits over a date range
func (s *PaymentService) TrialBalance(ctx context.Context, start, end time.Time) (*TrialBalanceResponse, error) {
	debits, err := s.entryRepo.TotalDebits(ctx, start, end)
	if err != nil {
		return nil, err
	}
	credits, err := s.entryRepo.TotalCredits(ctx, start, end)
	if err != nil {
		return nil, err
	}

	return &TrialBalanceResponse{
		StartDate:    start,
		EndDate:      end,
		TotalDebits:  debits,
		TotalCredits: credits,
		Balance:      credits.Sub(debits),
	}, nil
}

// dateRangeOrDefault fills an open date range with a wide default window
func dateRangeOrDefault(start, end *time.Time) (time.Time, time.Time) {
	s := time.Time{}
	e := time.Now().AddDate(0, 0, 1)
	if start != nil {
		s = *start
	}
	if end != nil {
		e = *end
	}
	return s, e
}

// buildPaymentFilter translates the API filter to the domain filter
func buildPaymentFilter(filter *PaymentListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "payment_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}
	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
}
