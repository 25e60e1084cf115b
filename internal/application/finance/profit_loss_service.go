package finance

import (
	"context"

	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/trade"
)

// ProfitLossService computes and stores profit and loss statements.
//
// Revenue counts sales orders that shipped or delivered in the period,
// cost of goods counts purchase orders fully received in it, and expenses
// count debit payments. Recomputing the same period overwrites the stored
// report, so figures follow late-arriving orders.
type ProfitLossService struct {
	salesOrderRepo    trade.SalesOrderRepository
	purchaseOrderRepo trade.PurchaseOrderRepository
	paymentRepo       finance.PaymentRepository
	reportRepo        finance.ProfitLossRepository
}

// NewProfitLossService creates a new ProfitLossService
func NewProfitLossService(
	salesOrderRepo trade.SalesOrderRepository,
	purchaseOrderRepo trade.PurchaseOrderRepository,
	paymentRepo finance.PaymentRepository,
	reportRepo finance.ProfitLossRepository,
) *ProfitLossService {
	return &ProfitLossService{
		salesOrderRepo:    salesOrderRepo,
		purchaseOrderRepo: purchaseOrderRepo,
		paymentRepo:       paymentRepo,
		reportRepo:        reportRepo,
	}
}

// revenueStatuses are the sales order statuses counted as realized revenue
var revenueStatuses = []trade.SalesOrderStatus{
	trade.SalesOrderStatusShipped,
	trade.SalesOrderStatusDelivered,
}

// costStatuses are the purchase order statuses counted as cost of goods
var costStatuses = []trade.PurchaseOrderStatus{
	trade.PurchaseOrderStatusReceived,
}

// Calculate computes the statement for a period and upserts the report
func (s *ProfitLossService) Calculate(ctx context.Context, req CalculateProfitLossRequest) (*ProfitLossResponse, error) {
	if req.PeriodEnd.Before(req.PeriodStart) {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Period end cannot be before period start")
	}

	revenue, err := s.salesOrderRepo.SumTotalByStatusAndDateRange(ctx, revenueStatuses, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	costOfGoods, err := s.purchaseOrderRepo.SumTotalByStatusAndDateRange(ctx, costStatuses, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	expenses, err := s.paymentRepo.SumByTypeAndDateRange(ctx, finance.PaymentTypeDebit, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}

	report, err := finance.NewProfitLossReport(req.PeriodStart, req.PeriodEnd, revenue, costOfGoods, expenses)
	if err != nil {
		return nil, err
	}
	if err := s.reportRepo.Upsert(ctx, report); err != nil {
		return nil, err
	}

	response := ToProfitLossResponse(report)
	return &response, nil
}

// GetByPeriod retrieves the stored report for an exact period
func (s *ProfitLossService) GetByPeriod(ctx context.Context, req CalculateProfitLossRequest) (*ProfitLossResponse, error) {
	report, err := s.reportRepo.FindByPeriod(ctx, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, err
	}
	response := ToProfitLossResponse(report)
	return &response, nil
}

// ListRecent lists stored reports, most recent period first
func (s *ProfitLossService) ListRecent(ctx context.Context, page, pageSize int) ([]ProfitLossResponse, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	filter := shared.Filter{
		Page:     page,
		PageSize: pageSize,
		OrderBy:  "period_end",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}

	reports, err := s.reportRepo.FindRecent(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ProfitLossResponse, len(reports))
	for i := range reports {
		responses[i] = ToProfitLossResponse(&reports[i])
	}
	return responses, nil
}
