package trade

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/partserp/backend/internal/domain/trade"
)

// PurchaseReceivingService drives a purchase order through creation and
// receiving.
//
// Receiving is the only trigger for a stock increase: every received
// quantity is pushed into the ledger at the line's landed cost per unit,
// then recorded as applied on the line so a retried receipt can never
// double-count. Cost of goods is booked to the ledger when the order
// completes.
type PurchaseReceivingService struct {
	txScope        TransactionScope
	orderRepo      trade.PurchaseOrderRepository
	eventPublisher shared.EventPublisher
}

// NewPurchaseReceivingService creates a new PurchaseReceivingService
func NewPurchaseReceivingService(txScope TransactionScope, orderRepo trade.PurchaseOrderRepository) *PurchaseReceivingService {
	return &PurchaseReceivingService{
		txScope:   txScope,
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *PurchaseReceivingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

func (s *PurchaseReceivingService) publishEvents(ctx context.Context, aggregates ...interface {
	GetDomainEvents() []shared.DomainEvent
	ClearDomainEvents()
}) {
	if s.eventPublisher == nil {
		return
	}
	for _, agg := range aggregates {
		events := agg.GetDomainEvents()
		if len(events) == 0 {
			continue
		}
		_ = s.eventPublisher.Publish(ctx, events...)
		agg.ClearDomainEvents()
	}
}

// Create creates a purchase order with its lines. No stock effect.
func (s *PurchaseReceivingService) Create(ctx context.Context, req CreatePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	orderDate := timeOrZero(req.OrderDate)
	order, err := trade.NewPurchaseOrder(req.OrderNumber, req.VendorID, req.VendorName, req.WarehouseID, orderDate)
	if err != nil {
		return nil, err
	}
	order.ExpectedDate = req.ExpectedDate
	order.Notes = req.Notes

	for _, line := range req.Lines {
		unitCost := valueobject.NewMoneyUSD(line.UnitCost)
		if _, err := order.AddLine(line.ItemID, line.ItemName, line.ItemSKU, line.Quantity, unitCost,
			line.FreightCost, line.CustomsDuty, line.OtherCosts); err != nil {
			return nil, err
		}
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// UpdateLine updates a pending order line's quantity and costs. Landed
// costs are recomputed; frozen once anything was received.
func (s *PurchaseReceivingService) UpdateLine(ctx context.Context, orderID, lineID uuid.UUID, req UpdatePurchaseLineRequest) (*PurchaseOrderResponse, error) {
	var order *trade.PurchaseOrder

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.PurchaseOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		unitCost := valueobject.NewMoneyUSD(req.UnitCost)
		if err := order.UpdateLine(lineID, req.Quantity, unitCost, req.FreightCost, req.CustomsDuty, req.OtherCosts); err != nil {
			return err
		}
		return repos.PurchaseOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// SetWarehouse sets the destination warehouse before receiving
func (s *PurchaseReceivingService) SetWarehouse(ctx context.Context, orderID uuid.UUID, req SetWarehouseRequest) (*PurchaseOrderResponse, error) {
	var order *trade.PurchaseOrder

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.PurchaseOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := order.SetWarehouse(req.WarehouseID); err != nil {
			return err
		}
		return repos.PurchaseOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Receive records arrived quantities and pushes the stock into the ledger
// at each line's landed cost per unit. Omitting the receipt lines receives
// every line's full outstanding quantity. The order, its lines and the
// ledger rows change in one transaction; a validation failure on any
// receipt line leaves everything untouched.
func (s *PurchaseReceivingService) Receive(ctx context.Context, orderID uuid.UUID, req ReceivePurchaseOrderRequest) (*PurchaseOrderResponse, error) {
	var (
		order   *trade.PurchaseOrder
		touched []*inventory.StockLedger
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.PurchaseOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		receipts := make([]trade.PurchaseReceipt, 0, len(order.Lines))
		if len(req.Receipts) == 0 {
			for _, line := range order.Lines {
				if remaining := line.RemainingQuantity(); remaining.IsPositive() {
					receipts = append(receipts, trade.PurchaseReceipt{LineID: line.ID, Quantity: remaining})
				}
			}
		} else {
			for _, r := range req.Receipts {
				receipts = append(receipts, trade.PurchaseReceipt{LineID: r.LineID, Quantity: r.Quantity})
			}
		}

		if err := order.ApplyReceipts(receipts); err != nil {
			return err
		}

		for _, line := range sortedUnappliedLines(order) {
			unapplied := line.UnappliedQuantity()
			ledger, err := repos.LedgerRepo().GetOrCreateForUpdate(ctx, line.ItemID, *order.WarehouseID)
			if err != nil {
				return err
			}
			if err := ledger.Increase(unapplied, valueobject.NewMoneyUSD(line.LandedCostPerUnit)); err != nil {
				return err
			}
			if err := repos.LedgerRepo().Save(ctx, ledger); err != nil {
				return err
			}
			if err := order.GetLine(line.ID).MarkStockApplied(unapplied); err != nil {
				return err
			}
			touched = append(touched, ledger)
		}

		if order.IsReceived() {
			entry := finance.NewPurchaseLedgerEntry(order.ID, order.OrderNumber, order.OrderDate, order.TotalAmount)
			if err := repos.LedgerEntryRepo().Save(ctx, entry); err != nil {
				return err
			}
		}

		return repos.PurchaseOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	for _, ledger := range touched {
		s.publishEvents(ctx, ledger)
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// Cancel cancels a pending order. Orders with any received stock cannot be
// cancelled; reversing a receipt is explicitly unsupported.
func (s *PurchaseReceivingService) Cancel(ctx context.Context, orderID uuid.UUID, reason string) (*PurchaseOrderResponse, error) {
	var order *trade.PurchaseOrder

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.PurchaseOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.IsCancelled() {
			return nil
		}
		if err := order.Cancel(reason); err != nil {
			return err
		}
		return repos.PurchaseOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order by ID
func (s *PurchaseReceivingService) GetByID(ctx context.Context, orderID uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a purchase order by its number
func (s *PurchaseReceivingService) GetByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders with filtering and pagination
func (s *PurchaseReceivingService) List(ctx context.Context, filter OrderListFilter) ([]PurchaseOrderResponse, int64, error) {
	domainFilter := buildOrderFilter(&filter)

	var (
		orders []trade.PurchaseOrder
		err    error
	)
	switch {
	case filter.Status != "":
		status := trade.PurchaseOrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown purchase order status")
		}
		orders, err = s.orderRepo.FindByStatus(ctx, status, domainFilter)
	case filter.PartnerID != nil:
		orders, err = s.orderRepo.FindByVendor(ctx, *filter.PartnerID, domainFilter)
	case filter.StartDate != nil && filter.EndDate != nil:
		orders, err = s.orderRepo.FindByDateRange(ctx, *filter.StartDate, *filter.EndDate, domainFilter)
	default:
		orders, err = s.orderRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.orderRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PurchaseOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToPurchaseOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// sortedUnappliedLines returns the lines with stock still to apply, sorted
// by item ID to keep the ledger lock order fixed
func sortedUnappliedLines(order *trade.PurchaseOrder) []trade.PurchaseLine {
	lines := make([]trade.PurchaseLine, 0, len(order.Lines))
	for _, line := range order.Lines {
		if line.UnappliedQuantity().IsPositive() {
			lines = append(lines, line)
		}
	}
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ItemID.String() < lines[j].ItemID.String()
	})
	return lines
}

// timeOrZero dereferences an optional time, defaulting to now via the
// aggregate constructors
func timeOrZero(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// buildOrderFilter translates the API filter to the domain filter
func buildOrderFilter(filter *OrderListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "order_date"
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
