package trade

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/finance"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/partserp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SalesFulfillmentService drives a sales order through its lifecycle and
// keeps the stock ledger consistent with it.
//
// Order state and its stock effect always change in one transaction:
// creation reserves every line or fails whole, shipping reduces on-hand
// stock exactly once (StockReduced guards retries), cancellation releases
// whatever is still reserved. Ledger rows are always locked in (item,
// warehouse) order so two orders over the same items cannot deadlock.
type SalesFulfillmentService struct {
	txScope        TransactionScope
	orderRepo      trade.SalesOrderRepository
	eventPublisher shared.EventPublisher
}

// NewSalesFulfillmentService creates a new SalesFulfillmentService
func NewSalesFulfillmentService(txScope TransactionScope, orderRepo trade.SalesOrderRepository) *SalesFulfillmentService {
	return &SalesFulfillmentService{
		txScope:   txScope,
		orderRepo: orderRepo,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SalesFulfillmentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// publishEvents publishes accumulated domain events after the transaction
// committed. Alerting and other listeners are best-effort by design.
func (s *SalesFulfillmentService) publishEvents(ctx context.Context, aggregates ...interface {
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

// Create creates a sales order and reserves stock for every line at the
// order warehouse. Any line the warehouse cannot cover fails the whole
// creation; nothing is persisted.
func (s *SalesFulfillmentService) Create(ctx context.Context, req CreateSalesOrderRequest) (*SalesOrderResponse, error) {
	orderDate := timeOrZero(req.OrderDate)
	order, err := trade.NewSalesOrder(req.OrderNumber, req.ClientID, req.ClientName, req.WarehouseID, orderDate)
	if err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		unitPrice := valueobject.NewMoneyUSD(line.UnitPrice)
		if _, err := order.AddLine(line.ItemID, line.ItemName, line.ItemSKU, line.Quantity, unitPrice, line.DiscountPercentage); err != nil {
			return nil, err
		}
	}
	if req.Discount != nil {
		if err := order.ApplyDiscount(valueobject.NewMoneyUSD(*req.Discount)); err != nil {
			return nil, err
		}
	}
	order.Notes = req.Notes

	var touched []*inventory.StockLedger
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for _, line := range sortedSalesLines(order) {
			ledger, err := repos.LedgerRepo().GetOrCreateForUpdate(ctx, line.ItemID, order.WarehouseID)
			if err != nil {
				return err
			}
			if err := ledger.Reserve(line.Quantity); err != nil {
				return err
			}
			if err := repos.LedgerRepo().Save(ctx, ledger); err != nil {
				return err
			}
			touched = append(touched, ledger)
		}
		return repos.SalesOrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	for _, ledger := range touched {
		s.publishEvents(ctx, ledger)
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// UpdateLineQuantity changes a pending order line's quantity and adjusts
// the reservation by the delta only: an increase reserves the additional
// quantity (and fails when the warehouse cannot cover it), a decrease
// releases the difference.
func (s *SalesFulfillmentService) UpdateLineQuantity(ctx context.Context, orderID, lineID uuid.UUID, quantity decimal.Decimal) (*SalesOrderResponse, error) {
	var (
		order  *trade.SalesOrder
		ledger *inventory.StockLedger
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.SalesOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		line := order.GetLine(lineID)
		if line == nil {
			return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
		}

		ledger, err = repos.LedgerRepo().GetForUpdate(ctx, line.ItemID, order.WarehouseID)
		if err != nil {
			return err
		}

		previous, err := order.UpdateLineQuantity(lineID, quantity)
		if err != nil {
			return err
		}

		delta := quantity.Sub(previous)
		switch {
		case delta.IsPositive():
			if err := ledger.Reserve(delta); err != nil {
				return err
			}
		case delta.IsNegative():
			if _, err := ledger.ReleaseReservation(delta.Neg()); err != nil {
				return err
			}
		default:
			return repos.SalesOrderRepo().SaveWithLock(ctx, order)
		}
		if err := repos.LedgerRepo().Save(ctx, ledger); err != nil {
			return err
		}

		return repos.SalesOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	if ledger != nil {
		s.publishEvents(ctx, ledger)
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Confirm transitions a pending order to CONFIRMED. Stock stays reserved.
func (s *SalesFulfillmentService) Confirm(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	var order *trade.SalesOrder

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.SalesOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := order.Confirm(); err != nil {
			return err
		}
		return repos.SalesOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Ship transitions the order to SHIPPED and reduces on-hand stock for
// every line. The reduction happens at most once per order; a second ship
// attempt fails on the status transition before any stock is touched.
func (s *SalesFulfillmentService) Ship(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	return s.fulfill(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.MarkShipped()
	})
}

// Deliver transitions the order to DELIVERED. From SHIPPED this is a pure
// status stamp; a direct delivery also takes the shipment stock path.
func (s *SalesFulfillmentService) Deliver(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	return s.fulfill(ctx, orderID, func(order *trade.SalesOrder) error {
		return order.MarkDelivered()
	})
}

// fulfill runs a ship or deliver transition with its stock effect. Stock is
// reduced only when the order has not already done so; revenue is booked to
// the ledger at that same moment.
func (s *SalesFulfillmentService) fulfill(ctx context.Context, orderID uuid.UUID, transition func(*trade.SalesOrder) error) (*SalesOrderResponse, error) {
	var (
		order   *trade.SalesOrder
		touched []*inventory.StockLedger
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.SalesOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		needsReduction := !order.StockReduced
		wasReserved := order.HoldsReservation()

		if err := transition(order); err != nil {
			return err
		}

		if needsReduction && order.StockReduced {
			for _, line := range sortedSalesLines(order) {
				ledger, err := repos.LedgerRepo().GetForUpdate(ctx, line.ItemID, order.WarehouseID)
				if err != nil {
					return err
				}
				if err := ledger.Reduce(line.Quantity, wasReserved); err != nil {
					return err
				}
				if err := repos.LedgerRepo().Save(ctx, ledger); err != nil {
					return err
				}
				touched = append(touched, ledger)
			}
			entry := finance.NewSalesLedgerEntry(order.ID, order.OrderNumber, order.OrderDate, order.TotalAmount)
			if err := repos.LedgerEntryRepo().Save(ctx, entry); err != nil {
				return err
			}
		}

		return repos.SalesOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	for _, ledger := range touched {
		s.publishEvents(ctx, ledger)
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// Cancel cancels a not-yet-shipped order and releases its reservations.
// Cancelling an already cancelled order is a silent no-op.
func (s *SalesFulfillmentService) Cancel(ctx context.Context, orderID uuid.UUID, reason string) (*SalesOrderResponse, error) {
	var (
		order   *trade.SalesOrder
		touched []*inventory.StockLedger
	)

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.SalesOrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.IsCancelled() {
			return nil
		}

		wasReserved := order.HoldsReservation()
		if err := order.Cancel(reason); err != nil {
			return err
		}

		if wasReserved {
			for _, line := range sortedSalesLines(order) {
				ledger, err := repos.LedgerRepo().GetForUpdate(ctx, line.ItemID, order.WarehouseID)
				if err != nil {
					return err
				}
				if _, err := ledger.ReleaseReservation(line.Quantity); err != nil {
					return err
				}
				if err := repos.LedgerRepo().Save(ctx, ledger); err != nil {
					return err
				}
				touched = append(touched, ledger)
			}
		}

		return repos.SalesOrderRepo().SaveWithLock(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publishEvents(ctx, order)
	for _, ledger := range touched {
		s.publishEvents(ctx, ledger)
	}

	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a sales order by ID
func (s *SalesFulfillmentService) GetByID(ctx context.Context, orderID uuid.UUID) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// GetByOrderNumber retrieves a sales order by its number
func (s *SalesFulfillmentService) GetByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	response := ToSalesOrderResponse(order)
	return &response, nil
}

// List retrieves sales orders with filtering and pagination
func (s *SalesFulfillmentService) List(ctx context.Context, filter OrderListFilter) ([]SalesOrderResponse, int64, error) {
	domainFilter := buildOrderFilter(&filter)

	var (
		orders []trade.SalesOrder
		err    error
	)
	switch {
	case filter.Status != "":
		status := trade.SalesOrderStatus(filter.Status)
		if !status.IsValid() {
			return nil, 0, shared.NewDomainError("INVALID_STATUS", "Unknown sales order status")
		}
		orders, err = s.orderRepo.FindByStatus(ctx, status, domainFilter)
	case filter.PartnerID != nil:
		orders, err = s.orderRepo.FindByClient(ctx, *filter.PartnerID, domainFilter)
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

	responses := make([]SalesOrderResponse, len(orders))
	for i := range orders {
		responses[i] = ToSalesOrderResponse(&orders[i])
	}
	return responses, total, nil
}

// sortedSalesLines returns the order's lines sorted by item ID. Every flow
// that locks multiple ledger rows walks them in this order.
func sortedSalesLines(order *trade.SalesOrder) []trade.SalesLine {
	lines := make([]trade.SalesLine, len(order.Lines))
	copy(lines, order.Lines)
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].ItemID.String() < lines[j].ItemID.String()
	})
	return lines
}
