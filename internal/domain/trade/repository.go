package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// SalesOrderRepository defines the interface for sales order persistence
type SalesOrderRepository interface {
	// FindByID finds a sales order by its ID, lines included
	FindByID(ctx context.Context, id uuid.UUID) (*SalesOrder, error)

	// FindByOrderNumber finds a sales order by its unique number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*SalesOrder, error)

	// FindAll finds sales orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]SalesOrder, error)

	// FindByStatus finds sales orders with a given status
	FindByStatus(ctx context.Context, status SalesOrderStatus, filter shared.Filter) ([]SalesOrder, error)

	// FindByClient finds sales orders for a client
	FindByClient(ctx context.Context, clientID uuid.UUID, filter shared.Filter) ([]SalesOrder, error)

	// FindByDateRange finds sales orders with order_date within [start, end]
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]SalesOrder, error)

	// Save creates or updates a sales order with its lines. A duplicate
	// order number surfaces as DUPLICATE_ORDER_NUMBER.
	Save(ctx context.Context, order *SalesOrder) error

	// SaveWithLock saves with an optimistic version check; returns
	// CONCURRENCY_CONFLICT when the order changed underneath
	SaveWithLock(ctx context.Context, order *SalesOrder) error

	// SumTotalByStatusAndDateRange sums total_amount over orders whose
	// status is in the given set and order_date within [start, end]
	SumTotalByStatusAndDateRange(ctx context.Context, statuses []SalesOrderStatus, start, end time.Time) (decimal.Decimal, error)

	// ExistsByOrderNumber checks if an order number is taken
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// Count counts sales orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// PurchaseOrderRepository defines the interface for purchase order persistence
type PurchaseOrderRepository interface {
	// FindByID finds a purchase order by its ID, lines included
	FindByID(ctx context.Context, id uuid.UUID) (*PurchaseOrder, error)

	// FindByOrderNumber finds a purchase order by its unique number
	FindByOrderNumber(ctx context.Context, orderNumber string) (*PurchaseOrder, error)

	// FindAll finds purchase orders matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByStatus finds purchase orders with a given status
	FindByStatus(ctx context.Context, status PurchaseOrderStatus, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByVendor finds purchase orders for a vendor
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]PurchaseOrder, error)

	// FindByDateRange finds purchase orders with order_date within [start, end]
	FindByDateRange(ctx context.Context, start, end time.Time, filter shared.Filter) ([]PurchaseOrder, error)

	// Save creates or updates a purchase order with its lines. A duplicate
	// order number surfaces as DUPLICATE_ORDER_NUMBER.
	Save(ctx context.Context, order *PurchaseOrder) error

	// SaveWithLock saves with an optimistic version check; returns
	// CONCURRENCY_CONFLICT when the order changed underneath
	SaveWithLock(ctx context.Context, order *PurchaseOrder) error

	// SumTotalByStatusAndDateRange sums total_amount over orders whose
	// status is in the given set and order_date within [start, end]
	SumTotalByStatusAndDateRange(ctx context.Context, statuses []PurchaseOrderStatus, start, end time.Time) (decimal.Decimal, error)

	// ExistsByOrderNumber checks if an order number is taken
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)

	// Count counts purchase orders matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
