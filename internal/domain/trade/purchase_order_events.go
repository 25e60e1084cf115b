package trade

import (
	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePurchaseOrder = "PurchaseOrder"

// Event type constants
const (
	EventTypePurchaseOrderCreated           = "PurchaseOrderCreated"
	EventTypePurchaseOrderPartiallyReceived = "PurchaseOrderPartiallyReceived"
	EventTypePurchaseOrderReceived          = "PurchaseOrderReceived"
	EventTypePurchaseOrderCancelled         = "PurchaseOrderCancelled"
)

// PurchaseOrderCreatedEvent is raised when a purchase order is created
type PurchaseOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	VendorID    uuid.UUID `json:"vendor_id"`
}

// NewPurchaseOrderCreatedEvent creates a new PurchaseOrderCreatedEvent
func NewPurchaseOrderCreatedEvent(order *PurchaseOrder) *PurchaseOrderCreatedEvent {
	return &PurchaseOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCreated, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		VendorID:        order.VendorID,
	}
}

// EventType returns the event type name
func (e *PurchaseOrderCreatedEvent) EventType() string {
	return EventTypePurchaseOrderCreated
}

// PurchaseOrderPartiallyReceivedEvent is raised when some but not all
// ordered quantities have arrived
type PurchaseOrderPartiallyReceivedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
}

// NewPurchaseOrderPartiallyReceivedEvent creates a new PurchaseOrderPartiallyReceivedEvent
func NewPurchaseOrderPartiallyReceivedEvent(order *PurchaseOrder) *PurchaseOrderPartiallyReceivedEvent {
	evt := &PurchaseOrderPartiallyReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderPartiallyReceived, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
	}
	if order.WarehouseID != nil {
		evt.WarehouseID = *order.WarehouseID
	}
	return evt
}

// EventType returns the event type name
func (e *PurchaseOrderPartiallyReceivedEvent) EventType() string {
	return EventTypePurchaseOrderPartiallyReceived
}

// PurchaseOrderReceivedEvent is raised when every line arrived in full and
// the received stock was pushed into the ledger
type PurchaseOrderReceivedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewPurchaseOrderReceivedEvent creates a new PurchaseOrderReceivedEvent
func NewPurchaseOrderReceivedEvent(order *PurchaseOrder) *PurchaseOrderReceivedEvent {
	evt := &PurchaseOrderReceivedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderReceived, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
	}
	if order.WarehouseID != nil {
		evt.WarehouseID = *order.WarehouseID
	}
	return evt
}

// EventType returns the event type name
func (e *PurchaseOrderReceivedEvent) EventType() string {
	return EventTypePurchaseOrderReceived
}

// PurchaseOrderCancelledEvent is raised when a pending order is cancelled
type PurchaseOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Reason      string    `json:"reason"`
}

// NewPurchaseOrderCancelledEvent creates a new PurchaseOrderCancelledEvent
func NewPurchaseOrderCancelledEvent(order *PurchaseOrder) *PurchaseOrderCancelledEvent {
	return &PurchaseOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePurchaseOrderCancelled, AggregateTypePurchaseOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Reason:          order.CancelReason,
	}
}

// EventType returns the event type name
func (e *PurchaseOrderCancelledEvent) EventType() string {
	return EventTypePurchaseOrderCancelled
}
