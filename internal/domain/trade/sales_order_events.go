package trade

import (
	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeSalesOrder = "SalesOrder"

// Event type constants
const (
	EventTypeSalesOrderCreated   = "SalesOrderCreated"
	EventTypeSalesOrderConfirmed = "SalesOrderConfirmed"
	EventTypeSalesOrderShipped   = "SalesOrderShipped"
	EventTypeSalesOrderDelivered = "SalesOrderDelivered"
	EventTypeSalesOrderCancelled = "SalesOrderCancelled"
)

// SalesOrderCreatedEvent is raised when a sales order is created with its
// reservations in place
type SalesOrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	ClientID    uuid.UUID `json:"client_id"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
}

// NewSalesOrderCreatedEvent creates a new SalesOrderCreatedEvent
func NewSalesOrderCreatedEvent(order *SalesOrder) *SalesOrderCreatedEvent {
	return &SalesOrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderCreated, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		ClientID:        order.ClientID,
		WarehouseID:     order.WarehouseID,
	}
}

// EventType returns the event type name
func (e *SalesOrderCreatedEvent) EventType() string {
	return EventTypeSalesOrderCreated
}

// SalesOrderConfirmedEvent is raised when a sales order is confirmed
type SalesOrderConfirmedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewSalesOrderConfirmedEvent creates a new SalesOrderConfirmedEvent
func NewSalesOrderConfirmedEvent(order *SalesOrder) *SalesOrderConfirmedEvent {
	return &SalesOrderConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderConfirmed, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		TotalAmount:     order.TotalAmount,
	}
}

// EventType returns the event type name
func (e *SalesOrderConfirmedEvent) EventType() string {
	return EventTypeSalesOrderConfirmed
}

// SalesOrderShippedEvent is raised when stock for the order was reduced
type SalesOrderShippedEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID       `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewSalesOrderShippedEvent creates a new SalesOrderShippedEvent
func NewSalesOrderShippedEvent(order *SalesOrder) *SalesOrderShippedEvent {
	return &SalesOrderShippedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderShipped, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		WarehouseID:     order.WarehouseID,
		TotalAmount:     order.TotalAmount,
	}
}

// EventType returns the event type name
func (e *SalesOrderShippedEvent) EventType() string {
	return EventTypeSalesOrderShipped
}

// SalesOrderDeliveredEvent is raised when the order reaches the client
type SalesOrderDeliveredEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
}

// NewSalesOrderDeliveredEvent creates a new SalesOrderDeliveredEvent
func NewSalesOrderDeliveredEvent(order *SalesOrder) *SalesOrderDeliveredEvent {
	return &SalesOrderDeliveredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderDelivered, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
	}
}

// EventType returns the event type name
func (e *SalesOrderDeliveredEvent) EventType() string {
	return EventTypeSalesOrderDelivered
}

// SalesOrderCancelledEvent is raised when the order is cancelled and its
// reservations were released
type SalesOrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Reason      string    `json:"reason"`
}

// NewSalesOrderCancelledEvent creates a new SalesOrderCancelledEvent
func NewSalesOrderCancelledEvent(order *SalesOrder) *SalesOrderCancelledEvent {
	return &SalesOrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSalesOrderCancelled, AggregateTypeSalesOrder, order.ID),
		OrderID:         order.ID,
		OrderNumber:     order.OrderNumber,
		Reason:          order.CancelReason,
	}
}

// EventType returns the event type name
func (e *SalesOrderCancelledEvent) EventType() string {
	return EventTypeSalesOrderCancelled
}
