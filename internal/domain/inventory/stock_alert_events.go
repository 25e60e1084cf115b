package inventory

import (
	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeStockAlert = "StockAlert"

// Event type constants
const (
	EventTypeStockAlertCreated      = "StockAlertCreated"
	EventTypeStockAlertAcknowledged = "StockAlertAcknowledged"
	EventTypeStockAlertResolved     = "StockAlertResolved"
)

// StockAlertCreatedEvent is raised when a new low-stock alert is opened
type StockAlertCreatedEvent struct {
	shared.BaseDomainEvent
	StockAlertID    uuid.UUID       `json:"stock_alert_id"`
	StockLedgerID   uuid.UUID       `json:"stock_ledger_id"`
	ItemID          uuid.UUID       `json:"item_id"`
	WarehouseID     uuid.UUID       `json:"warehouse_id"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinQuantity     decimal.Decimal `json:"min_quantity"`
}

// NewStockAlertCreatedEvent creates a new StockAlertCreatedEvent
func NewStockAlertCreatedEvent(alert *StockAlert) *StockAlertCreatedEvent {
	return &StockAlertCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAlertCreated, AggregateTypeStockAlert, alert.ID),
		StockAlertID:    alert.ID,
		StockLedgerID:   alert.StockLedgerID,
		ItemID:          alert.ItemID,
		WarehouseID:     alert.WarehouseID,
		CurrentQuantity: alert.CurrentQuantity,
		MinQuantity:     alert.MinQuantity,
	}
}

// EventType returns the event type name
func (e *StockAlertCreatedEvent) EventType() string {
	return EventTypeStockAlertCreated
}

// StockAlertAcknowledgedEvent is raised when an operator acknowledges an alert
type StockAlertAcknowledgedEvent struct {
	shared.BaseDomainEvent
	StockAlertID  uuid.UUID `json:"stock_alert_id"`
	StockLedgerID uuid.UUID `json:"stock_ledger_id"`
}

// NewStockAlertAcknowledgedEvent creates a new StockAlertAcknowledgedEvent
func NewStockAlertAcknowledgedEvent(alert *StockAlert) *StockAlertAcknowledgedEvent {
	return &StockAlertAcknowledgedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAlertAcknowledged, AggregateTypeStockAlert, alert.ID),
		StockAlertID:    alert.ID,
		StockLedgerID:   alert.StockLedgerID,
	}
}

// EventType returns the event type name
func (e *StockAlertAcknowledgedEvent) EventType() string {
	return EventTypeStockAlertAcknowledged
}

// StockAlertResolvedEvent is raised when an alert is closed
type StockAlertResolvedEvent struct {
	shared.BaseDomainEvent
	StockAlertID  uuid.UUID `json:"stock_alert_id"`
	StockLedgerID uuid.UUID `json:"stock_ledger_id"`
}

// NewStockAlertResolvedEvent creates a new StockAlertResolvedEvent
func NewStockAlertResolvedEvent(alert *StockAlert) *StockAlertResolvedEvent {
	return &StockAlertResolvedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockAlertResolved, AggregateTypeStockAlert, alert.ID),
		StockAlertID:    alert.ID,
		StockLedgerID:   alert.StockLedgerID,
	}
}

// EventType returns the event type name
func (e *StockAlertResolvedEvent) EventType() string {
	return EventTypeStockAlertResolved
}
