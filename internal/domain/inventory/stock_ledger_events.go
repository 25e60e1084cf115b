package inventory

import (
	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypeStockLedger = "StockLedger"

// Event type constants
const (
	EventTypeStockIncreased           = "StockIncreased"
	EventTypeStockReserved            = "StockReserved"
	EventTypeStockReservationReleased = "StockReservationReleased"
	EventTypeStockReduced             = "StockReduced"
	EventTypeAverageCostChanged       = "AverageCostChanged"
	EventTypeStockBelowMinimum        = "StockBelowMinimum"
)

// StockIncreasedEvent is raised when on-hand stock grows (purchase receipt)
type StockIncreasedEvent struct {
	shared.BaseDomainEvent
	StockLedgerID uuid.UUID       `json:"stock_ledger_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	NewQuantity   decimal.Decimal `json:"new_quantity"`
}

// NewStockIncreasedEvent creates a new StockIncreasedEvent
func NewStockIncreasedEvent(ledger *StockLedger, quantity, unitCost decimal.Decimal) *StockIncreasedEvent {
	return &StockIncreasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockIncreased, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		Quantity:        quantity,
		UnitCost:        unitCost,
		NewQuantity:     ledger.Quantity,
	}
}

// EventType returns the event type name
func (e *StockIncreasedEvent) EventType() string {
	return EventTypeStockIncreased
}

// StockReservedEvent is raised when available stock is committed to a sales order
type StockReservedEvent struct {
	shared.BaseDomainEvent
	StockLedgerID uuid.UUID       `json:"stock_ledger_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	NewReserved   decimal.Decimal `json:"new_reserved"`
	NewAvailable  decimal.Decimal `json:"new_available"`
}

// NewStockReservedEvent creates a new StockReservedEvent
func NewStockReservedEvent(ledger *StockLedger, quantity decimal.Decimal) *StockReservedEvent {
	return &StockReservedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReserved, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		Quantity:        quantity,
		NewReserved:     ledger.ReservedQuantity,
		NewAvailable:    ledger.AvailableQuantity,
	}
}

// EventType returns the event type name
func (e *StockReservedEvent) EventType() string {
	return EventTypeStockReserved
}

// StockReservationReleasedEvent is raised when a reservation is returned to
// the available pool, typically on sales order cancellation
type StockReservationReleasedEvent struct {
	shared.BaseDomainEvent
	StockLedgerID uuid.UUID       `json:"stock_ledger_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	NewReserved   decimal.Decimal `json:"new_reserved"`
}

// NewStockReservationReleasedEvent creates a new StockReservationReleasedEvent
func NewStockReservationReleasedEvent(ledger *StockLedger, quantity decimal.Decimal) *StockReservationReleasedEvent {
	return &StockReservationReleasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReservationReleased, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		Quantity:        quantity,
		NewReserved:     ledger.ReservedQuantity,
	}
}

// EventType returns the event type name
func (e *StockReservationReleasedEvent) EventType() string {
	return EventTypeStockReservationReleased
}

// StockReducedEvent is raised when physical stock leaves the warehouse
type StockReducedEvent struct {
	shared.BaseDomainEvent
	StockLedgerID uuid.UUID       `json:"stock_ledger_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	FromReserved  bool            `json:"from_reserved"`
	NewQuantity   decimal.Decimal `json:"new_quantity"`
}

// NewStockReducedEvent creates a new StockReducedEvent
func NewStockReducedEvent(ledger *StockLedger, quantity decimal.Decimal, fromReserved bool) *StockReducedEvent {
	return &StockReducedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockReduced, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		Quantity:        quantity,
		FromReserved:    fromReserved,
		NewQuantity:     ledger.Quantity,
	}
}

// EventType returns the event type name
func (e *StockReducedEvent) EventType() string {
	return EventTypeStockReduced
}

// AverageCostChangedEvent is raised when a receipt moves the weighted average cost
type AverageCostChangedEvent struct {
	shared.BaseDomainEvent
	StockLedgerID uuid.UUID       `json:"stock_ledger_id"`
	ItemID        uuid.UUID       `json:"item_id"`
	WarehouseID   uuid.UUID       `json:"warehouse_id"`
	OldCost       decimal.Decimal `json:"old_cost"`
	NewCost       decimal.Decimal `json:"new_cost"`
}

// NewAverageCostChangedEvent creates a new AverageCostChangedEvent
func NewAverageCostChangedEvent(ledger *StockLedger, oldCost, newCost decimal.Decimal) *AverageCostChangedEvent {
	return &AverageCostChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAverageCostChanged, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		OldCost:         oldCost,
		NewCost:         newCost,
	}
}

// EventType returns the event type name
func (e *AverageCostChangedEvent) EventType() string {
	return EventTypeAverageCostChanged
}

// StockBelowMinimumEvent is raised after a quantity mutation leaves on-hand
// stock at or below the configured minimum. The alert monitor subscribes to
// it; alert creation is best-effort and never blocks the stock write.
type StockBelowMinimumEvent struct {
	shared.BaseDomainEvent
	StockLedgerID   uuid.UUID       `json:"stock_ledger_id"`
	ItemID          uuid.UUID       `json:"item_id"`
	WarehouseID     uuid.UUID       `json:"warehouse_id"`
	CurrentQuantity decimal.Decimal `json:"current_quantity"`
	MinimumQuantity decimal.Decimal `json:"minimum_quantity"`
}

// NewStockBelowMinimumEvent creates a new StockBelowMinimumEvent
func NewStockBelowMinimumEvent(ledger *StockLedger) *StockBelowMinimumEvent {
	return &StockBelowMinimumEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowMinimum, AggregateTypeStockLedger, ledger.ID),
		StockLedgerID:   ledger.ID,
		ItemID:          ledger.ItemID,
		WarehouseID:     ledger.WarehouseID,
		CurrentQuantity: ledger.Quantity,
		MinimumQuantity: ledger.MinQuantity,
	}
}

// EventType returns the event type name
func (e *StockBelowMinimumEvent) EventType() string {
	return EventTypeStockBelowMinimum
}
