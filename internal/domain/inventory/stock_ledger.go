package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// StockLedger tracks stock of one item at one warehouse.
// It is the aggregate root for all stock mutations; the composite
// identifier is ItemID + WarehouseID.
//
// Quantity is physical on-hand stock, ReservedQuantity the portion
// committed to open sales orders. AvailableQuantity is always derived as
// quantity - reserved and recomputed on every mutation; it is persisted
// for query convenience but never written independently.
type StockLedger struct {
	shared.BaseAggregateRoot
	ItemID            uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_ledger_item_warehouse,priority:1"`
	WarehouseID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_ledger_item_warehouse,priority:2"`
	Quantity          decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Physical on-hand
	ReservedQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Committed to open sales orders
	AvailableQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Quantity - Reserved, derived
	MinQuantity       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Low stock threshold
	MaxQuantity       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Overstock threshold, zero means unset
	AverageCost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Weighted average unit cost
	LastRestocked     *time.Time      `gorm:""`
}

// TableName returns the table name for GORM
func (StockLedger) TableName() string {
	return "stock_ledgers"
}

// NewStockLedger creates an empty ledger row for an item-warehouse pair
func NewStockLedger(itemID, warehouseID uuid.UUID) (*StockLedger, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.ErrMissingWarehouse
	}

	return &StockLedger{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		WarehouseID:       warehouseID,
		Quantity:          decimal.Zero,
		ReservedQuantity:  decimal.Zero,
		AvailableQuantity: decimal.Zero,
		MinQuantity:       decimal.Zero,
		MaxQuantity:       decimal.Zero,
		AverageCost:       decimal.Zero,
	}, nil
}

// recalculateAvailable keeps the derived column in sync; callers mutate
// Quantity/ReservedQuantity and invoke this before returning.
func (l *StockLedger) recalculateAvailable() {
	l.AvailableQuantity = l.Quantity.Sub(l.ReservedQuantity)
}

// touch stamps the modification and bumps the optimistic version.
func (l *StockLedger) touch() {
	l.UpdatedAt = time.Now()
	l.IncrementVersion()
}

// Increase adds received stock and recomputes the weighted average cost:
//
//	new_avg = (old_qty*old_avg + qty*unit_cost) / (old_qty + qty)
//
// When the ledger was empty the new cost is simply the incoming unit cost.
func (l *StockLedger) Increase(quantity decimal.Decimal, unitCost valueobject.Money) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	oldQuantity := l.Quantity
	oldCost := l.AverageCost

	newQuantity := oldQuantity.Add(quantity)
	if oldQuantity.IsZero() {
		l.AverageCost = unitCost.Amount()
	} else {
		totalValue := oldQuantity.Mul(oldCost).Add(quantity.Mul(unitCost.Amount()))
		l.AverageCost = totalValue.Div(newQuantity).Round(4)
	}

	l.Quantity = newQuantity
	now := time.Now()
	l.LastRestocked = &now
	l.recalculateAvailable()
	l.touch()

	l.AddDomainEvent(NewStockIncreasedEvent(l, quantity, unitCost.Amount()))
	if !oldCost.Equal(l.AverageCost) {
		l.AddDomainEvent(NewAverageCostChangedEvent(l, oldCost, l.AverageCost))
	}
	l.emitLevelEvent()

	return nil
}

// Reserve commits available stock to an open sales order.
// Fails with InsufficientStockError when available < quantity so the
// caller can surface requested vs. available without another read.
func (l *StockLedger) Reserve(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if l.AvailableQuantity.LessThan(quantity) {
		return NewInsufficientStockError(l.ItemID, l.WarehouseID, quantity, l.AvailableQuantity)
	}

	l.ReservedQuantity = l.ReservedQuantity.Add(quantity)
	l.recalculateAvailable()
	l.touch()

	l.AddDomainEvent(NewStockReservedEvent(l, quantity))

	return nil
}

// ReleaseReservation returns reserved stock to the available pool.
// The release is clamped at zero so cancelling an order twice, or
// releasing more than is outstanding, stays harmless; the quantity
// actually released is returned for logging.
func (l *StockLedger) ReleaseReservation(quantity decimal.Decimal) (decimal.Decimal, error) {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, shared.ErrInvalidQuantity
	}

	released := quantity
	if l.ReservedQuantity.LessThan(quantity) {
		released = l.ReservedQuantity
	}

	l.ReservedQuantity = l.ReservedQuantity.Sub(released)
	l.recalculateAvailable()
	l.touch()

	if released.IsPositive() {
		l.AddDomainEvent(NewStockReservationReleasedEvent(l, released))
	}

	return released, nil
}

// Reduce removes physical stock, typically at shipment. With fromReserved
// the same quantity is also released from the reservation pool, which is
// the normal path for sales lines reserved at order creation. A plain
// reduction may only consume unreserved stock; taking more would leave
// reserved above on-hand.
func (l *StockLedger) Reduce(quantity decimal.Decimal, fromReserved bool) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}
	if fromReserved {
		if l.Quantity.LessThan(quantity) {
			return NewInsufficientStockError(l.ItemID, l.WarehouseID, quantity, l.Quantity)
		}
	} else if l.AvailableQuantity.LessThan(quantity) {
		return NewInsufficientStockError(l.ItemID, l.WarehouseID, quantity, l.AvailableQuantity)
	}

	l.Quantity = l.Quantity.Sub(quantity)
	if fromReserved {
		released := quantity
		if l.ReservedQuantity.LessThan(quantity) {
			released = l.ReservedQuantity
		}
		l.ReservedQuantity = l.ReservedQuantity.Sub(released)
	}
	l.recalculateAvailable()
	l.touch()

	l.AddDomainEvent(NewStockReducedEvent(l, quantity, fromReserved))
	l.emitLevelEvent()

	return nil
}

// SetMinQuantity sets the low stock threshold
func (l *StockLedger) SetMinQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.ErrInvalidQuantity
	}
	l.MinQuantity = quantity
	l.touch()
	return nil
}

// SetMaxQuantity sets the overstock threshold
func (l *StockLedger) SetMaxQuantity(quantity decimal.Decimal) error {
	if quantity.IsNegative() {
		return shared.ErrInvalidQuantity
	}
	l.MaxQuantity = quantity
	l.touch()
	return nil
}

// emitLevelEvent publishes a low stock event after quantity mutations.
// Reservations do not change on-hand quantity and never emit it.
func (l *StockLedger) emitLevelEvent() {
	if l.IsBelowMinimum() {
		l.AddDomainEvent(NewStockBelowMinimumEvent(l))
	}
}

// IsBelowMinimum reports whether on-hand quantity is at or below the
// configured minimum.
func (l *StockLedger) IsBelowMinimum() bool {
	return l.Quantity.LessThanOrEqual(l.MinQuantity)
}

// IsOutOfStock reports whether there is no physical stock left
func (l *StockLedger) IsOutOfStock() bool {
	return l.Quantity.IsZero()
}

// CanFulfill returns true if available stock covers the requested quantity
func (l *StockLedger) CanFulfill(quantity decimal.Decimal) bool {
	return l.AvailableQuantity.GreaterThanOrEqual(quantity)
}

// AverageCostMoney returns the weighted average cost as Money
func (l *StockLedger) AverageCostMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(l.AverageCost)
}

// TotalValue returns on-hand quantity valued at the average cost
func (l *StockLedger) TotalValue() valueobject.Money {
	return valueobject.NewMoneyUSD(l.Quantity.Mul(l.AverageCost))
}
