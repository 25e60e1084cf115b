package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// SalesOrderStatus represents the status of a sales order
type SalesOrderStatus string

const (
	SalesOrderStatusPending   SalesOrderStatus = "PENDING"
	SalesOrderStatusConfirmed SalesOrderStatus = "CONFIRMED"
	SalesOrderStatusShipped   SalesOrderStatus = "SHIPPED"
	SalesOrderStatusDelivered SalesOrderStatus = "DELIVERED"
	SalesOrderStatusCancelled SalesOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid SalesOrderStatus
func (s SalesOrderStatus) IsValid() bool {
	switch s {
	case SalesOrderStatusPending, SalesOrderStatusConfirmed, SalesOrderStatusShipped,
		SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of SalesOrderStatus
func (s SalesOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status.
// PENDING and CONFIRMED both mean "reserved, not yet reduced"; a direct
// jump to DELIVERED is allowed and treated as shipping at the same moment.
func (s SalesOrderStatus) CanTransitionTo(target SalesOrderStatus) bool {
	switch s {
	case SalesOrderStatusPending:
		return target == SalesOrderStatusConfirmed || target == SalesOrderStatusShipped ||
			target == SalesOrderStatusDelivered || target == SalesOrderStatusCancelled
	case SalesOrderStatusConfirmed:
		return target == SalesOrderStatusShipped || target == SalesOrderStatusDelivered ||
			target == SalesOrderStatusCancelled
	case SalesOrderStatusShipped:
		return target == SalesOrderStatusDelivered
	case SalesOrderStatusDelivered, SalesOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// SalesLine represents a line item in a sales order
type SalesLine struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID             uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName           string          `gorm:"type:varchar(200);not null"`
	ItemSKU            string          `gorm:"type:varchar(50);not null"`
	Quantity           decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	LineTotal          decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitPrice * (1 - Discount/100)
	ShippedQuantity    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreatedAt          time.Time       `gorm:"not null"`
	UpdatedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SalesLine) TableName() string {
	return "sales_lines"
}

// NewSalesLine creates a new sales order line
func NewSalesLine(orderID, itemID uuid.UUID, itemName, itemSKU string, quantity decimal.Decimal, unitPrice valueobject.Money, discountPercentage decimal.Decimal) (*SalesLine, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.ErrInvalidQuantity
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if discountPercentage.IsNegative() || discountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount percentage must be between 0 and 100")
	}

	now := time.Now()
	line := &SalesLine{
		ID:                 uuid.New(),
		OrderID:            orderID,
		ItemID:             itemID,
		ItemName:           itemName,
		ItemSKU:            itemSKU,
		Quantity:           quantity,
		UnitPrice:          unitPrice.Amount(),
		DiscountPercentage: discountPercentage,
		ShippedQuantity:    decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	line.recalculateTotal()

	return line, nil
}

// UpdateQuantity updates the line quantity and recalculates the total
func (l *SalesLine) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}

	l.Quantity = quantity
	l.recalculateTotal()
	l.UpdatedAt = time.Now()

	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the total
func (l *SalesLine) UpdateUnitPrice(unitPrice valueobject.Money) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	l.UnitPrice = unitPrice.Amount()
	l.recalculateTotal()
	l.UpdatedAt = time.Now()

	return nil
}

// recalculateTotal recomputes line_total = quantity * unit_price * (1 - discount/100)
func (l *SalesLine) recalculateTotal() {
	discountFactor := decimal.NewFromInt(1).Sub(l.DiscountPercentage.Div(decimal.NewFromInt(100)))
	l.LineTotal = l.Quantity.Mul(l.UnitPrice).Mul(discountFactor).Round(4)
}

// markShipped records the shipped quantity when the order ships
func (l *SalesLine) markShipped() {
	l.ShippedQuantity = l.Quantity
	l.UpdatedAt = time.Now()
}

// GetLineTotalMoney returns the line total as Money value object
func (l *SalesLine) GetLineTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(l.LineTotal)
}

// SalesOrder represents a sales order aggregate root.
//
// Stock semantics: PENDING and CONFIRMED mean every line's quantity is
// reserved at the order warehouse; SHIPPED and DELIVERED mean on-hand stock
// was reduced exactly once (StockReduced guards against double reduction);
// CANCELLED means any outstanding reservation was released without a
// physical reduction. The application service is the only stock mutator;
// the aggregate records which side of that line it is on.
type SalesOrder struct {
	shared.BaseAggregateRoot
	OrderNumber    string           `gorm:"type:varchar(50);not null;uniqueIndex"`
	ClientID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	ClientName     string           `gorm:"type:varchar(200);not null"`
	WarehouseID    uuid.UUID        `gorm:"type:uuid;not null;index"` // Stock source, required
	OrderDate      time.Time        `gorm:"not null;index"`
	Lines          []SalesLine      `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount    decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"` // Sum of line totals
	DiscountAmount decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"` // Order-level discount
	PayableAmount  decimal.Decimal  `gorm:"type:decimal(18,4);not null;default:0"` // TotalAmount - DiscountAmount
	Status         SalesOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	StockReduced   bool             `gorm:"not null;default:false"` // Set once at ship/deliver time
	Notes          string           `gorm:"type:text"`
	ShippedAt      *time.Time       `gorm:""`
	DeliveredAt    *time.Time       `gorm:""`
	CancelledAt    *time.Time       `gorm:""`
	CancelReason   string           `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (SalesOrder) TableName() string {
	return "sales_orders"
}

// NewSalesOrder creates a new sales order in PENDING status.
// The warehouse is required up front; there is no fallback selection.
func NewSalesOrder(orderNumber string, clientID uuid.UUID, clientName string, warehouseID uuid.UUID, orderDate time.Time) (*SalesOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if clientID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CLIENT", "Client ID cannot be empty")
	}
	if warehouseID == uuid.Nil {
		return nil, shared.ErrMissingWarehouse
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &SalesOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		ClientID:          clientID,
		ClientName:        clientName,
		WarehouseID:       warehouseID,
		OrderDate:         orderDate,
		Lines:             make([]SalesLine, 0),
		TotalAmount:       decimal.Zero,
		DiscountAmount:    decimal.Zero,
		PayableAmount:     decimal.Zero,
		Status:            SalesOrderStatusPending,
	}

	order.AddDomainEvent(NewSalesOrderCreatedEvent(order))

	return order, nil
}

// AddLine adds a new line to the order. Only allowed in PENDING status.
func (o *SalesOrder) AddLine(itemID uuid.UUID, itemName, itemSKU string, quantity decimal.Decimal, unitPrice valueobject.Money, discountPercentage decimal.Decimal) (*SalesLine, error) {
	if o.Status != SalesOrderStatusPending {
		return nil, NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "line change")
	}

	for _, line := range o.Lines {
		if line.ItemID == itemID {
			return nil, shared.NewDomainError("DUPLICATE_ITEM", "Item already exists in order, update quantity instead")
		}
	}

	line, err := NewSalesLine(o.ID, itemID, itemName, itemSKU, quantity, unitPrice, discountPercentage)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.recalculateTotals()
	o.UpdatedAt = time.Now()

	return line, nil
}

// UpdateLineQuantity updates the quantity of an existing line and returns
// the previous quantity so the caller can adjust the reservation by the
// delta. Only allowed in PENDING status.
func (o *SalesOrder) UpdateLineQuantity(lineID uuid.UUID, quantity decimal.Decimal) (decimal.Decimal, error) {
	if o.Status != SalesOrderStatusPending {
		return decimal.Zero, NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "line change")
	}

	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			previous := o.Lines[idx].Quantity
			if err := o.Lines[idx].UpdateQuantity(quantity); err != nil {
				return decimal.Zero, err
			}
			o.recalculateTotals()
			o.UpdatedAt = time.Now()
			return previous, nil
		}
	}

	return decimal.Zero, shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
}

// ApplyDiscount applies an order-level discount. Only allowed in PENDING status.
func (o *SalesOrder) ApplyDiscount(discount valueobject.Money) error {
	if o.Status != SalesOrderStatusPending {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "discount change")
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.Amount().GreaterThan(o.TotalAmount) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	o.DiscountAmount = discount.Amount()
	o.PayableAmount = o.TotalAmount.Sub(o.DiscountAmount)
	o.UpdatedAt = time.Now()

	return nil
}

// Confirm transitions the order from PENDING to CONFIRMED. Stock stays
// reserved; no additional stock effect.
func (o *SalesOrder) Confirm() error {
	if !o.Status.CanTransitionTo(SalesOrderStatusConfirmed) {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), SalesOrderStatusConfirmed.String())
	}
	if len(o.Lines) == 0 {
		return shared.NewDomainError("NO_LINES", "Cannot confirm order without lines")
	}

	now := time.Now()
	o.Status = SalesOrderStatusConfirmed
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSalesOrderConfirmedEvent(o))

	return nil
}

// MarkShipped transitions the order to SHIPPED and stamps each line's
// shipped quantity. The caller must have reduced stock for every line
// inside the same transaction; StockReduced records that it happened so a
// retried ship can never reduce twice.
func (o *SalesOrder) MarkShipped() error {
	if !o.Status.CanTransitionTo(SalesOrderStatusShipped) {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), SalesOrderStatusShipped.String())
	}
	if len(o.Lines) == 0 {
		return shared.NewDomainError("NO_LINES", "Cannot ship order without lines")
	}

	now := time.Now()
	o.Status = SalesOrderStatusShipped
	o.StockReduced = true
	o.ShippedAt = &now
	for idx := range o.Lines {
		o.Lines[idx].markShipped()
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSalesOrderShippedEvent(o))

	return nil
}

// MarkDelivered transitions the order to DELIVERED. From SHIPPED this is a
// pure status stamp; a direct delivery from PENDING/CONFIRMED also takes
// the shipment bookkeeping since stock is reduced at the same moment.
func (o *SalesOrder) MarkDelivered() error {
	if !o.Status.CanTransitionTo(SalesOrderStatusDelivered) {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), SalesOrderStatusDelivered.String())
	}

	now := time.Now()
	if o.Status != SalesOrderStatusShipped {
		o.StockReduced = true
		o.ShippedAt = &now
		for idx := range o.Lines {
			o.Lines[idx].markShipped()
		}
	}
	o.Status = SalesOrderStatusDelivered
	o.DeliveredAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSalesOrderDeliveredEvent(o))

	return nil
}

// Cancel cancels the order. Allowed only before shipment; the caller
// releases every line's reservation in the same transaction.
func (o *SalesOrder) Cancel(reason string) error {
	if !o.Status.CanTransitionTo(SalesOrderStatusCancelled) {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), SalesOrderStatusCancelled.String())
	}

	now := time.Now()
	o.Status = SalesOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewSalesOrderCancelledEvent(o))

	return nil
}

// recalculateTotals recomputes the order totals from its lines
func (o *SalesOrder) recalculateTotals() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.LineTotal)
	}
	o.TotalAmount = total
	o.PayableAmount = o.TotalAmount.Sub(o.DiscountAmount)

	if o.PayableAmount.IsNegative() {
		o.DiscountAmount = o.TotalAmount
		o.PayableAmount = decimal.Zero
	}
}

// GetLine returns a line by its ID
func (o *SalesOrder) GetLine(lineID uuid.UUID) *SalesLine {
	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			return &o.Lines[idx]
		}
	}
	return nil
}

// GetTotalAmountMoney returns the total amount as Money
func (o *SalesOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

// TotalQuantity returns the sum of all line quantities
func (o *SalesOrder) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.Quantity)
	}
	return total
}

// IsPending returns true if the order is pending
func (o *SalesOrder) IsPending() bool {
	return o.Status == SalesOrderStatusPending
}

// IsShipped returns true if the order is shipped
func (o *SalesOrder) IsShipped() bool {
	return o.Status == SalesOrderStatusShipped
}

// IsDelivered returns true if the order is delivered
func (o *SalesOrder) IsDelivered() bool {
	return o.Status == SalesOrderStatusDelivered
}

// IsCancelled returns true if the order is cancelled
func (o *SalesOrder) IsCancelled() bool {
	return o.Status == SalesOrderStatusCancelled
}

// IsTerminal returns true if the order is delivered or cancelled
func (o *SalesOrder) IsTerminal() bool {
	return o.IsDelivered() || o.IsCancelled()
}

// HoldsReservation reports whether the order's lines are still counted in
// reserved_quantity: reserved at creation, not yet reduced or released.
func (o *SalesOrder) HoldsReservation() bool {
	return (o.Status == SalesOrderStatusPending || o.Status == SalesOrderStatusConfirmed) && !o.StockReduced
}
