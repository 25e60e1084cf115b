package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseOrderStatus represents the status of a purchase order
type PurchaseOrderStatus string

const (
	PurchaseOrderStatusPending   PurchaseOrderStatus = "PENDING"
	PurchaseOrderStatusPartial   PurchaseOrderStatus = "PARTIAL"
	PurchaseOrderStatusReceived  PurchaseOrderStatus = "RECEIVED"
	PurchaseOrderStatusCancelled PurchaseOrderStatus = "CANCELLED"
)

// IsValid checks if the status is a valid PurchaseOrderStatus
func (s PurchaseOrderStatus) IsValid() bool {
	switch s {
	case PurchaseOrderStatusPending, PurchaseOrderStatusPartial,
		PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of PurchaseOrderStatus
func (s PurchaseOrderStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s PurchaseOrderStatus) CanTransitionTo(target PurchaseOrderStatus) bool {
	switch s {
	case PurchaseOrderStatusPending:
		return target == PurchaseOrderStatusPartial || target == PurchaseOrderStatusReceived ||
			target == PurchaseOrderStatusCancelled
	case PurchaseOrderStatusPartial:
		return target == PurchaseOrderStatusPartial || target == PurchaseOrderStatusReceived
	case PurchaseOrderStatusReceived, PurchaseOrderStatusCancelled:
		return false // Terminal states
	}
	return false
}

// CanReceive returns true if receiving goods is allowed in this status
func (s PurchaseOrderStatus) CanReceive() bool {
	return s == PurchaseOrderStatusPending || s == PurchaseOrderStatusPartial
}

// PurchaseLine represents a line item in a purchase order. Freight, duty
// and other costs are the amounts allocated to this line, not prorated
// across the order; the landed cost derives from them and the unit cost.
type PurchaseLine struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID            uuid.UUID       `gorm:"type:uuid;not null"`
	ItemName          string          `gorm:"type:varchar(200);not null"`
	ItemSKU           string          `gorm:"type:varchar(50);not null"`
	Quantity          decimal.Decimal `gorm:"type:decimal(18,4);not null"`           // Quantity ordered
	ReceivedQuantity  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Quantity received so far
	StockAppliedQty   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Received quantity already pushed into the ledger
	UnitCost          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	FreightCost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CustomsDuty       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	OtherCosts        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	LineTotal         decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity * UnitCost
	LandedCostPerUnit decimal.Decimal `gorm:"type:decimal(18,4);not null"` // UnitCost + (Freight+Duty+Other)/Quantity
	TotalLandedCost   decimal.Decimal `gorm:"type:decimal(18,4);not null"` // LandedCostPerUnit * Quantity
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseLine) TableName() string {
	return "purchase_lines"
}

// NewPurchaseLine creates a new purchase order line with derived costs computed
func NewPurchaseLine(orderID, itemID uuid.UUID, itemName, itemSKU string, quantity decimal.Decimal, unitCost valueobject.Money, freight, duty, other decimal.Decimal) (*PurchaseLine, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	now := time.Now()
	line := &PurchaseLine{
		ID:               uuid.New(),
		OrderID:          orderID,
		ItemID:           itemID,
		ItemName:         itemName,
		ItemSKU:          itemSKU,
		Quantity:         quantity,
		ReceivedQuantity: decimal.Zero,
		StockAppliedQty:  decimal.Zero,
		UnitCost:         unitCost.Amount(),
		FreightCost:      freight,
		CustomsDuty:      duty,
		OtherCosts:       other,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := line.recalculateCosts(); err != nil {
		return nil, err
	}

	return line, nil
}

// UpdateQuantity updates the ordered quantity and recomputes derived costs
func (l *PurchaseLine) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThan(l.ReceivedQuantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Ordered quantity cannot be less than received quantity")
	}

	l.Quantity = quantity
	if err := l.recalculateCosts(); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()

	return nil
}

// UpdateCosts updates the unit and allocated costs and recomputes derived costs
func (l *PurchaseLine) UpdateCosts(unitCost valueobject.Money, freight, duty, other decimal.Decimal) error {
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	l.UnitCost = unitCost.Amount()
	l.FreightCost = freight
	l.CustomsDuty = duty
	l.OtherCosts = other
	if err := l.recalculateCosts(); err != nil {
		return err
	}
	l.UpdatedAt = time.Now()

	return nil
}

// recalculateCosts recomputes line_total and the landed cost columns
func (l *PurchaseLine) recalculateCosts() error {
	cost, err := ComputeLandedCost(l.Quantity, l.UnitCost, l.FreightCost, l.CustomsDuty, l.OtherCosts)
	if err != nil {
		return err
	}

	l.LineTotal = l.Quantity.Mul(l.UnitCost).Round(4)
	l.LandedCostPerUnit = cost.PerUnit
	l.TotalLandedCost = cost.Total

	return nil
}

// RemainingQuantity returns the ordered quantity still outstanding
func (l *PurchaseLine) RemainingQuantity() decimal.Decimal {
	remaining := l.Quantity.Sub(l.ReceivedQuantity)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// IsFullyReceived returns true if the whole ordered quantity arrived
func (l *PurchaseLine) IsFullyReceived() bool {
	return l.ReceivedQuantity.GreaterThanOrEqual(l.Quantity)
}

// ApplyReceipt records an arrived quantity against the line
func (l *PurchaseLine) ApplyReceipt(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}

	newReceived := l.ReceivedQuantity.Add(quantity)
	if newReceived.GreaterThan(l.Quantity) {
		return shared.NewDomainError("QUANTITY_EXCEEDED", "Received quantity cannot exceed ordered quantity")
	}

	l.ReceivedQuantity = newReceived
	l.UpdatedAt = time.Now()

	return nil
}

// UnappliedQuantity returns received stock not yet pushed into the ledger
func (l *PurchaseLine) UnappliedQuantity() decimal.Decimal {
	unapplied := l.ReceivedQuantity.Sub(l.StockAppliedQty)
	if unapplied.IsNegative() {
		return decimal.Zero
	}
	return unapplied
}

// MarkStockApplied records that a received quantity reached the ledger,
// making a retried receipt a no-op for that quantity
func (l *PurchaseLine) MarkStockApplied(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.ErrInvalidQuantity
	}

	newApplied := l.StockAppliedQty.Add(quantity)
	if newApplied.GreaterThan(l.ReceivedQuantity) {
		return shared.NewDomainError("QUANTITY_EXCEEDED", "Applied quantity cannot exceed received quantity")
	}

	l.StockAppliedQty = newApplied
	l.UpdatedAt = time.Now()

	return nil
}

// PurchaseReceipt is one line's arrival in a receiving operation
type PurchaseReceipt struct {
	LineID   uuid.UUID       `json:"line_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// PurchaseOrder represents a purchase order aggregate root.
//
// Receiving is the only trigger for a stock increase: the application
// service pushes each line's received quantity into the ledger at the
// line's landed cost per unit, then records the applied quantity here.
// CANCELLED after any receipt is not allowed; there is no auto-reversal.
type PurchaseOrder struct {
	shared.BaseAggregateRoot
	OrderNumber  string              `gorm:"type:varchar(50);not null;uniqueIndex"`
	VendorID     uuid.UUID           `gorm:"type:uuid;not null;index"`
	VendorName   string              `gorm:"type:varchar(200);not null"`
	WarehouseID  *uuid.UUID          `gorm:"type:uuid;index"` // Destination warehouse, required before receiving
	OrderDate    time.Time           `gorm:"not null;index"`
	ExpectedDate *time.Time          `gorm:""`
	Lines        []PurchaseLine      `gorm:"foreignKey:OrderID;references:ID"`
	TotalAmount  decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"` // Sum of line totals
	Status       PurchaseOrderStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Notes        string              `gorm:"type:text"`
	ReceivedAt   *time.Time          `gorm:""`
	CancelledAt  *time.Time          `gorm:""`
	CancelReason string              `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// NewPurchaseOrder creates a new purchase order in PENDING status
func NewPurchaseOrder(orderNumber string, vendorID uuid.UUID, vendorName string, warehouseID *uuid.UUID, orderDate time.Time) (*PurchaseOrder, error) {
	if orderNumber == "" {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot be empty")
	}
	if len(orderNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_ORDER_NUMBER", "Order number cannot exceed 50 characters")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	order := &PurchaseOrder{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderNumber:       orderNumber,
		VendorID:          vendorID,
		VendorName:        vendorName,
		WarehouseID:       warehouseID,
		OrderDate:         orderDate,
		Lines:             make([]PurchaseLine, 0),
		TotalAmount:       decimal.Zero,
		Status:            PurchaseOrderStatusPending,
	}

	order.AddDomainEvent(NewPurchaseOrderCreatedEvent(order))

	return order, nil
}

// AddLine adds a new line to the order. Only allowed in PENDING status
// before anything was received.
func (o *PurchaseOrder) AddLine(itemID uuid.UUID, itemName, itemSKU string, quantity decimal.Decimal, unitCost valueobject.Money, freight, duty, other decimal.Decimal) (*PurchaseLine, error) {
	if o.Status != PurchaseOrderStatusPending {
		return nil, NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "line change")
	}

	for _, line := range o.Lines {
		if line.ItemID == itemID {
			return nil, shared.NewDomainError("DUPLICATE_ITEM", "Item already exists in order, update quantity instead")
		}
	}

	line, err := NewPurchaseLine(o.ID, itemID, itemName, itemSKU, quantity, unitCost, freight, duty, other)
	if err != nil {
		return nil, err
	}

	o.Lines = append(o.Lines, *line)
	o.recalculateTotal()
	o.UpdatedAt = time.Now()

	return line, nil
}

// UpdateLine updates a line's quantity and costs. Only allowed in PENDING
// status; once any receipt landed, quantities and costs are frozen.
func (o *PurchaseOrder) UpdateLine(lineID uuid.UUID, quantity decimal.Decimal, unitCost valueobject.Money, freight, duty, other decimal.Decimal) error {
	if o.Status != PurchaseOrderStatusPending {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "line change")
	}

	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			if err := o.Lines[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			if err := o.Lines[idx].UpdateCosts(unitCost, freight, duty, other); err != nil {
				return err
			}
			o.recalculateTotal()
			o.UpdatedAt = time.Now()
			return nil
		}
	}

	return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
}

// SetWarehouse sets the destination warehouse before receiving
func (o *PurchaseOrder) SetWarehouse(warehouseID uuid.UUID) error {
	if !o.Status.CanReceive() {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), "warehouse change")
	}
	if warehouseID == uuid.Nil {
		return shared.ErrMissingWarehouse
	}

	o.WarehouseID = &warehouseID
	o.UpdatedAt = time.Now()

	return nil
}

// ApplyReceipts records arrived quantities and moves the order to PARTIAL
// or RECEIVED depending on whether every line is now fully received.
// Validation runs before any line is touched so a bad receipt leaves the
// order unchanged.
func (o *PurchaseOrder) ApplyReceipts(receipts []PurchaseReceipt) error {
	if !o.Status.CanReceive() {
		if o.Status == PurchaseOrderStatusReceived {
			return shared.ErrAlreadyReceived
		}
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), PurchaseOrderStatusReceived.String())
	}
	if o.WarehouseID == nil || *o.WarehouseID == uuid.Nil {
		return shared.ErrMissingWarehouse
	}
	if len(receipts) == 0 {
		return shared.NewDomainError("NO_RECEIPTS", "At least one receipt line is required")
	}

	for _, receipt := range receipts {
		line := o.GetLine(receipt.LineID)
		if line == nil {
			return shared.NewDomainError("LINE_NOT_FOUND", "Order line not found")
		}
		if receipt.Quantity.LessThanOrEqual(decimal.Zero) {
			return shared.ErrInvalidQuantity
		}
		if receipt.Quantity.GreaterThan(line.RemainingQuantity()) {
			return shared.NewDomainError("QUANTITY_EXCEEDED", "Received quantity cannot exceed ordered quantity")
		}
	}

	for _, receipt := range receipts {
		if err := o.GetLine(receipt.LineID).ApplyReceipt(receipt.Quantity); err != nil {
			return err
		}
	}

	now := time.Now()
	if o.allLinesReceived() {
		o.Status = PurchaseOrderStatusReceived
		o.ReceivedAt = &now
		o.AddDomainEvent(NewPurchaseOrderReceivedEvent(o))
	} else {
		o.Status = PurchaseOrderStatusPartial
		o.AddDomainEvent(NewPurchaseOrderPartiallyReceivedEvent(o))
	}
	o.UpdatedAt = now
	o.IncrementVersion()

	return nil
}

// Cancel cancels the order. Allowed only while PENDING with no stock
// applied; reversing received stock is explicitly unsupported.
func (o *PurchaseOrder) Cancel(reason string) error {
	if o.Status != PurchaseOrderStatusPending || o.HasStockApplied() {
		return NewInvalidTransitionError(o.OrderNumber, o.Status.String(), PurchaseOrderStatusCancelled.String())
	}

	now := time.Now()
	o.Status = PurchaseOrderStatusCancelled
	o.CancelledAt = &now
	o.CancelReason = reason
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewPurchaseOrderCancelledEvent(o))

	return nil
}

// recalculateTotal recomputes the order total from its lines
func (o *PurchaseOrder) recalculateTotal() {
	total := decimal.Zero
	for _, line := range o.Lines {
		total = total.Add(line.LineTotal)
	}
	o.TotalAmount = total
}

// allLinesReceived reports whether every line arrived in full
func (o *PurchaseOrder) allLinesReceived() bool {
	for idx := range o.Lines {
		if !o.Lines[idx].IsFullyReceived() {
			return false
		}
	}
	return len(o.Lines) > 0
}

// HasStockApplied reports whether any received quantity already reached the ledger
func (o *PurchaseOrder) HasStockApplied() bool {
	for idx := range o.Lines {
		if o.Lines[idx].StockAppliedQty.IsPositive() {
			return true
		}
	}
	return false
}

// GetLine returns a line by its ID
func (o *PurchaseOrder) GetLine(lineID uuid.UUID) *PurchaseLine {
	for idx := range o.Lines {
		if o.Lines[idx].ID == lineID {
			return &o.Lines[idx]
		}
	}
	return nil
}

// GetLineByItem returns a line by item ID
func (o *PurchaseOrder) GetLineByItem(itemID uuid.UUID) *PurchaseLine {
	for idx := range o.Lines {
		if o.Lines[idx].ItemID == itemID {
			return &o.Lines[idx]
		}
	}
	return nil
}

// GetTotalAmountMoney returns the total amount as Money
func (o *PurchaseOrder) GetTotalAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(o.TotalAmount)
}

// IsPending returns true if the order is pending
func (o *PurchaseOrder) IsPending() bool {
	return o.Status == PurchaseOrderStatusPending
}

// IsReceived returns true if the order is fully received
func (o *PurchaseOrder) IsReceived() bool {
	return o.Status == PurchaseOrderStatusReceived
}

// IsCancelled returns true if the order is cancelled
func (o *PurchaseOrder) IsCancelled() bool {
	return o.Status == PurchaseOrderStatusCancelled
}

// IsTerminal returns true if the order is received or cancelled
func (o *PurchaseOrder) IsTerminal() bool {
	return o.IsReceived() || o.IsCancelled()
}
