package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PaymentType distinguishes money in from money out
type PaymentType string

const (
	PaymentTypeCredit PaymentType = "CREDIT" // Money in, typically from a client
	PaymentTypeDebit  PaymentType = "DEBIT"  // Money out, typically to a vendor
)

// IsValid checks if the payment type is valid
func (t PaymentType) IsValid() bool {
	return t == PaymentTypeCredit || t == PaymentTypeDebit
}

// PaymentMethod represents how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCheque       PaymentMethod = "CHEQUE"
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodDebitCard    PaymentMethod = "DEBIT_CARD"
	PaymentMethodOnline       PaymentMethod = "ONLINE"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCheque,
		PaymentMethodCreditCard, PaymentMethodDebitCard, PaymentMethodOnline, PaymentMethodOther:
		return true
	}
	return false
}

// Payment records money moving in or out. Exactly one of VendorID or
// ClientID is set; a payment belongs to a counterparty, never both.
type Payment struct {
	shared.BaseAggregateRoot
	VendorID        *uuid.UUID      `gorm:"type:uuid;index"`
	ClientID        *uuid.UUID      `gorm:"type:uuid;index"`
	Amount          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Type            PaymentType     `gorm:"type:varchar(10);not null;index;column:payment_type"`
	Method          PaymentMethod   `gorm:"type:varchar(20);not null;default:'BANK_TRANSFER';column:payment_method"`
	PaymentDate     time.Time       `gorm:"not null;index"`
	Description     string          `gorm:"type:text;not null"`
	ReferenceNumber string          `gorm:"type:varchar(100)"` // Check number, transfer ID
	PurchaseOrderID *uuid.UUID      `gorm:"type:uuid;index"`
	SalesOrderID    *uuid.UUID      `gorm:"type:uuid;index"`
	IsReconciled    bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a new payment for either a vendor or a client
func NewPayment(
	vendorID, clientID *uuid.UUID,
	amount valueobject.Money,
	paymentType PaymentType,
	method PaymentMethod,
	paymentDate time.Time,
	description string,
) (*Payment, error) {
	if vendorID == nil && clientID == nil {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Either vendor or client must be specified")
	}
	if vendorID != nil && clientID != nil {
		return nil, shared.NewDomainError("INVALID_COUNTERPARTY", "Payment cannot be for both vendor and client")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if !paymentType.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_TYPE", "Payment type is not valid")
	}
	if method == "" {
		method = PaymentMethodBankTransfer
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if paymentDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_DATE", "Payment date is required")
	}

	payment := &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		ClientID:          clientID,
		Amount:            amount.Amount(),
		Type:              paymentType,
		Method:            method,
		PaymentDate:       paymentDate,
		Description:       description,
	}

	payment.AddDomainEvent(NewPaymentRecordedEvent(payment))

	return payment, nil
}

// LinkPurchaseOrder attaches the payment to a purchase order
func (p *Payment) LinkPurchaseOrder(orderID uuid.UUID) {
	p.PurchaseOrderID = &orderID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// LinkSalesOrder attaches the payment to a sales order
func (p *Payment) LinkSalesOrder(orderID uuid.UUID) {
	p.SalesOrderID = &orderID
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// MarkReconciled flags the payment as matched against a bank statement
func (p *Payment) MarkReconciled() {
	p.IsReconciled = true
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// AmountMoney returns the amount as Money value object
func (p *Payment) AmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(p.Amount)
}

// ToLedgerEntry derives the bookkeeping entry for this payment. Debit
// payments book the amount as money out, credit payments as money in.
func (p *Payment) ToLedgerEntry() *LedgerEntry {
	debit := decimal.Zero
	credit := decimal.Zero
	if p.Type == PaymentTypeDebit {
		debit = p.Amount
	} else {
		credit = p.Amount
	}
	return NewLedgerEntry(&p.ID, p.PaymentDate, p.Description, debit, credit, EntryTypePayment)
}
