package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// EntryType represents what produced a ledger entry
type EntryType string

const (
	EntryTypePayment    EntryType = "PAYMENT"
	EntryTypeSales      EntryType = "SALES"
	EntryTypePurchase   EntryType = "PURCHASE"
	EntryTypeAdjustment EntryType = "ADJUSTMENT"
	EntryTypeOther      EntryType = "OTHER"
)

// LedgerEntry is an append-only bookkeeping record. Exactly one of
// DebitAmount or CreditAmount is non-zero; entries are never edited
// after creation, corrections are made with adjustment entries.
type LedgerEntry struct {
	shared.BaseEntity
	PaymentID    *uuid.UUID      `gorm:"type:uuid;index"`
	EntryDate    time.Time       `gorm:"not null;index"`
	Description  string          `gorm:"type:text;not null"`
	DebitAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Money out
	CreditAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Money in
	Type         EntryType       `gorm:"type:varchar(20);not null;default:'OTHER';index;column:entry_type"`
	ReferenceID  *uuid.UUID      `gorm:"type:uuid;index"` // Source order or payment
}

// TableName returns the table name for GORM
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}

// NewLedgerEntry creates a new ledger entry
func NewLedgerEntry(paymentID *uuid.UUID, entryDate time.Time, description string, debit, credit decimal.Decimal, entryType EntryType) *LedgerEntry {
	return &LedgerEntry{
		BaseEntity:   shared.NewBaseEntity(),
		PaymentID:    paymentID,
		EntryDate:    entryDate,
		Description:  description,
		DebitAmount:  debit,
		CreditAmount: credit,
		Type:         entryType,
		ReferenceID:  paymentID,
	}
}

// NewSalesLedgerEntry books revenue when a sales order ships
func NewSalesLedgerEntry(orderID uuid.UUID, orderNumber string, orderDate time.Time, totalAmount decimal.Decimal) *LedgerEntry {
	entry := NewLedgerEntry(nil, orderDate, "Sales Order "+orderNumber, decimal.Zero, totalAmount, EntryTypeSales)
	entry.ReferenceID = &orderID
	return entry
}

// NewPurchaseLedgerEntry books cost when a purchase order is fully received
func NewPurchaseLedgerEntry(orderID uuid.UUID, orderNumber string, orderDate time.Time, totalAmount decimal.Decimal) *LedgerEntry {
	entry := NewLedgerEntry(nil, orderDate, "Purchase Order "+orderNumber, totalAmount, decimal.Zero, EntryTypePurchase)
	entry.ReferenceID = &orderID
	return entry
}

// Balance returns credit minus debit for this entry
func (e *LedgerEntry) Balance() decimal.Decimal {
	return e.CreditAmount.Sub(e.DebitAmount)
}
