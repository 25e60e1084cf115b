package finance

import (
	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant
const AggregateTypePayment = "Payment"

// Event type constants
const (
	EventTypePaymentRecorded = "PaymentRecorded"
)

// PaymentRecordedEvent is raised when a payment is recorded
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Type      PaymentType     `json:"payment_type"`
	Amount    decimal.Decimal `json:"amount"`
	VendorID  *uuid.UUID      `json:"vendor_id,omitempty"`
	ClientID  *uuid.UUID      `json:"client_id,omitempty"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(payment *Payment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, payment.ID),
		PaymentID:       payment.ID,
		Type:            payment.Type,
		Amount:          payment.Amount,
		VendorID:        payment.VendorID,
		ClientID:        payment.ClientID,
	}
}

// EventType returns the event type name
func (e *PaymentRecordedEvent) EventType() string {
	return EventTypePaymentRecorded
}
