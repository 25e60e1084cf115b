package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AlertStatus represents the status of a stock alert
type AlertStatus string

const (
	AlertStatusPending      AlertStatus = "PENDING"
	AlertStatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	AlertStatusResolved     AlertStatus = "RESOLVED"
)

// IsValid checks if the status is a valid AlertStatus
func (s AlertStatus) IsValid() bool {
	switch s {
	case AlertStatusPending, AlertStatusAcknowledged, AlertStatusResolved:
		return true
	}
	return false
}

// String returns the string representation of AlertStatus
func (s AlertStatus) String() string {
	return string(s)
}

// StockAlert records a low-stock condition for one ledger row.
// At most one PENDING alert exists per ledger row; re-triggering while a
// PENDING alert exists refreshes its snapshot instead of creating another.
// Status only moves forward: PENDING -> ACKNOWLEDGED -> RESOLVED.
type StockAlert struct {
	shared.BaseAggregateRoot
	StockLedgerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	WarehouseID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CurrentQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null"` // On-hand when the alert was (last) raised
	MinQuantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Threshold snapshot
	Status          AlertStatus     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Message         string          `gorm:"type:text;not null"`
	AcknowledgedAt  *time.Time      `gorm:""`
	ResolvedAt      *time.Time      `gorm:""`
}

// TableName returns the table name for GORM
func (StockAlert) TableName() string {
	return "stock_alerts"
}

// NewStockAlert creates a PENDING alert snapshotting the ledger state.
// The item and warehouse names only feed the human-readable message.
func NewStockAlert(ledger *StockLedger, itemName, warehouseName string) (*StockAlert, error) {
	if ledger == nil {
		return nil, shared.NewDomainError("INVALID_LEDGER", "Stock ledger is required")
	}

	alert := &StockAlert{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		StockLedgerID:     ledger.ID,
		ItemID:            ledger.ItemID,
		WarehouseID:       ledger.WarehouseID,
		CurrentQuantity:   ledger.Quantity,
		MinQuantity:       ledger.MinQuantity,
		Status:            AlertStatusPending,
		Message:           alertMessage(itemName, warehouseName, ledger.Quantity, ledger.MinQuantity),
	}

	alert.AddDomainEvent(NewStockAlertCreatedEvent(alert))

	return alert, nil
}

// Refresh updates the quantity snapshot of a still-PENDING alert after a
// further mutation left the row below minimum. No-op when nothing changed.
func (a *StockAlert) Refresh(ledger *StockLedger, itemName, warehouseName string) error {
	if a.Status != AlertStatusPending {
		return shared.ErrInvalidTransition
	}
	if a.CurrentQuantity.Equal(ledger.Quantity) {
		return nil
	}

	a.CurrentQuantity = ledger.Quantity
	a.Message = alertMessage(itemName, warehouseName, ledger.Quantity, ledger.MinQuantity)
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// Acknowledge marks the alert as seen by an operator
func (a *StockAlert) Acknowledge() error {
	if a.Status != AlertStatusPending {
		return shared.ErrInvalidTransition
	}

	now := time.Now()
	a.Status = AlertStatusAcknowledged
	a.AcknowledgedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewStockAlertAcknowledgedEvent(a))

	return nil
}

// Resolve closes the alert. Allowed from PENDING or ACKNOWLEDGED.
func (a *StockAlert) Resolve() error {
	if a.Status == AlertStatusResolved {
		return shared.ErrInvalidTransition
	}

	now := time.Now()
	a.Status = AlertStatusResolved
	a.ResolvedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	a.AddDomainEvent(NewStockAlertResolvedEvent(a))

	return nil
}

// IsPending returns true while the alert awaits acknowledgement
func (a *StockAlert) IsPending() bool {
	return a.Status == AlertStatusPending
}

func alertMessage(itemName, warehouseName string, current, minimum decimal.Decimal) string {
	return fmt.Sprintf("Low stock alert for %s in %s. Current quantity: %s, Minimum required: %s",
		itemName, warehouseName, current, minimum)
}
