package inventory

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InsufficientStockError is returned when a reservation or reduction asks
// for more than the ledger can cover. It carries enough detail for the
// caller to display an actionable message without a second lookup.
type InsufficientStockError struct {
	ItemID      uuid.UUID       `json:"item_id"`
	WarehouseID uuid.UUID       `json:"warehouse_id"`
	Requested   decimal.Decimal `json:"requested"`
	Available   decimal.Decimal `json:"available"`
}

// NewInsufficientStockError creates a new InsufficientStockError
func NewInsufficientStockError(itemID, warehouseID uuid.UUID, requested, available decimal.Decimal) *InsufficientStockError {
	return &InsufficientStockError{
		ItemID:      itemID,
		WarehouseID: warehouseID,
		Requested:   requested,
		Available:   available,
	}
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s at warehouse %s: requested %s, available %s",
		e.ItemID, e.WarehouseID, e.Requested, e.Available)
}

// Is declares equivalence to the INSUFFICIENT_STOCK sentinel
func (e *InsufficientStockError) Is(target error) bool {
	return shared.ErrInsufficientStock.Is(target)
}
