package trade

import (
	"fmt"

	"github.com/partserp/backend/internal/domain/shared"
)

// InvalidTransitionError is returned when an order lifecycle action is not
// permitted from the order's current status. It names both sides of the
// attempted transition so the caller can render an actionable message.
type InvalidTransitionError struct {
	OrderNumber string `json:"order_number"`
	Current     string `json:"current_status"`
	Attempted   string `json:"attempted_status"`
}

// NewInvalidTransitionError creates a new InvalidTransitionError
func NewInvalidTransitionError(orderNumber, current, attempted string) *InvalidTransitionError {
	return &InvalidTransitionError{
		OrderNumber: orderNumber,
		Current:     current,
		Attempted:   attempted,
	}
}

// Error implements the error interface
func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("order %s cannot transition from %s to %s", e.OrderNumber, e.Current, e.Attempted)
}

// Is declares equivalence to the INVALID_TRANSITION sentinel
func (e *InvalidTransitionError) Is(target error) bool {
	return shared.ErrInvalidTransition.Is(target)
}
