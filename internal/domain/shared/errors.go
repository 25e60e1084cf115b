package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches domain errors by code so typed errors can declare
// equivalence to the package-level sentinels via errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound             = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists        = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput         = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict  = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrInvalidState         = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInvalidTransition    = NewDomainError("INVALID_TRANSITION", "Status transition not permitted from current state")
	ErrInsufficientStock    = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInvalidQuantity      = NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	ErrMissingWarehouse     = NewDomainError("MISSING_WAREHOUSE", "No warehouse specified for stock operation")
	ErrLockTimeout          = NewDomainError("LOCK_TIMEOUT", "Timed out waiting for a stock row lock")
	ErrAlreadyReceived      = NewDomainError("ALREADY_RECEIVED", "Purchase order stock was already applied")
	ErrDuplicateOrderNumber = NewDomainError("DUPLICATE_ORDER_NUMBER", "Order number already exists")
)
