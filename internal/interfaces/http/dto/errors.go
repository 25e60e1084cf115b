package dto

import (
	"net/http"
	"strings"
)

// Error codes originating in the HTTP layer itself. Domain errors carry
// their own codes (see domain/shared) and pass through unchanged.
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request binding or validation fails
	ErrCodeValidation = "VALIDATION_FAILED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "CONFLICT"
	// ErrCodeRateLimited is used when rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodePayloadTooLarge is used when the request body exceeds the limit
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes.
// Codes not listed here fall back to the prefix rules in GetHTTPStatus.
var ErrorCodeHTTPStatus = map[string]int{
	// HTTP-layer errors
	ErrCodeInternal:        http.StatusInternalServerError,
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeValidation:      http.StatusBadRequest,
	ErrCodeConflict:        http.StatusConflict,
	ErrCodeRateLimited:     http.StatusTooManyRequests,
	ErrCodePayloadTooLarge: http.StatusRequestEntityTooLarge,

	// Lookup failures -> 404 Not Found
	ErrCodeNotFound:    http.StatusNotFound,
	"LINE_NOT_FOUND":   http.StatusNotFound,
	"UPLOAD_NOT_FOUND": http.StatusNotFound,

	// State conflicts -> 409 Conflict
	"INVALID_STATE":        http.StatusConflict,
	"INVALID_TRANSITION":   http.StatusConflict,
	"INSUFFICIENT_STOCK":   http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"QUANTITY_EXCEEDED":    http.StatusConflict,

	// Input errors -> 400 Bad Request
	"NO_LINES":                 http.StatusBadRequest,
	"NO_RECEIPTS":              http.StatusBadRequest,
	"UNSUPPORTED_CONTENT_TYPE": http.StatusBadRequest,

	// Lock wait exhaustion -> 503 Service Unavailable (retryable)
	"LOCK_TIMEOUT": http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Codes without an explicit mapping are classified by prefix:
// duplicates and already-done operations conflict, everything that
// names bad input is a bad request. Unknown codes are treated as
// internal errors.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}

	switch {
	case strings.HasPrefix(code, "DUPLICATE_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "ALREADY_"):
		return http.StatusConflict
	case strings.HasPrefix(code, "INVALID_"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "MISSING_"):
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

// IsRetryable reports whether a client may retry the request unchanged
// after a short delay. Used to decide whether to emit a Retry-After header.
func IsRetryable(code string) bool {
	return code == "LOCK_TIMEOUT"
}
