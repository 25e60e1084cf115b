package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ItemSortFields contains allowed sort fields for catalog items
var ItemSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"sku":           true,
	"name":          true,
	"cost_price":    true,
	"selling_price": true,
	"reorder_level": true,
	"is_active":     true,
}

// StockLedgerSortFields contains allowed sort fields for stock ledger rows
var StockLedgerSortFields = map[string]bool{
	"id":                 true,
	"created_at":         true,
	"updated_at":         true,
	"item_id":            true,
	"warehouse_id":       true,
	"quantity":           true,
	"reserved_quantity":  true,
	"available_quantity": true,
	"min_quantity":       true,
	"max_quantity":       true,
	"average_cost":       true,
	"last_restocked":     true,
}

// StockAlertSortFields contains allowed sort fields for stock alerts
var StockAlertSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"item_id":          true,
	"warehouse_id":     true,
	"status":           true,
	"current_quantity": true,
	"min_quantity":     true,
}

// SalesOrderSortFields contains allowed sort fields for sales orders
var SalesOrderSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"order_number": true,
	"client_id":    true,
	"client_name":  true,
	"order_date":   true,
	"status":       true,
	"total_amount": true,
	"shipped_at":   true,
	"delivered_at": true,
}

// PurchaseOrderSortFields contains allowed sort fields for purchase orders
var PurchaseOrderSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"order_number":  true,
	"vendor_id":     true,
	"vendor_name":   true,
	"order_date":    true,
	"expected_date": true,
	"status":        true,
	"total_amount":  true,
	"received_at":   true,
}

// PaymentSortFields contains allowed sort fields for payments
var PaymentSortFields = map[string]bool{
	"id":             true,
	"created_at":     true,
	"updated_at":     true,
	"payment_date":   true,
	"payment_type":   true,
	"payment_method": true,
	"amount":         true,
	"vendor_id":      true,
	"client_id":      true,
}

// LedgerEntrySortFields contains allowed sort fields for ledger entries
var LedgerEntrySortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"entry_date":    true,
	"entry_type":    true,
	"debit_amount":  true,
	"credit_amount": true,
}

// ProfitLossSortFields contains allowed sort fields for profit/loss reports
var ProfitLossSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"period_start": true,
	"period_end":   true,
	"net_profit":   true,
}

// PartnerSortFields contains allowed sort fields for warehouses, clients
// and vendors, which share the code/name shape
var PartnerSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"city":       true,
	"status":     true,
}
