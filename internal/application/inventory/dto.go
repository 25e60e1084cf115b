package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/inventory"
	"github.com/shopspring/decimal"
)

// StockLedgerResponse represents a stock ledger row in API responses
type StockLedgerResponse struct {
	ID                uuid.UUID       `json:"id"`
	ItemID            uuid.UUID       `json:"item_id"`
	WarehouseID       uuid.UUID       `json:"warehouse_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	MinQuantity       decimal.Decimal `json:"min_quantity"`
	MaxQuantity       decimal.Decimal `json:"max_quantity"`
	AverageCost       decimal.Decimal `json:"average_cost"`
	TotalValue        decimal.Decimal `json:"total_value"`
	IsBelowMinimum    bool            `json:"is_below_minimum"`
	IsOutOfStock      bool            `json:"is_out_of_stock"`
	LastRestocked     *time.Time      `json:"last_restocked,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
	Version           int             `json:"version"`
}

// ToStockLedgerResponse converts a ledger aggregate to a response DTO
func ToStockLedgerResponse(ledger *inventory.StockLedger) StockLedgerResponse {
	return StockLedgerResponse{
		ID:                ledger.ID,
		ItemID:            ledger.ItemID,
		WarehouseID:       ledger.WarehouseID,
		Quantity:          ledger.Quantity,
		ReservedQuantity:  ledger.ReservedQuantity,
		AvailableQuantity: ledger.AvailableQuantity,
		MinQuantity:       ledger.MinQuantity,
		MaxQuantity:       ledger.MaxQuantity,
		AverageCost:       ledger.AverageCost,
		TotalValue:        ledger.TotalValue().Amount(),
		IsBelowMinimum:    ledger.IsBelowMinimum(),
		IsOutOfStock:      ledger.IsOutOfStock(),
		LastRestocked:     ledger.LastRestocked,
		UpdatedAt:         ledger.UpdatedAt,
		Version:           ledger.GetVersion(),
	}
}

// ToStockLedgerResponses converts a slice of ledger rows
func ToStockLedgerResponses(ledgers []inventory.StockLedger) []StockLedgerResponse {
	responses := make([]StockLedgerResponse, len(ledgers))
	for i := range ledgers {
		responses[i] = ToStockLedgerResponse(&ledgers[i])
	}
	return responses
}

// StockSnapshot is a compact read model of one item-warehouse stock
// position. It is what the stock lookup endpoint serves and what the
// snapshot cache stores.
type StockSnapshot struct {
	ItemID            uuid.UUID       `json:"item_id"`
	WarehouseID       uuid.UUID       `json:"warehouse_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReservedQuantity  decimal.Decimal `json:"reserved_quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	MinQuantity       decimal.Decimal `json:"min_quantity"`
	MaxQuantity       decimal.Decimal `json:"max_quantity"`
	AverageCost       decimal.Decimal `json:"average_cost"`
	IsBelowMinimum    bool            `json:"is_below_minimum"`
	AsOf              time.Time       `json:"as_of"`
}

// ToStockSnapshot converts a ledger aggregate to a snapshot read model
func ToStockSnapshot(ledger *inventory.StockLedger) StockSnapshot {
	return StockSnapshot{
		ItemID:            ledger.ItemID,
		WarehouseID:       ledger.WarehouseID,
		Quantity:          ledger.Quantity,
		ReservedQuantity:  ledger.ReservedQuantity,
		AvailableQuantity: ledger.AvailableQuantity,
		MinQuantity:       ledger.MinQuantity,
		MaxQuantity:       ledger.MaxQuantity,
		AverageCost:       ledger.AverageCost,
		IsBelowMinimum:    ledger.IsBelowMinimum(),
		AsOf:              ledger.UpdatedAt,
	}
}

// StockListFilter represents filter options for stock ledger listing
type StockListFilter struct {
	WarehouseID  *uuid.UUID `form:"warehouse_id"`
	ItemID       *uuid.UUID `form:"item_id"`
	BelowMinimum *bool      `form:"below_minimum"`
	Page         int        `form:"page" binding:"omitempty,min=1"`
	PageSize     int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy      string     `form:"order_by"`
	OrderDir     string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// IncreaseStockRequest represents a request to add received stock
type IncreaseStockRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost" binding:"required"`
}

// ReserveStockRequest represents a request to reserve available stock
type ReserveStockRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// ReleaseStockRequest represents a request to release a reservation
type ReleaseStockRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	WarehouseID uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// ReduceStockRequest represents a request to remove physical stock
type ReduceStockRequest struct {
	ItemID       uuid.UUID       `json:"item_id" binding:"required"`
	WarehouseID  uuid.UUID       `json:"warehouse_id" binding:"required"`
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	FromReserved bool            `json:"from_reserved"`
}

// SetThresholdsRequest represents a request to set min/max stock thresholds
type SetThresholdsRequest struct {
	ItemID      uuid.UUID        `json:"item_id" binding:"required"`
	WarehouseID uuid.UUID        `json:"warehouse_id" binding:"required"`
	MinQuantity *decimal.Decimal `json:"min_quantity"`
	MaxQuantity *decimal.Decimal `json:"max_quantity"`
}

// StockAlertResponse represents a stock alert in API responses
type StockAlertResponse struct {
	ID              uuid.UUID             `json:"id"`
	StockLedgerID   uuid.UUID             `json:"stock_ledger_id"`
	ItemID          uuid.UUID             `json:"item_id"`
	WarehouseID     uuid.UUID             `json:"warehouse_id"`
	CurrentQuantity decimal.Decimal       `json:"current_quantity"`
	MinQuantity     decimal.Decimal       `json:"min_quantity"`
	Status          inventory.AlertStatus `json:"status"`
	Message         string                `json:"message"`
	AcknowledgedAt  *time.Time            `json:"acknowledged_at,omitempty"`
	ResolvedAt      *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
}

// ToStockAlertResponse converts an alert aggregate to a response DTO
func ToStockAlertResponse(alert *inventory.StockAlert) StockAlertResponse {
	return StockAlertResponse{
		ID:              alert.ID,
		StockLedgerID:   alert.StockLedgerID,
		ItemID:          alert.ItemID,
		WarehouseID:     alert.WarehouseID,
		CurrentQuantity: alert.CurrentQuantity,
		MinQuantity:     alert.MinQuantity,
		Status:          alert.Status,
		Message:         alert.Message,
		AcknowledgedAt:  alert.AcknowledgedAt,
		ResolvedAt:      alert.ResolvedAt,
		CreatedAt:       alert.CreatedAt,
	}
}

// ToStockAlertResponses converts a slice of alerts
func ToStockAlertResponses(alerts []inventory.StockAlert) []StockAlertResponse {
	responses := make([]StockAlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = ToStockAlertResponse(&alerts[i])
	}
	return responses
}

// AlertListFilter represents filter options for alert listing
type AlertListFilter struct {
	Status      string     `form:"status" binding:"omitempty,oneof=PENDING ACKNOWLEDGED RESOLVED"`
	WarehouseID *uuid.UUID `form:"warehouse_id"`
	Page        int        `form:"page" binding:"omitempty,min=1"`
	PageSize    int        `form:"page_size" binding:"omitempty,min=1,max=100"`
}
