package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SalesLineRequest represents one line of a sales order being created
type SalesLineRequest struct {
	ItemID             uuid.UUID       `json:"item_id" binding:"required"`
	ItemName           string          `json:"item_name" binding:"required"`
	ItemSKU            string          `json:"item_sku"`
	Quantity           decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice          decimal.Decimal `json:"unit_price" binding:"required"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
}

// CreateSalesOrderRequest represents a request to create a sales order.
// Stock for every line is reserved at the order warehouse in the same
// transaction; an order that cannot be covered is not created.
type CreateSalesOrderRequest struct {
	OrderNumber string             `json:"order_number" binding:"required,max=50"`
	ClientID    uuid.UUID          `json:"client_id" binding:"required"`
	ClientName  string             `json:"client_name" binding:"required"`
	WarehouseID uuid.UUID          `json:"warehouse_id" binding:"required"`
	OrderDate   *time.Time         `json:"order_date"`
	Lines       []SalesLineRequest `json:"lines" binding:"required,min=1,dive"`
	Discount    *decimal.Decimal   `json:"discount"`
	Notes       string             `json:"notes"`
}

// CancelOrderRequest carries the cancellation reason
type CancelOrderRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// SalesLineResponse represents a sales order line in API responses
type SalesLineResponse struct {
	ID                 uuid.UUID       `json:"id"`
	ItemID             uuid.UUID       `json:"item_id"`
	ItemName           string          `json:"item_name"`
	ItemSKU            string          `json:"item_sku"`
	Quantity           decimal.Decimal `json:"quantity"`
	UnitPrice          decimal.Decimal `json:"unit_price"`
	DiscountPercentage decimal.Decimal `json:"discount_percentage"`
	LineTotal          decimal.Decimal `json:"line_total"`
	ShippedQuantity    decimal.Decimal `json:"shipped_quantity"`
}

// SalesOrderResponse represents a sales order in API responses
type SalesOrderResponse struct {
	ID             uuid.UUID              `json:"id"`
	OrderNumber    string                 `json:"order_number"`
	ClientID       uuid.UUID              `json:"client_id"`
	ClientName     string                 `json:"client_name"`
	WarehouseID    uuid.UUID              `json:"warehouse_id"`
	OrderDate      time.Time              `json:"order_date"`
	Status         trade.SalesOrderStatus `json:"status"`
	StockReduced   bool                   `json:"stock_reduced"`
	TotalAmount    decimal.Decimal        `json:"total_amount"`
	DiscountAmount decimal.Decimal        `json:"discount_amount"`
	PayableAmount  decimal.Decimal        `json:"payable_amount"`
	Lines          []SalesLineResponse    `json:"lines"`
	Notes          string                 `json:"notes,omitempty"`
	ShippedAt      *time.Time             `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time             `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time             `json:"cancelled_at,omitempty"`
	CancelReason   string                 `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Version        int                    `json:"version"`
}

// ToSalesOrderResponse converts a sales order aggregate to a response DTO
func ToSalesOrderResponse(order *trade.SalesOrder) SalesOrderResponse {
	lines := make([]SalesLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = SalesLineResponse{
			ID:                 line.ID,
			ItemID:             line.ItemID,
			ItemName:           line.ItemName,
			ItemSKU:            line.ItemSKU,
			Quantity:           line.Quantity,
			UnitPrice:          line.UnitPrice,
			DiscountPercentage: line.DiscountPercentage,
			LineTotal:          line.LineTotal,
			ShippedQuantity:    line.ShippedQuantity,
		}
	}
	return SalesOrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		ClientID:       order.ClientID,
		ClientName:     order.ClientName,
		WarehouseID:    order.WarehouseID,
		OrderDate:      order.OrderDate,
		Status:         order.Status,
		StockReduced:   order.StockReduced,
		TotalAmount:    order.TotalAmount,
		DiscountAmount: order.DiscountAmount,
		PayableAmount:  order.PayableAmount,
		Lines:          lines,
		Notes:          order.Notes,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		CancelledAt:    order.CancelledAt,
		CancelReason:   order.CancelReason,
		CreatedAt:      order.CreatedAt,
		UpdatedAt:      order.UpdatedAt,
		Version:        order.GetVersion(),
	}
}

// PurchaseLineRequest represents one line of a purchase order being created
type PurchaseLineRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	ItemName    string          `json:"item_name" binding:"required"`
	ItemSKU     string          `json:"item_sku"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost" binding:"required"`
	FreightCost decimal.Decimal `json:"freight_cost"`
	CustomsDuty decimal.Decimal `json:"customs_duty"`
	OtherCosts  decimal.Decimal `json:"other_costs"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase order.
// The warehouse may be set later, but must be set before receiving.
type CreatePurchaseOrderRequest struct {
	OrderNumber  string                `json:"order_number" binding:"required,max=50"`
	VendorID     uuid.UUID             `json:"vendor_id" binding:"required"`
	VendorName   string                `json:"vendor_name" binding:"required"`
	WarehouseID  *uuid.UUID            `json:"warehouse_id"`
	OrderDate    *time.Time            `json:"order_date"`
	ExpectedDate *time.Time            `json:"expected_date"`
	Lines        []PurchaseLineRequest `json:"lines" binding:"required,min=1,dive"`
	Notes        string                `json:"notes"`
}

// ReceiptLineRequest is one line's arrival in a receiving request
type ReceiptLineRequest struct {
	LineID   uuid.UUID       `json:"line_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// ReceivePurchaseOrderRequest represents a receiving operation against a
// purchase order. An empty receipt list receives every line's full
// outstanding quantity.
type ReceivePurchaseOrderRequest struct {
	Receipts []ReceiptLineRequest `json:"receipts" binding:"omitempty,dive"`
}

// UpdatePurchaseLineRequest updates a pending order line's quantity and
// costs; derived landed costs are recomputed
type UpdatePurchaseLineRequest struct {
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitCost    decimal.Decimal `json:"unit_cost" binding:"required"`
	FreightCost decimal.Decimal `json:"freight_cost"`
	CustomsDuty decimal.Decimal `json:"customs_duty"`
	OtherCosts  decimal.Decimal `json:"other_costs"`
}

// SetWarehouseRequest sets the destination warehouse of a purchase order
type SetWarehouseRequest struct {
	WarehouseID uuid.UUID `json:"warehouse_id" binding:"required"`
}

// PurchaseLineResponse represents a purchase order line in API responses
type PurchaseLineResponse struct {
	ID                uuid.UUID       `json:"id"`
	ItemID            uuid.UUID       `json:"item_id"`
	ItemName          string          `json:"item_name"`
	ItemSKU           string          `json:"item_sku"`
	Quantity          decimal.Decimal `json:"quantity"`
	ReceivedQuantity  decimal.Decimal `json:"received_quantity"`
	UnitCost          decimal.Decimal `json:"unit_cost"`
	FreightCost       decimal.Decimal `json:"freight_cost"`
	CustomsDuty       decimal.Decimal `json:"customs_duty"`
	OtherCosts        decimal.Decimal `json:"other_costs"`
	LineTotal         decimal.Decimal `json:"line_total"`
	LandedCostPerUnit decimal.Decimal `json:"landed_cost_per_unit"`
	TotalLandedCost   decimal.Decimal `json:"total_landed_cost"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID           uuid.UUID                 `json:"id"`
	OrderNumber  string                    `json:"order_number"`
	VendorID     uuid.UUID                 `json:"vendor_id"`
	VendorName   string                    `json:"vendor_name"`
	WarehouseID  *uuid.UUID                `json:"warehouse_id,omitempty"`
	OrderDate    time.Time                 `json:"order_date"`
	ExpectedDate *time.Time                `json:"expected_date,omitempty"`
	Status       trade.PurchaseOrderStatus `json:"status"`
	TotalAmount  decimal.Decimal           `json:"total_amount"`
	Lines        []PurchaseLineResponse    `json:"lines"`
	Notes        string                    `json:"notes,omitempty"`
	ReceivedAt   *time.Time                `json:"received_at,omitempty"`
	CancelledAt  *time.Time                `json:"cancelled_at,omitempty"`
	CancelReason string                    `json:"cancel_reason,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
	UpdatedAt    time.Time                 `json:"updated_at"`
	Version      int                       `json:"version"`
}

// ToPurchaseOrderResponse converts a purchase order aggregate to a response DTO
func ToPurchaseOrderResponse(order *trade.PurchaseOrder) PurchaseOrderResponse {
	lines := make([]PurchaseLineResponse, len(order.Lines))
	for i, line := range order.Lines {
		lines[i] = PurchaseLineResponse{
			ID:                line.ID,
			ItemID:            line.ItemID,
			ItemName:          line.ItemName,
			ItemSKU:           line.ItemSKU,
			Quantity:          line.Quantity,
			ReceivedQuantity:  line.ReceivedQuantity,
			UnitCost:          line.UnitCost,
			FreightCost:       line.FreightCost,
			CustomsDuty:       line.CustomsDuty,
			OtherCosts:        line.OtherCosts,
			LineTotal:         line.LineTotal,
			LandedCostPerUnit: line.LandedCostPerUnit,
			TotalLandedCost:   line.TotalLandedCost,
		}
	}
	return PurchaseOrderResponse{
		ID:           order.ID,
		OrderNumber:  order.OrderNumber,
		VendorID:     order.VendorID,
		VendorName:   order.VendorName,
		WarehouseID:  order.WarehouseID,
		OrderDate:    order.OrderDate,
		ExpectedDate: order.ExpectedDate,
		Status:       order.Status,
		TotalAmount:  order.TotalAmount,
		Lines:        lines,
		Notes:        order.Notes,
		ReceivedAt:   order.ReceivedAt,
		CancelledAt:  order.CancelledAt,
		CancelReason: order.CancelReason,
		CreatedAt:    order.CreatedAt,
		UpdatedAt:    order.UpdatedAt,
		Version:      order.GetVersion(),
	}
}

// OrderListFilter represents filter options for order listing
type OrderListFilter struct {
	Status    string     `form:"status"`
	PartnerID *uuid.UUID `form:"partner_id"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
