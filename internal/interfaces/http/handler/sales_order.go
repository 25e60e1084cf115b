package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	tradeapp "github.com/partserp/backend/internal/application/trade"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// SalesOrderHandler handles sales order API endpoints.
type SalesOrderHandler struct {
	BaseHandler
	orders *tradeapp.SalesFulfillmentService
}

// NewSalesOrderHandler creates a new SalesOrderHandler.
func NewSalesOrderHandler(orders *tradeapp.SalesFulfillmentService) *SalesOrderHandler {
	return &SalesOrderHandler{orders: orders}
}

// UpdateLineQuantityRequest changes the quantity on a draft order line.
type UpdateLineQuantityRequest struct {
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
}

// Create handles POST /sales-orders.
func (h *SalesOrderHandler) Create(c *gin.Context) {
	var req tradeapp.CreateSalesOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	order, err := h.orders.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, order)
}

// Get handles GET /sales-orders/:id.
func (h *SalesOrderHandler) Get(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// GetByNumber handles GET /sales-orders/number/:number.
func (h *SalesOrderHandler) GetByNumber(c *gin.Context) {
	orderNumber := c.Param("number")
	if orderNumber == "" {
		h.BadRequest(c, "Order number is required")
		return
	}

	order, err := h.orders.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// List handles GET /sales-orders.
func (h *SalesOrderHandler) List(c *gin.Context) {
	var filter tradeapp.OrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	orders, total, err := h.orders.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, orders, total, filter.Page, filter.PageSize)
}

// UpdateLineQuantity handles PUT /sales-orders/:id/lines/:line_id.
func (h *SalesOrderHandler) UpdateLineQuantity(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}
	lineID, err := uuid.Parse(c.Param("line_id"))
	if err != nil {
		h.BadRequest(c, "Invalid line ID")
		return
	}

	var req UpdateLineQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	order, err := h.orders.UpdateLineQuantity(c.Request.Context(), orderID, lineID, req.Quantity)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// Confirm handles POST /sales-orders/:id/confirm.
// Confirming reserves stock for every line in the order's warehouse.
func (h *SalesOrderHandler) Confirm(c *gin.Context) {
	h.transition(c, h.orders.Confirm)
}

// Ship handles POST /sales-orders/:id/ship.
// Shipping converts the order's reservations into physical stock reductions.
func (h *SalesOrderHandler) Ship(c *gin.Context) {
	h.transition(c, h.orders.Ship)
}

// Deliver handles POST /sales-orders/:id/deliver.
func (h *SalesOrderHandler) Deliver(c *gin.Context) {
	h.transition(c, h.orders.Deliver)
}

// Cancel handles POST /sales-orders/:id/cancel.
func (h *SalesOrderHandler) Cancel(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	var req tradeapp.CancelOrderRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			middleware.HandleValidationError(c, err)
			return
		}
	}

	order, err := h.orders.Cancel(c.Request.Context(), orderID, req.Reason)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}

// transition parses the order ID and applies a status transition.
func (h *SalesOrderHandler) transition(c *gin.Context, fn func(ctx context.Context, orderID uuid.UUID) (*tradeapp.SalesOrderResponse, error)) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := fn(c.Request.Context(), orderID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, order)
}
