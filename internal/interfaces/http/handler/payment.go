package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	finapp "github.com/partserp/backend/internal/application/finance"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// PaymentHandler handles payment API endpoints.
type PaymentHandler struct {
	BaseHandler
	payments *finapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments *finapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Record handles POST /payments.
// Recording a payment writes the matching double-entry ledger rows in the
// same transaction.
func (h *PaymentHandler) Record(c *gin.Context) {
	var req finapp.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	payment, err := h.payments.Record(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, payment)
}

// Get handles GET /payments/:id.
func (h *PaymentHandler) Get(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.payments.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}

// List handles GET /payments.
func (h *PaymentHandler) List(c *gin.Context) {
	var filter finapp.PaymentListFilter
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

	payments, total, err := h.payments.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, payments, total, filter.Page, filter.PageSize)
}

// Reconcile handles POST /payments/:id/reconcile.
func (h *PaymentHandler) Reconcile(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	payment, err := h.payments.Reconcile(c.Request.Context(), paymentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payment)
}
