package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	invapp "github.com/partserp/backend/internal/application/inventory"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// AlertHandler handles stock alert API endpoints.
type AlertHandler struct {
	BaseHandler
	alerts *invapp.StockAlertService
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(alerts *invapp.StockAlertService) *AlertHandler {
	return &AlertHandler{alerts: alerts}
}

// PendingCountResponse reports the number of unresolved alerts.
type PendingCountResponse struct {
	Pending int64 `json:"pending"`
}

// List handles GET /alerts.
func (h *AlertHandler) List(c *gin.Context) {
	var filter invapp.AlertListFilter
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

	alerts, total, err := h.alerts.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, alerts, total, filter.Page, filter.PageSize)
}

// Acknowledge handles POST /alerts/:id/acknowledge.
func (h *AlertHandler) Acknowledge(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.alerts.Acknowledge(c.Request.Context(), alertID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alert)
}

// Resolve handles POST /alerts/:id/resolve.
func (h *AlertHandler) Resolve(c *gin.Context) {
	alertID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.alerts.Resolve(c.Request.Context(), alertID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, alert)
}

// PendingCount handles GET /alerts/pending-count.
func (h *AlertHandler) PendingCount(c *gin.Context) {
	count, err := h.alerts.CountPending(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, PendingCountResponse{Pending: count})
}
