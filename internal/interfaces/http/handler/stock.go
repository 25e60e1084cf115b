package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	invapp "github.com/partserp/backend/internal/application/inventory"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// StockHandler handles stock ledger API endpoints.
type StockHandler struct {
	BaseHandler
	ledger *invapp.StockLedgerService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(ledger *invapp.StockLedgerService) *StockHandler {
	return &StockHandler{ledger: ledger}
}

// GetSnapshot handles GET /stock/:item_id/:warehouse_id.
// Snapshots are served from cache when available and always report
// available quantity as on-hand minus reserved.
func (h *StockHandler) GetSnapshot(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}
	warehouseID, err := uuid.Parse(c.Param("warehouse_id"))
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID")
		return
	}

	snapshot, err := h.ledger.GetSnapshot(c.Request.Context(), itemID, warehouseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, snapshot)
}

// List handles GET /stock.
func (h *StockHandler) List(c *gin.Context) {
	var filter invapp.StockListFilter
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

	ledgers, total, err := h.ledger.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, ledgers, total, filter.Page, filter.PageSize)
}

// Increase handles POST /stock/increase.
// Receiving stock folds the unit cost into the moving average.
func (h *StockHandler) Increase(c *gin.Context) {
	var req invapp.IncreaseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ledger, err := h.ledger.IncreaseStock(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// Reserve handles POST /stock/reserve.
func (h *StockHandler) Reserve(c *gin.Context) {
	var req invapp.ReserveStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ledger, err := h.ledger.ReserveStock(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// Release handles POST /stock/release.
func (h *StockHandler) Release(c *gin.Context) {
	var req invapp.ReleaseStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ledger, err := h.ledger.ReleaseReservation(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// Reduce handles POST /stock/reduce.
func (h *StockHandler) Reduce(c *gin.Context) {
	var req invapp.ReduceStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ledger, err := h.ledger.ReduceStock(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}

// SetThresholds handles PUT /stock/thresholds.
func (h *StockHandler) SetThresholds(c *gin.Context) {
	var req invapp.SetThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	ledger, err := h.ledger.SetThresholds(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, ledger)
}
