package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	finapp "github.com/partserp/backend/internal/application/finance"
	"github.com/partserp/backend/internal/interfaces/http/dto"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// ReportHandler handles financial reporting API endpoints.
type ReportHandler struct {
	BaseHandler
	profitLoss *finapp.ProfitLossService
	payments   *finapp.PaymentService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(profitLoss *finapp.ProfitLossService, payments *finapp.PaymentService) *ReportHandler {
	return &ReportHandler{profitLoss: profitLoss, payments: payments}
}

// PeriodQuery selects an inclusive reporting period from query parameters.
type PeriodQuery struct {
	PeriodStart time.Time `form:"period_start" binding:"required" time_format:"2006-01-02"`
	PeriodEnd   time.Time `form:"period_end" binding:"required" time_format:"2006-01-02"`
}

// CalculateProfitLoss handles POST /reports/profit-loss.
// Recalculating an existing period replaces the stored report.
func (h *ReportHandler) CalculateProfitLoss(c *gin.Context) {
	var req finapp.CalculateProfitLossRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.profitLoss.Calculate(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// GetProfitLoss handles GET /reports/profit-loss.
func (h *ReportHandler) GetProfitLoss(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	report, err := h.profitLoss.GetByPeriod(c.Request.Context(), finapp.CalculateProfitLossRequest{
		PeriodStart: query.PeriodStart,
		PeriodEnd:   query.PeriodEnd,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, report)
}

// ListRecentProfitLoss handles GET /reports/profit-loss/recent.
func (h *ReportHandler) ListRecentProfitLoss(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	reports, err := h.profitLoss.ListRecent(c.Request.Context(), req.Page, req.PageSize)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reports)
}

// LedgerEntries handles GET /reports/ledger.
func (h *ReportHandler) LedgerEntries(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

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

	entries, total, err := h.payments.LedgerEntries(c.Request.Context(), query.PeriodStart, query.PeriodEnd, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, entries, total, filter.Page, filter.PageSize)
}

// TrialBalance handles GET /reports/trial-balance.
func (h *ReportHandler) TrialBalance(c *gin.Context) {
	var query PeriodQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	balance, err := h.payments.TrialBalance(c.Request.Context(), query.PeriodStart, query.PeriodEnd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, balance)
}
