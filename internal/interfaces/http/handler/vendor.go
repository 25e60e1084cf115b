package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/partserp/backend/internal/application/partner"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// VendorHandler handles vendor API endpoints.
type VendorHandler struct {
	BaseHandler
	vendors *partnerapp.VendorService
}

// NewVendorHandler creates a new VendorHandler.
func NewVendorHandler(vendors *partnerapp.VendorService) *VendorHandler {
	return &VendorHandler{vendors: vendors}
}

// Create handles POST /vendors.
func (h *VendorHandler) Create(c *gin.Context) {
	var req partnerapp.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vendor, err := h.vendors.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, vendor)
}

// Update handles PUT /vendors/:id.
func (h *VendorHandler) Update(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req partnerapp.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vendor, err := h.vendors.Update(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vendor)
}

// Get handles GET /vendors/:id.
func (h *VendorHandler) Get(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendors.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vendor)
}

// List handles GET /vendors.
func (h *VendorHandler) List(c *gin.Context) {
	var filter partnerapp.ListFilter
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

	vendors, total, err := h.vendors.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// Deactivate handles POST /vendors/:id/deactivate.
func (h *VendorHandler) Deactivate(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendors.Deactivate(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, vendor)
}
