package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catapp "github.com/partserp/backend/internal/application/catalog"
	"github.com/partserp/backend/internal/interfaces/http/middleware"
)

// ItemHandler handles catalog item API endpoints.
type ItemHandler struct {
	BaseHandler
	items  *catapp.ItemService
	images *catapp.ItemImageService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(items *catapp.ItemService, images *catapp.ItemImageService) *ItemHandler {
	return &ItemHandler{items: items, images: images}
}

// ConfirmImageUploadRequest confirms that the image bytes were uploaded
// to the presigned URL.
type ConfirmImageUploadRequest struct {
	StorageKey string `json:"storage_key" binding:"required,max=512"`
}

// Create handles POST /items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req catapp.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.items.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, item)
}

// Update handles PUT /items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req catapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.items.Update(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Get handles GET /items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.items.GetByID(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// GetBySKU handles GET /items/sku/:sku.
func (h *ItemHandler) GetBySKU(c *gin.Context) {
	sku := c.Param("sku")
	if sku == "" {
		h.BadRequest(c, "SKU is required")
		return
	}

	item, err := h.items.GetBySKU(c.Request.Context(), sku)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// List handles GET /items.
func (h *ItemHandler) List(c *gin.Context) {
	var filter catapp.ItemListFilter
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

	items, total, err := h.items.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, items, total, filter.Page, filter.PageSize)
}

// Activate handles POST /items/:id/activate.
func (h *ItemHandler) Activate(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.items.Activate(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// Deactivate handles POST /items/:id/deactivate.
func (h *ItemHandler) Deactivate(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.items.Deactivate(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// InitiateImageUpload handles POST /items/:id/image.
// Returns a presigned URL the client uploads the image bytes to.
func (h *ItemHandler) InitiateImageUpload(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req catapp.InitiateImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	upload, err := h.images.InitiateUpload(c.Request.Context(), itemID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, upload)
}

// ConfirmImageUpload handles POST /items/:id/image/confirm.
func (h *ItemHandler) ConfirmImageUpload(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req ConfirmImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	item, err := h.images.ConfirmUpload(c.Request.Context(), itemID, req.StorageKey)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, item)
}

// GetImageURL handles GET /items/:id/image-url.
func (h *ItemHandler) GetImageURL(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	imageURL, err := h.images.GetImageURL(c.Request.Context(), itemID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, imageURL)
}
