package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateItemRequest represents a request to create a catalog item
type CreateItemRequest struct {
	SKU             string          `json:"sku" binding:"required,max=50"`
	Name            string          `json:"name" binding:"required,max=200"`
	Description     string          `json:"description"`
	UnitOfMeasure   string          `json:"unit_of_measure" binding:"max=20"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
}

// UpdateItemRequest updates an item's mutable fields. Identity (SKU, unit
// of measure) stays fixed.
type UpdateItemRequest struct {
	Name            *string          `json:"name" binding:"omitempty,max=200"`
	Description     *string          `json:"description"`
	CostPrice       *decimal.Decimal `json:"cost_price"`
	SellingPrice    *decimal.Decimal `json:"selling_price"`
	ReorderLevel    *decimal.Decimal `json:"reorder_level"`
	ReorderQuantity *decimal.Decimal `json:"reorder_quantity"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID              uuid.UUID       `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Description     string          `json:"description,omitempty"`
	UnitOfMeasure   string          `json:"unit_of_measure"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	ReorderLevel    decimal.Decimal `json:"reorder_level"`
	ReorderQuantity decimal.Decimal `json:"reorder_quantity"`
	ImageKey        string          `json:"image_key,omitempty"`
	IsActive        bool            `json:"is_active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ToItemResponse converts an item aggregate to a response DTO
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		SKU:             item.SKU,
		Name:            item.Name,
		Description:     item.Description,
		UnitOfMeasure:   string(item.UnitOfMeasure),
		CostPrice:       item.CostPrice,
		SellingPrice:    item.SellingPrice,
		ReorderLevel:    item.ReorderLevel,
		ReorderQuantity: item.ReorderQuantity,
		ImageKey:        item.ImageKey,
		IsActive:        item.IsActive,
		CreatedAt:       item.CreatedAt,
		UpdatedAt:       item.UpdatedAt,
	}
}

// ItemListFilter represents filter options for item listing
type ItemListFilter struct {
	Query    string `form:"q"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// InitiateImageUploadRequest starts an item image upload
type InitiateImageUploadRequest struct {
	FileName    string `json:"file_name" binding:"required,max=255"`
	ContentType string `json:"content_type" binding:"required"`
}

// InitiateImageUploadResponse carries the presigned upload URL. The client
// PUTs the image bytes to the URL, then confirms the upload.
type InitiateImageUploadResponse struct {
	StorageKey string    `json:"storage_key"`
	UploadURL  string    `json:"upload_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// ImageURLResponse carries a presigned download URL for the item image
type ImageURLResponse struct {
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	ExpiresAt  time.Time `json:"expires_at"`
}
