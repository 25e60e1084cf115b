package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/partner"
)

// CreateWarehouseRequest represents a request to create a warehouse
type CreateWarehouseRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"max=100"`
	IsDefault   bool   `json:"is_default"`
	Notes       string `json:"notes"`
}

// UpdateWarehouseRequest updates a warehouse's contact information
type UpdateWarehouseRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"max=100"`
}

// WarehouseResponse represents a warehouse in API responses
type WarehouseResponse struct {
	ID          uuid.UUID               `json:"id"`
	Code        string                  `json:"code"`
	Name        string                  `json:"name"`
	Status      partner.WarehouseStatus `json:"status"`
	ContactName string                  `json:"contact_name,omitempty"`
	Phone       string                  `json:"phone,omitempty"`
	Address     string                  `json:"address,omitempty"`
	City        string                  `json:"city,omitempty"`
	IsDefault   bool                    `json:"is_default"`
	Notes       string                  `json:"notes,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

// ToWarehouseResponse converts a warehouse aggregate to a response DTO
func ToWarehouseResponse(warehouse *partner.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:          warehouse.ID,
		Code:        warehouse.Code,
		Name:        warehouse.Name,
		Status:      warehouse.Status,
		ContactName: warehouse.ContactName,
		Phone:       warehouse.Phone,
		Address:     warehouse.Address,
		City:        warehouse.City,
		IsDefault:   warehouse.IsDefault,
		Notes:       warehouse.Notes,
		CreatedAt:   warehouse.CreatedAt,
		UpdatedAt:   warehouse.UpdatedAt,
	}
}

// CreateClientRequest represents a request to create a client
type CreateClientRequest struct {
	Code        string `json:"code" binding:"required,max=50"`
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"max=100"`
	TaxNumber   string `json:"tax_number" binding:"max=50"`
	Notes       string `json:"notes"`
}

// UpdateClientRequest updates a client's contact information
type UpdateClientRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"max=100"`
	Phone       string `json:"phone" binding:"max=50"`
	Email       string `json:"email" binding:"omitempty,email,max=200"`
	Address     string `json:"address"`
	City        string `json:"city" binding:"max=100"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ID          uuid.UUID            `json:"id"`
	Code        string               `json:"code"`
	Name        string               `json:"name"`
	ContactName string               `json:"contact_name,omitempty"`
	Phone       string               `json:"phone,omitempty"`
	Email       string               `json:"email,omitempty"`
	Address     string               `json:"address,omitempty"`
	City        string               `json:"city,omitempty"`
	TaxNumber   string               `json:"tax_number,omitempty"`
	Status      partner.ClientStatus `json:"status"`
	Notes       string               `json:"notes,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// ToClientResponse converts a client aggregate to a response DTO
func ToClientResponse(client *partner.Client) ClientResponse {
	return ClientResponse{
		ID:          client.ID,
		Code:        client.Code,
		Name:        client.Name,
		ContactName: client.ContactName,
		Phone:       client.Phone,
		Email:       client.Email,
		Address:     client.Address,
		City:        client.City,
		TaxNumber:   client.TaxNumber,
		Status:      client.Status,
		Notes:       client.Notes,
		CreatedAt:   client.CreatedAt,
		UpdatedAt:   client.UpdatedAt,
	}
}

// CreateVendorRequest represents a request to create a vendor
type CreateVendorRequest struct {
	Code         string `json:"code" binding:"required,max=50"`
	Name         string `json:"name" binding:"required,max=200"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Address      string `json:"address"`
	City         string `json:"city" binding:"max=100"`
	TaxNumber    string `json:"tax_number" binding:"max=50"`
	PaymentTerms string `json:"payment_terms" binding:"max=100"`
	Notes        string `json:"notes"`
}

// UpdateVendorRequest updates a vendor's contact information
type UpdateVendorRequest struct {
	Name         string `json:"name" binding:"required,max=200"`
	ContactName  string `json:"contact_name" binding:"max=100"`
	Phone        string `json:"phone" binding:"max=50"`
	Email        string `json:"email" binding:"omitempty,email,max=200"`
	Address      string `json:"address"`
	City         string `json:"city" binding:"max=100"`
	PaymentTerms string `json:"payment_terms" binding:"max=100"`
}

// VendorResponse represents a vendor in API responses
type VendorResponse struct {
	ID           uuid.UUID            `json:"id"`
	Code         string               `json:"code"`
	Name         string               `json:"name"`
	ContactName  string               `json:"contact_name,omitempty"`
	Phone        string               `json:"phone,omitempty"`
	Email        string               `json:"email,omitempty"`
	Address      string               `json:"address,omitempty"`
	City         string               `json:"city,omitempty"`
	TaxNumber    string               `json:"tax_number,omitempty"`
	PaymentTerms string               `json:"payment_terms,omitempty"`
	Status       partner.VendorStatus `json:"status"`
	Notes        string               `json:"notes,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// ToVendorResponse converts a vendor aggregate to a response DTO
func ToVendorResponse(vendor *partner.Vendor) VendorResponse {
	return VendorResponse{
		ID:           vendor.ID,
		Code:         vendor.Code,
		Name:         vendor.Name,
		ContactName:  vendor.ContactName,
		Phone:        vendor.Phone,
		Email:        vendor.Email,
		Address:      vendor.Address,
		City:         vendor.City,
		TaxNumber:    vendor.TaxNumber,
		PaymentTerms: vendor.PaymentTerms,
		Status:       vendor.Status,
		Notes:        vendor.Notes,
		CreatedAt:    vendor.CreatedAt,
		UpdatedAt:    vendor.UpdatedAt,
	}
}

// ListFilter represents pagination options for partner listings
type ListFilter struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
