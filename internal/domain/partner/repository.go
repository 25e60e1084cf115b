package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
)

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Warehouse, error)

	// FindByCode finds a warehouse by its unique code
	FindByCode(ctx context.Context, code string) (*Warehouse, error)

	// FindActive lists active warehouses
	FindActive(ctx context.Context, filter shared.Filter) ([]Warehouse, error)

	// FindDefault finds the default warehouse, if one is set
	FindDefault(ctx context.Context) (*Warehouse, error)

	// Save creates or updates a warehouse
	Save(ctx context.Context, warehouse *Warehouse) error

	// Count counts warehouses matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// ClientRepository defines the interface for client persistence
type ClientRepository interface {
	// FindByID finds a client by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Client, error)

	// FindByCode finds a client by its unique code
	FindByCode(ctx context.Context, code string) (*Client, error)

	// FindActive lists active clients
	FindActive(ctx context.Context, filter shared.Filter) ([]Client, error)

	// Save creates or updates a client
	Save(ctx context.Context, client *Client) error

	// Count counts clients matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// VendorRepository defines the interface for vendor persistence
type VendorRepository interface {
	// FindByID finds a vendor by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vendor, error)

	// FindByCode finds a vendor by its unique code
	FindByCode(ctx context.Context, code string) (*Vendor, error)

	// FindActive lists active vendors
	FindActive(ctx context.Context, filter shared.Filter) ([]Vendor, error)

	// Save creates or updates a vendor
	Save(ctx context.Context, vendor *Vendor) error

	// Count counts vendors matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
