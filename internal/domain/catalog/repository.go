package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/shared"
)

// ItemRepository defines the interface for catalog item persistence
type ItemRepository interface {
	// FindByID finds an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindBySKU finds an item by its unique SKU
	FindBySKU(ctx context.Context, sku string) (*Item, error)

	// FindByIDs loads multiple items in one query
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Item, error)

	// FindActive lists active items matching the filter
	FindActive(ctx context.Context, filter shared.Filter) ([]Item, error)

	// Search finds items whose SKU or name matches the query
	Search(ctx context.Context, query string, filter shared.Filter) ([]Item, error)

	// Save creates or updates an item
	Save(ctx context.Context, item *Item) error

	// ExistsBySKU checks if a SKU is taken
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// Count counts items matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
