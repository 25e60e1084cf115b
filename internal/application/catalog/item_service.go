package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/catalog"
	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
)

// ItemService maintains the parts catalog. Items are reference data for
// the stock engine; they are deactivated, never deleted.
type ItemService struct {
	itemRepo catalog.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new catalog item with a unique SKU
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	item, err := catalog.NewItem(req.SKU, req.Name, req.UnitOfMeasure,
		valueobject.NewMoneyUSD(req.CostPrice), valueobject.NewMoneyUSD(req.SellingPrice))
	if err != nil {
		return nil, err
	}
	item.Description = req.Description
	if err := item.SetReorderPolicy(req.ReorderLevel, req.ReorderQuantity); err != nil {
		return nil, err
	}

	exists, err := s.itemRepo.ExistsBySKU(ctx, item.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("DUPLICATE_SKU", "An item with this SKU already exists")
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Update updates an item's mutable fields
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
		}
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.CostPrice != nil || req.SellingPrice != nil {
		cost := item.CostPrice
		selling := item.SellingPrice
		if req.CostPrice != nil {
			cost = *req.CostPrice
		}
		if req.SellingPrice != nil {
			selling = *req.SellingPrice
		}
		if err := item.UpdatePrices(valueobject.NewMoneyUSD(cost), valueobject.NewMoneyUSD(selling)); err != nil {
			return nil, err
		}
	}
	if req.ReorderLevel != nil || req.ReorderQuantity != nil {
		level := item.ReorderLevel
		qty := item.ReorderQuantity
		if req.ReorderLevel != nil {
			level = *req.ReorderLevel
		}
		if req.ReorderQuantity != nil {
			qty = *req.ReorderQuantity
		}
		if err := item.SetReorderPolicy(level, qty); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Deactivate hides the item from new orders
func (s *ItemService) Deactivate(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	return s.toggleActive(ctx, itemID, false)
}

// Activate makes the item orderable again
func (s *ItemService) Activate(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	return s.toggleActive(ctx, itemID, true)
}

func (s *ItemService) toggleActive(ctx context.Context, itemID uuid.UUID, active bool) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if active {
		item.Activate()
	} else {
		item.Deactivate()
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// GetBySKU retrieves an item by its SKU
func (s *ItemService) GetBySKU(ctx context.Context, sku string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination. A query searches SKU
// and name; otherwise active items are listed.
func (s *ItemService) List(ctx context.Context, filter ItemListFilter) ([]ItemResponse, int64, error) {
	domainFilter := buildItemFilter(&filter)

	var (
		items []catalog.Item
		err   error
	)
	if filter.Query != "" {
		items, err = s.itemRepo.Search(ctx, filter.Query, domainFilter)
	} else {
		items, err = s.itemRepo.FindActive(ctx, domainFilter)
	}
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses, total, nil
}

// buildItemFilter translates the API filter to the domain filter
func buildItemFilter(filter *ItemListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "sku"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}
	return shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}
}
