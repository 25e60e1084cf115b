package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/partner"
	"github.com/partserp/backend/internal/domain/shared"
)

// WarehouseService maintains warehouses. At most one warehouse is the
// default; setting a new default clears the previous one.
type WarehouseService struct {
	warehouseRepo partner.WarehouseRepository
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(warehouseRepo partner.WarehouseRepository) *WarehouseService {
	return &WarehouseService{warehouseRepo: warehouseRepo}
}

// Create creates a new warehouse with a unique code
func (s *WarehouseService) Create(ctx context.Context, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := partner.NewWarehouse(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	warehouse.ContactName = req.ContactName
	warehouse.Phone = req.Phone
	warehouse.Address = req.Address
	warehouse.City = req.City
	warehouse.Notes = req.Notes

	if _, err := s.warehouseRepo.FindByCode(ctx, warehouse.Code); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A warehouse with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if req.IsDefault {
		if err := s.clearDefault(ctx); err != nil {
			return nil, err
		}
		warehouse.SetDefault(true)
	}

	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// Update updates a warehouse's contact information
func (s *WarehouseService) Update(ctx context.Context, warehouseID uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := warehouse.Update(req.Name, req.ContactName, req.Phone, req.Address, req.City); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// SetDefault makes the warehouse the default for operations
func (s *WarehouseService) SetDefault(ctx context.Context, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}

	if err := s.clearDefault(ctx); err != nil {
		return nil, err
	}
	warehouse.SetDefault(true)
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}

	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// clearDefault unsets the current default warehouse, if any
func (s *WarehouseService) clearDefault(ctx context.Context) error {
	current, err := s.warehouseRepo.FindDefault(ctx)
	if errors.Is(err, shared.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	current.SetDefault(false)
	return s.warehouseRepo.Save(ctx, current)
}

// Deactivate marks the warehouse inactive. Stock rows remain untouched.
func (s *WarehouseService) Deactivate(ctx context.Context, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := warehouse.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.warehouseRepo.Save(ctx, warehouse); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, warehouseID uuid.UUID) (*WarehouseResponse, error) {
	warehouse, err := s.warehouseRepo.FindByID(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(warehouse)
	return &response, nil
}

// List retrieves active warehouses with pagination
func (s *WarehouseService) List(ctx context.Context, filter ListFilter) ([]WarehouseResponse, int64, error) {
	domainFilter := buildListFilter(&filter)

	warehouses, err := s.warehouseRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.warehouseRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]WarehouseResponse, len(warehouses))
	for i := range warehouses {
		responses[i] = ToWarehouseResponse(&warehouses[i])
	}
	return responses, total, nil
}

// buildListFilter translates the API filter to the domain filter
func buildListFilter(filter *ListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "code"
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
