package partner

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/partserp/backend/internal/domain/partner"
	"github.com/partserp/backend/internal/domain/shared"
)

// VendorService maintains the vendor roster
type VendorService struct {
	vendorRepo partner.VendorRepository
}

// NewVendorService creates a new VendorService
func NewVendorService(vendorRepo partner.VendorRepository) *VendorService {
	return &VendorService{vendorRepo: vendorRepo}
}

// Create creates a new vendor with a unique code
func (s *VendorService) Create(ctx context.Context, req CreateVendorRequest) (*VendorResponse, error) {
	vendor, err := partner.NewVendor(req.Code, req.Name)
	if err != nil {
		return nil, err
	}
	vendor.ContactName = req.ContactName
	vendor.Phone = req.Phone
	vendor.Email = req.Email
	vendor.Address = req.Address
	vendor.City = req.City
	vendor.TaxNumber = req.TaxNumber
	vendor.PaymentTerms = req.PaymentTerms
	vendor.Notes = req.Notes

	if _, err := s.vendorRepo.FindByCode(ctx, vendor.Code); err == nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A vendor with this code already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}

	response := ToVendorResponse(vendor)
	return &response, nil
}

// Update updates a vendor's contact information
func (s *VendorService) Update(ctx context.Context, vendorID uuid.UUID, req UpdateVendorRequest) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if err := vendor.Update(req.Name, req.ContactName, req.Phone, req.Email, req.Address, req.City, req.PaymentTerms); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// Deactivate marks the vendor inactive
func (s *VendorService) Deactivate(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if err := vendor.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.vendorRepo.Save(ctx, vendor); err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// GetByID retrieves a vendor by ID
func (s *VendorService) GetByID(ctx context.Context, vendorID uuid.UUID) (*VendorResponse, error) {
	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	response := ToVendorResponse(vendor)
	return &response, nil
}

// List retrieves active vendors with pagination
func (s *VendorService) List(ctx context.Context, filter ListFilter) ([]VendorResponse, int64, error) {
	domainFilter := buildListFilter(&filter)

	vendors, err := s.vendorRepo.FindActive(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.vendorRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VendorResponse, len(vendors))
	for i := range vendors {
		responses[i] = ToVendorResponse(&vendors[i])
	}
	return responses, total, nil
}
