package partner

import (
	"strings"
	"time"

	"github.com/partserp/backend/internal/domain/shared"
)

// VendorStatus represents the status of a vendor
type VendorStatus string

const (
	VendorStatusActive   VendorStatus = "active"
	VendorStatusInactive VendorStatus = "inactive"
)

// Vendor represents a supplier we purchase parts from
type Vendor struct {
	shared.BaseAggregateRoot
	Code         string       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name         string       `gorm:"type:varchar(200);not null"`
	ContactName  string       `gorm:"type:varchar(100)"`
	Phone        string       `gorm:"type:varchar(50);index"`
	Email        string       `gorm:"type:varchar(200)"`
	Address      string       `gorm:"type:text"`
	City         string       `gorm:"type:varchar(100)"`
	TaxNumber    string       `gorm:"type:varchar(50)"`
	PaymentTerms string       `gorm:"type:varchar(100)"` // e.g. "NET 30"
	Status       VendorStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Notes        string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vendor) TableName() string {
	return "vendors"
}

// NewVendor creates a new vendor with required fields
func NewVendor(code, name string) (*Vendor, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Vendor{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            VendorStatusActive,
	}, nil
}

// Update updates the vendor's contact information
func (v *Vendor) Update(name, contactName, phone, email, address, city, paymentTerms string) error {
	if err := validateName(name); err != nil {
		return err
	}

	v.Name = name
	v.ContactName = contactName
	v.Phone = phone
	v.Email = email
	v.Address = address
	v.City = city
	v.PaymentTerms = paymentTerms
	v.UpdatedAt = time.Now()
	v.IncrementVersion()

	return nil
}

// Deactivate marks the vendor as inactive
func (v *Vendor) Deactivate() error {
	if v.Status == VendorStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Vendor is already inactive")
	}
	v.Status = VendorStatusInactive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// Activate marks the vendor as active
func (v *Vendor) Activate() error {
	if v.Status == VendorStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Vendor is already active")
	}
	v.Status = VendorStatusActive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// IsActive checks if the vendor can receive new purchase orders
func (v *Vendor) IsActive() bool {
	return v.Status == VendorStatusActive
}
