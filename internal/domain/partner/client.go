package partner

import (
	"strings"
	"time"

	"github.com/partserp/backend/internal/domain/shared"
)

// ClientStatus represents the status of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// Client represents a customer who buys parts from us
type Client struct {
	shared.BaseAggregateRoot
	Code        string       `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string       `gorm:"type:varchar(200);not null"`
	ContactName string       `gorm:"type:varchar(100)"`
	Phone       string       `gorm:"type:varchar(50);index"`
	Email       string       `gorm:"type:varchar(200)"`
	Address     string       `gorm:"type:text"`
	City        string       `gorm:"type:varchar(100)"`
	TaxNumber   string       `gorm:"type:varchar(50)"`
	Status      ClientStatus `gorm:"type:varchar(20);not null;default:'active'"`
	Notes       string       `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// NewClient creates a new client with required fields
func NewClient(code, name string) (*Client, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Client{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Status:            ClientStatusActive,
	}, nil
}

// Update updates the client's contact information
func (c *Client) Update(name, contactName, phone, email, address, city string) error {
	if err := validateName(name); err != nil {
		return err
	}

	c.Name = name
	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.Address = address
	c.City = city
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// Deactivate marks the client as inactive
func (c *Client) Deactivate() error {
	if c.Status == ClientStatusInactive {
		return shared.NewDomainError("ALREADY_INACTIVE", "Client is already inactive")
	}
	c.Status = ClientStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate marks the client as active
func (c *Client) Activate() error {
	if c.Status == ClientStatusActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Client is already active")
	}
	c.Status = ClientStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// IsActive checks if the client can place new orders
func (c *Client) IsActive() bool {
	return c.Status == ClientStatusActive
}
