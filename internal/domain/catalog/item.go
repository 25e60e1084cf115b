package catalog

import (
	"strings"
	"time"

	"github.com/partserp/backend/internal/domain/shared"
	"github.com/partserp/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Item represents a spare part in the catalog. Identity (SKU, unit of
// measure) is immutable; prices and reorder settings are maintained by
// catalog staff. Items referenced by stock rows or order lines are never
// deleted, so no delete operation exists on the aggregate.
type Item struct {
	shared.BaseAggregateRoot
	SKU             string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Description     string          `gorm:"type:text"`
	UnitOfMeasure   UnitOfMeasure   `gorm:"type:varchar(20);not null;default:'PCS'"`
	CostPrice       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderLevel    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Suggested ledger min_quantity
	ReorderQuantity decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // Suggested replenishment size
	ImageKey        string          `gorm:"type:varchar(500)"`                     // Object storage key for the item photo
	IsActive        bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new catalog item
func NewItem(sku, name, unitOfMeasure string, costPrice, sellingPrice valueobject.Money) (*Item, error) {
	sku = strings.TrimSpace(strings.ToUpper(sku))
	if sku == "" {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot be empty")
	}
	if len(sku) > 50 {
		return nil, shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	unit, err := NormalizeUnit(unitOfMeasure)
	if err != nil {
		return nil, err
	}
	if costPrice.IsNegative() || sellingPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SKU:               sku,
		Name:              name,
		UnitOfMeasure:     unit,
		CostPrice:         costPrice.Amount(),
		SellingPrice:      sellingPrice.Amount(),
		ReorderLevel:      decimal.Zero,
		ReorderQuantity:   decimal.Zero,
		IsActive:          true,
	}, nil
}

// UpdatePrices updates cost and selling prices
func (i *Item) UpdatePrices(costPrice, sellingPrice valueobject.Money) error {
	if costPrice.IsNegative() || sellingPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	i.CostPrice = costPrice.Amount()
	i.SellingPrice = sellingPrice.Amount()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetReorderPolicy sets the reorder level and quantity
func (i *Item) SetReorderPolicy(level, quantity decimal.Decimal) error {
	if level.IsNegative() || quantity.IsNegative() {
		return shared.ErrInvalidQuantity
	}

	i.ReorderLevel = level
	i.ReorderQuantity = quantity
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetImageKey records the object storage key of the item photo
func (i *Item) SetImageKey(key string) {
	i.ImageKey = key
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// Deactivate hides the item from new orders without deleting it
func (i *Item) Deactivate() {
	i.IsActive = false
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// Activate makes the item orderable again
func (i *Item) Activate() {
	i.IsActive = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}
