package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product represents a sellable item. TotalStock is a denormalized cache of
// the sum of available quantity across all stock balances for the product;
// it is refreshed inside every transaction that mutates one of those
// balances and must always be recomputable from them.
type Product struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	SKU        string          `gorm:"size:100;unique;not null" json:"sku"`
	Barcode    *string         `gorm:"size:100" json:"barcode,omitempty"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	UOM        string          `gorm:"size:32;default:'unit'" json:"uom"`
	Price      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	TaxRate    decimal.Decimal `gorm:"type:decimal(5,2);default:0" json:"tax_rate"`
	Discount   decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"discount"`
	TotalStock int             `gorm:"default:0" json:"total_stock"`
	IsInStock  bool            `gorm:"default:false" json:"is_in_stock"`
	IsActive   bool            `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	StockBalances []StockBalance `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Category represents a product category
type Category struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	Slug      string         `gorm:"size:255;unique;not null" json:"slug"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new category
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}
