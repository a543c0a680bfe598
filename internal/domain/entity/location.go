package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Location is a physical place stock lives at. Stock is always scoped to a
// (product, location) pair; a product with no balance row at a location
// behaves as if the pair does not exist.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Address   *string   `gorm:"size:512" json:"address,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	StockBalances []StockBalance `gorm:"foreignKey:LocationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new location
func (l *Location) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Location model
func (Location) TableName() string {
	return "locations"
}
