package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SalesTransaction is a completed checkout. It is created once and never
// updated by the flows covered here; every SALE stock move carries its id
// as the movement reference.
type SalesTransaction struct {
	ID              uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	TransactionNo   string             `gorm:"size:64;unique;not null" json:"transaction_no"`
	Amount          decimal.Decimal    `gorm:"type:decimal(12,2);not null" json:"amount"`
	DiscountApplied decimal.Decimal    `gorm:"type:decimal(12,2);default:0" json:"discount_applied"`
	PaymentMethod   enum.PaymentMethod `gorm:"size:32;not null" json:"payment_method"`
	Status          enum.SaleStatus    `gorm:"default:0" json:"status"`
	CashierID       uuid.UUID          `gorm:"type:uuid;not null;index" json:"cashier_id"`
	CreatedAt       time.Time          `json:"created_at"`

	// Relationships
	Cashier User        `gorm:"foreignKey:CashierID" json:"-"`
	Items   []SalesItem `gorm:"foreignKey:SalesTransactionID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new sales transaction
func (t *SalesTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesTransaction model
func (SalesTransaction) TableName() string {
	return "sales_transactions"
}

// SalesItem is a line item of a sales transaction
type SalesItem struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	SalesTransactionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"sales_transaction_id"`
	ProductID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id"`
	Quantity           int             `gorm:"not null" json:"quantity"`
	Price              decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Revenue            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"revenue"`
	CreatedAt          time.Time       `json:"created_at"`

	// Relationships
	Product Product `gorm:"foreignKey:ProductID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sales item
func (i *SalesItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SalesItem model
func (SalesItem) TableName() string {
	return "sales_items"
}
