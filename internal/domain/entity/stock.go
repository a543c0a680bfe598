package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// StockBalance is the mutable stock aggregate per (product, location) pair.
// OnHandQty must never go negative; AvailableQty tracks OnHandQty until
// reservations are implemented (CommittedQty is reserved for that).
type StockBalance struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_balance_product_location" json:"product_id"`
	LocationID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_stock_balance_product_location" json:"location_id"`
	OnHandQty    int       `gorm:"not null;default:0" json:"on_hand_qty"`
	CommittedQty int       `gorm:"not null;default:0" json:"committed_qty"`
	AvailableQty int       `gorm:"not null;default:0" json:"available_qty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relationships
	Product  Product  `gorm:"foreignKey:ProductID" json:"-"`
	Location Location `gorm:"foreignKey:LocationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock balance
func (b *StockBalance) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockBalance model
func (StockBalance) TableName() string {
	return "stock_balances"
}

// StockMove is an immutable record of a stock-affecting event. Rows are only
// ever inserted; the movement log is the audit trail from which any balance
// can be reconstructed.
type StockMove struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	ProductID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"product_id"`
	FromLocationID *uuid.UUID       `gorm:"type:uuid;index" json:"from_location_id,omitempty"`
	ToLocationID   *uuid.UUID       `gorm:"type:uuid;index" json:"to_location_id,omitempty"`
	Qty            int              `gorm:"not null" json:"qty"`
	UnitCost       *decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_cost,omitempty"`
	Reason         enum.MoveReason  `gorm:"size:32;not null;index" json:"reason"`
	RefType        string           `gorm:"size:64" json:"ref_type"`
	RefID          string           `gorm:"size:128;index" json:"ref_id"`
	CreatedBy      uuid.UUID        `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt      time.Time        `json:"created_at"`

	// Relationships
	Product      Product   `gorm:"foreignKey:ProductID" json:"-"`
	FromLocation *Location `gorm:"foreignKey:FromLocationID" json:"-"`
	ToLocation   *Location `gorm:"foreignKey:ToLocationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock move
func (m *StockMove) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the StockMove model
func (StockMove) TableName() string {
	return "stock_moves"
}

// MoveDirection is the tagged shape of a movement: a pure receipt carries only
// a destination, a pure issue only a source, and a transfer leg carries both
// while affecting exactly one side. Constructing one through Receipt, Issue,
// TransferOut or TransferIn makes the "neither location set" state
// unrepresentable.
type MoveDirection struct {
	incoming bool
	from     *uuid.UUID
	to       *uuid.UUID
}

// Receipt is an incoming movement into a location with no source
func Receipt(to uuid.UUID) MoveDirection {
	return MoveDirection{incoming: true, to: &to}
}

// Issue is an outgoing movement from a location with no destination
func Issue(from uuid.UUID) MoveDirection {
	return MoveDirection{incoming: false, from: &from}
}

// TransferOut is the outgoing leg of a transfer; it decrements the source
func TransferOut(from, to uuid.UUID) MoveDirection {
	return MoveDirection{incoming: false, from: &from, to: &to}
}

// TransferIn is the incoming leg of a transfer; it increments the destination
func TransferIn(from, to uuid.UUID) MoveDirection {
	return MoveDirection{incoming: true, from: &from, to: &to}
}

// Incoming reports whether the movement adds stock at the affected location
func (d MoveDirection) Incoming() bool {
	return d.incoming
}

// Affected returns the single location whose balance this movement changes
func (d MoveDirection) Affected() uuid.UUID {
	if d.incoming {
		return *d.to
	}
	return *d.from
}

// SignedQty applies the direction's sign to an unsigned quantity
func (d MoveDirection) SignedQty(qty int) int {
	if d.incoming {
		return qty
	}
	return -qty
}

// FromID returns the source location, nil for a pure receipt
func (d MoveDirection) FromID() *uuid.UUID {
	return d.from
}

// ToID returns the destination location, nil for a pure issue
func (d MoveDirection) ToID() *uuid.UUID {
	return d.to
}
