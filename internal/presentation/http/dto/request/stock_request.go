package request

// ReceiveStockRequest represents an incoming stock receipt
type ReceiveStockRequest struct {
	ProductID  string  `json:"product_id" binding:"required,uuid"`
	LocationID string  `json:"location_id" binding:"required,uuid"`
	Qty        int     `json:"qty" binding:"required,gt=0"`
	RefType    string  `json:"ref_type" binding:"omitempty,max=32"`
	RefID      string  `json:"ref_id" binding:"omitempty,max=100"`
	UnitCost   *string `json:"unit_cost" binding:"omitempty"`
}

// IssueStockRequest represents an outgoing stock issue
type IssueStockRequest struct {
	ProductID  string `json:"product_id" binding:"required,uuid"`
	LocationID string `json:"location_id" binding:"required,uuid"`
	Qty        int    `json:"qty" binding:"required,gt=0"`
	RefType    string `json:"ref_type" binding:"omitempty,max=32"`
	RefID      string `json:"ref_id" binding:"omitempty,max=100"`
}

// TransferStockRequest represents a transfer between two locations
type TransferStockRequest struct {
	ProductID      string `json:"product_id" binding:"required,uuid"`
	FromLocationID string `json:"from_location_id" binding:"required,uuid"`
	ToLocationID   string `json:"to_location_id" binding:"required,uuid"`
	Qty            int    `json:"qty" binding:"required,gt=0"`
}

// AdjustStockRequest represents a manual stock correction. QtyChange is
// signed and must not be zero; the reason is mandatory for the audit trail.
type AdjustStockRequest struct {
	ProductID  string `json:"product_id" binding:"required,uuid"`
	LocationID string `json:"location_id" binding:"required,uuid"`
	QtyChange  int    `json:"qty_change" binding:"required"`
	Reason     string `json:"reason" binding:"required,min=5,max=500"`
}

// MovementFilterRequest represents stock movement listing query parameters
type MovementFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	ProductID  string `form:"product_id"`
	LocationID string `form:"location_id"`
	RefID      string `form:"ref_id"`
}
