package request

// CartItemRequest is one line of a checkout cart
type CartItemRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Quantity  int    `json:"quantity" binding:"required,gt=0"`
}

// CheckoutRequest represents a point-of-sale checkout. Total is the amount
// the client computed and displayed to the customer; the server recomputes
// it from current prices and rejects the sale when the two disagree.
type CheckoutRequest struct {
	Cart           []CartItemRequest `json:"cart" binding:"required,min=1,dive"`
	Total          string            `json:"total" binding:"required"`
	DiscountAmount string            `json:"discount_amount" binding:"omitempty"`
	PaymentMethod  string            `json:"payment_method" binding:"required,oneof=CASH CARD MOBILE"`
}
