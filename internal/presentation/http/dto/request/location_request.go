package request

// CreateLocationRequest represents a stock location creation request
type CreateLocationRequest struct {
	Name    string  `json:"name" binding:"required,min=1,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
}
