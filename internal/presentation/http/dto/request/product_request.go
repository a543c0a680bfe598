package request

// CreateProductRequest represents a product creation request
type CreateProductRequest struct {
	Name       string  `json:"name" binding:"required,min=1,max=255"`
	SKU        string  `json:"sku" binding:"omitempty,max=100"`
	Barcode    *string `json:"barcode" binding:"omitempty,max=100"`
	CategoryID string  `json:"category_id" binding:"omitempty,uuid"`
	UOM        string  `json:"uom" binding:"omitempty,max=32"`
	Price      string  `json:"price" binding:"required"`
	TaxRate    string  `json:"tax_rate" binding:"omitempty"`
	Discount   string  `json:"discount" binding:"omitempty"`
}

// UpdateProductRequest represents a product update request. Omitted fields
// are left unchanged.
type UpdateProductRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=1,max=255"`
	Barcode    *string `json:"barcode" binding:"omitempty,max=100"`
	CategoryID *string `json:"category_id" binding:"omitempty,uuid"`
	UOM        *string `json:"uom" binding:"omitempty,max=32"`
	Price      *string `json:"price" binding:"omitempty"`
	TaxRate    *string `json:"tax_rate" binding:"omitempty"`
	Discount   *string `json:"discount" binding:"omitempty"`
}

// UpdateProductStatusRequest toggles whether a product can be sold
type UpdateProductStatusRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// ProductFilterRequest represents product listing query parameters
type ProductFilterRequest struct {
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
	Search     string `form:"search"`
	CategoryID string `form:"category_id"`
	InStock    *bool  `form:"in_stock"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
}
