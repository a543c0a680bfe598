package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	// GetByIDs retrieves multiple products by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *ProductFilterParams) ([]entity.Product, int64, error)
	// ListWithBalances returns products with their stock balance rows preloaded
	ListWithBalances(ctx context.Context) ([]entity.Product, error)
	// UpdateTotalStock writes the denormalized stock cache for a product
	UpdateTotalStock(ctx context.Context, id uuid.UUID, total int, inStock bool) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	CountOutOfStock(ctx context.Context) (int64, error)
}

// ProductFilterParams contains filtering parameters for product queries
type ProductFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	CategoryID *uuid.UUID
	InStock    *bool
	SortBy     string
	SortOrder  string
}
