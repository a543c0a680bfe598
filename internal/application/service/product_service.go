package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
	"github.com/wekesa/dukapos-api/pkg/pagination"
	"github.com/wekesa/dukapos-api/pkg/utils"
	"gorm.io/gorm"
)

// ProductService handles product catalog business logic
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// CreateProductInput contains data for creating a product
type CreateProductInput struct {
	Name       string
	SKU        string
	Barcode    *string
	CategoryID *uuid.UUID
	UOM        string
	Price      decimal.Decimal
	TaxRate    decimal.Decimal
	Discount   decimal.Decimal
}

// UpdateProductInput contains data for updating a product. Nil fields are
// left unchanged.
type UpdateProductInput struct {
	Name       *string
	Barcode    *string
	CategoryID *uuid.UUID
	UOM        *string
	Price      *decimal.Decimal
	TaxRate    *decimal.Decimal
	Discount   *decimal.Decimal
}

// Create creates a new product. An empty SKU gets a generated one.
func (s *ProductService) Create(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Price.IsNegative() {
		return nil, apperror.NewBadRequestError("Price cannot be negative")
	}

	sku := strings.TrimSpace(input.SKU)
	if sku == "" {
		sku = utils.GenerateSKU()
	} else {
		existing, err := s.productRepo.GetBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
	}

	uom := input.UOM
	if uom == "" {
		uom = "unit"
	}

	product := &entity.Product{
		Name:       input.Name,
		SKU:        sku,
		Barcode:    input.Barcode,
		CategoryID: input.CategoryID,
		UOM:        uom,
		Price:      input.Price,
		TaxRate:    input.TaxRate,
		Discount:   input.Discount,
		IsActive:   true,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("A product with this SKU already exists")
		}
		return nil, err
	}
	return product, nil
}

// GetByID retrieves a product by ID
func (s *ProductService) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// Update applies a partial update to a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Barcode != nil {
		product.Barcode = input.Barcode
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.UOM != nil {
		product.UOM = *input.UOM
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, apperror.NewBadRequestError("Price cannot be negative")
		}
		product.Price = *input.Price
	}
	if input.TaxRate != nil {
		product.TaxRate = *input.TaxRate
	}
	if input.Discount != nil {
		product.Discount = *input.Discount
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// SetStatus activates or deactivates a product for sale
func (s *ProductService) SetStatus(ctx context.Context, id uuid.UUID, active bool) error {
	return s.productRepo.SetActive(ctx, id, active)
}

// Delete soft-deletes a product
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// List retrieves products with filtering and pagination
func (s *ProductService) List(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params == nil {
		params = &repository.ProductFilterParams{}
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}
