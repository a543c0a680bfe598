package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	domainRepo "github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) domainRepo.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	err := conn(ctx, r.db).Create(product).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("A product with this SKU already exists")
	}
	return err
}

func (r *productRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).
		Preload("Category").
		First(&product, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	if len(ids) == 0 {
		return []entity.Product{}, nil
	}
	var products []entity.Product
	err := conn(ctx, r.db).
		Where("id IN ?", ids).
		Find(&products).Error
	return products, err
}

func (r *productRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var product entity.Product
	err := conn(ctx, r.db).First(&product, "sku = ?", sku).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &product, err
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	return conn(ctx, r.db).Save(product).Error
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return conn(ctx, r.db).Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *productRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	var products []entity.Product
	var total int64

	query := conn(ctx, r.db).Model(&entity.Product{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR sku ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}
	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}
	if params.InStock != nil {
		query = query.Where("is_in_stock = ?", *params.InStock)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sort column is caller-supplied; only known columns are accepted
	sortBy := "name"
	switch params.SortBy {
	case "name", "price", "sku", "total_stock", "created_at":
		sortBy = params.SortBy
	}
	sortOrder := "ASC"
	if params.SortOrder == "DESC" || params.SortOrder == "desc" {
		sortOrder = "DESC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Category").Preload("StockBalances").
		Order(sortBy + " " + sortOrder).
		Find(&products).Error

	return products, total, err
}

func (r *productRepository) ListWithBalances(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product
	err := conn(ctx, r.db).
		Preload("StockBalances").
		Order("name ASC").
		Find(&products).Error
	return products, err
}

func (r *productRepository) UpdateTotalStock(ctx context.Context, id uuid.UUID, total int, inStock bool) error {
	result := conn(ctx, r.db).Model(&entity.Product{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_stock": total,
			"is_in_stock": inStock,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

func (r *productRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := conn(ctx, r.db).Model(&entity.Product{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperror.NewNotFoundError("Product")
	}
	return nil
}

func (r *productRepository) CountOutOfStock(ctx context.Context) (int64, error) {
	var count int64
	err := conn(ctx, r.db).Model(&entity.Product{}).
		Where("is_in_stock = ?", false).
		Count(&count).Error
	return count, err
}
