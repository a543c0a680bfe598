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

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) CreateMove(ctx context.Context, move *entity.StockMove) error {
	return conn(ctx, r.db).Create(move).Error
}

// AddToBalance applies the delta with a single UPDATE so two concurrent
// movements against the same pair serialize on the row instead of racing a
// read-modify-write. RowsAffected == 0 is the explicit not-found signal the
// ledger turns into create-or-fail.
func (r *stockRepository) AddToBalance(ctx context.Context, productID, locationID uuid.UUID, delta int) (*entity.StockBalance, error) {
	db := conn(ctx, r.db)

	result := db.Model(&entity.StockBalance{}).
		Where("product_id = ? AND location_id = ?", productID, locationID).
		Updates(map[string]interface{}{
			"on_hand_qty":   gorm.Expr("on_hand_qty + ?", delta),
			"available_qty": gorm.Expr("available_qty + ?", delta),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainRepo.ErrBalanceNotFound
	}

	var balance entity.StockBalance
	if err := db.First(&balance, "product_id = ? AND location_id = ?", productID, locationID).Error; err != nil {
		return nil, err
	}
	return &balance, nil
}

func (r *stockRepository) CreateBalance(ctx context.Context, balance *entity.StockBalance) error {
	err := conn(ctx, r.db).Create(balance).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflictError("Stock balance already exists for this product and location")
	}
	return err
}

func (r *stockRepository) GetBalance(ctx context.Context, productID, locationID uuid.UUID) (*entity.StockBalance, error) {
	var balance entity.StockBalance
	err := conn(ctx, r.db).
		First(&balance, "product_id = ? AND location_id = ?", productID, locationID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &balance, err
}

func (r *stockRepository) SumAvailable(ctx context.Context, productID uuid.UUID) (int, error) {
	var total int64
	err := conn(ctx, r.db).Model(&entity.StockBalance{}).
		Where("product_id = ?", productID).
		Select("COALESCE(SUM(available_qty), 0)").
		Scan(&total).Error
	return int(total), err
}

func (r *stockRepository) ListBalances(ctx context.Context) ([]entity.StockBalance, error) {
	var balances []entity.StockBalance
	err := conn(ctx, r.db).
		Joins("JOIN products ON products.id = stock_balances.product_id").
		Joins("JOIN locations ON locations.id = stock_balances.location_id").
		Preload("Product").Preload("Product.Category").Preload("Location").
		Order("products.name ASC, locations.name ASC").
		Find(&balances).Error
	return balances, err
}

func (r *stockRepository) ListMoves(ctx context.Context, params *domainRepo.MoveFilterParams) ([]entity.StockMove, int64, error) {
	var moves []entity.StockMove
	var total int64

	query := conn(ctx, r.db).Model(&entity.StockMove{})

	if params.ProductID != nil {
		query = query.Where("product_id = ?", *params.ProductID)
	}
	if params.LocationID != nil {
		query = query.Where("from_location_id = ? OR to_location_id = ?", *params.LocationID, *params.LocationID)
	}
	if params.RefID != "" {
		query = query.Where("ref_id = ?", params.RefID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Product").Preload("FromLocation").Preload("ToLocation").
		Order("created_at DESC").
		Find(&moves).Error

	return moves, total, err
}
