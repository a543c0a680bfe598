package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	domainRepo "github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/pagination"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) CreateTransaction(ctx context.Context, txn *entity.SalesTransaction) error {
	return conn(ctx, r.db).Create(txn).Error
}

func (r *saleRepository) CreateItems(ctx context.Context, items []entity.SalesItem) error {
	if len(items) == 0 {
		return nil
	}
	return conn(ctx, r.db).Create(&items).Error
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SalesTransaction, error) {
	var txn entity.SalesTransaction
	err := conn(ctx, r.db).
		Preload("Items").Preload("Items.Product").
		First(&txn, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &txn, err
}

func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SalesTransaction, int64, error) {
	var txns []entity.SalesTransaction
	var total int64

	query := conn(ctx, r.db).Model(&entity.SalesTransaction{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Items").
		Order("created_at DESC").
		Find(&txns).Error

	return txns, total, err
}

func (r *saleRepository) Summary(ctx context.Context, since time.Time) (*domainRepo.SalesSummary, error) {
	db := conn(ctx, r.db)

	var row struct {
		Transactions int64
		Revenue      decimal.Decimal
	}
	err := db.Model(&entity.SalesTransaction{}).
		Where("status = ? AND created_at >= ?", enum.SaleStatusCompleted, since).
		Select("COUNT(*) AS transactions, COALESCE(SUM(amount), 0) AS revenue").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	var itemsSold int64
	err = db.Model(&entity.SalesItem{}).
		Joins("JOIN sales_transactions ON sales_transactions.id = sales_items.sales_transaction_id").
		Where("sales_transactions.status = ? AND sales_transactions.created_at >= ?", enum.SaleStatusCompleted, since).
		Select("COALESCE(SUM(sales_items.quantity), 0)").
		Scan(&itemsSold).Error
	if err != nil {
		return nil, err
	}

	return &domainRepo.SalesSummary{
		Transactions: row.Transactions,
		Revenue:      row.Revenue,
		ItemsSold:    itemsSold,
	}, nil
}

func (r *saleRepository) TopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductRow, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []domainRepo.TopProductRow
	err := conn(ctx, r.db).Model(&entity.SalesItem{}).
		Joins("JOIN products ON products.id = sales_items.product_id").
		Joins("JOIN sales_transactions ON sales_transactions.id = sales_items.sales_transaction_id").
		Where("sales_transactions.status = ?", enum.SaleStatusCompleted).
		Select("sales_items.product_id, products.name, products.sku, SUM(sales_items.quantity) AS qty_sold, SUM(sales_items.revenue) AS revenue").
		Group("sales_items.product_id, products.name, products.sku").
		Order("revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
