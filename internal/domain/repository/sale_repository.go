package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// SaleRepository defines the interface for sales transaction data operations
type SaleRepository interface {
	CreateTransaction(ctx context.Context, txn *entity.SalesTransaction) error
	CreateItems(ctx context.Context, items []entity.SalesItem) error
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.SalesTransaction, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.SalesTransaction, int64, error)
	// Summary aggregates completed sales since the given time
	Summary(ctx context.Context, since time.Time) (*SalesSummary, error)
	// TopProducts ranks products by revenue across all completed sales
	TopProducts(ctx context.Context, limit int) ([]TopProductRow, error)
}

// SalesSummary holds aggregate sales figures for a period
type SalesSummary struct {
	Transactions int64           `json:"transactions"`
	Revenue      decimal.Decimal `json:"revenue"`
	ItemsSold    int64           `json:"items_sold"`
}

// TopProductRow is one row of the top-products report
type TopProductRow struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	QtySold   int64           `json:"qty_sold"`
	Revenue   decimal.Decimal `json:"revenue"`
}
