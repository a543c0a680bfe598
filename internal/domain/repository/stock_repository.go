package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/pkg/pagination"
)

// StockRepository owns all reads and writes of stock balances and the
// movement log. Movements are append-only; balances are only ever mutated
// through AddToBalance or created through CreateBalance.
type StockRepository interface {
	// CreateMove appends an immutable movement to the log
	CreateMove(ctx context.Context, move *entity.StockMove) error
	// AddToBalance atomically applies a signed delta to the on-hand and
	// available quantities of a (product, location) balance row and returns
	// the resulting row. Returns ErrBalanceNotFound when no row exists for
	// the pair.
	AddToBalance(ctx context.Context, productID, locationID uuid.UUID, delta int) (*entity.StockBalance, error)
	// CreateBalance creates a new balance row; a duplicate (product,
	// location) pair is surfaced as a conflict error
	CreateBalance(ctx context.Context, balance *entity.StockBalance) error
	GetBalance(ctx context.Context, productID, locationID uuid.UUID) (*entity.StockBalance, error)
	// SumAvailable sums available quantity across every balance row of a product
	SumAvailable(ctx context.Context, productID uuid.UUID) (int, error)
	// ListBalances returns balances with product and location preloaded,
	// ordered by product then location name
	ListBalances(ctx context.Context) ([]entity.StockBalance, error)
	// ListMoves returns movement history, newest first
	ListMoves(ctx context.Context, params *MoveFilterParams) ([]entity.StockMove, int64, error)
}

// MoveFilterParams contains filtering parameters for movement history queries
type MoveFilterParams struct {
	Pagination *pagination.PaginationParams
	ProductID  *uuid.UUID
	LocationID *uuid.UUID
	RefID      string
}
