package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
)

// LedgerService is the single writer of stock movements and balances. Every
// stock-affecting flow (receipt, sale, transfer leg, adjustment) goes through
// ApplyMovement, which records the movement, applies the balance delta and
// refreshes the product's cached total as one atomic unit.
type LedgerService struct {
	stockRepo    repository.StockRepository
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	tx           repository.Transactor
}

// NewLedgerService creates a new ledger service
func NewLedgerService(
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	tx repository.Transactor,
) *LedgerService {
	return &LedgerService{
		stockRepo:    stockRepo,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		tx:           tx,
	}
}

// MovementInput describes a single stock movement to apply
type MovementInput struct {
	ProductID uuid.UUID
	Direction entity.MoveDirection
	Qty       int
	Reason    enum.MoveReason
	RefType   string
	RefID     string
	UnitCost  *decimal.Decimal
	ActorID   uuid.UUID
}

// MovementResult is what a successfully applied movement produced
type MovementResult struct {
	Move       *entity.StockMove    `json:"stock_move"`
	Balance    *entity.StockBalance `json:"stock_balance"`
	TotalStock int                  `json:"total_stock"`
}

// ApplyMovement records one movement and updates the affected balance
// atomically. An incoming movement at a pair with no balance row creates the
// row seeded at the movement quantity; an outgoing one against a missing row
// fails. A delta that would leave on-hand stock negative aborts the whole
// transaction, movement insert included.
func (s *LedgerService) ApplyMovement(ctx context.Context, input *MovementInput) (*MovementResult, error) {
	if input.Qty <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be a positive integer")
	}
	if !input.Reason.Valid() {
		return nil, apperror.NewBadRequestError("Unknown movement reason: " + input.Reason.String())
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	affected := input.Direction.Affected()
	location, err := s.locationRepo.GetByID(ctx, affected)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, apperror.NewNotFoundError("Location")
	}

	var result *MovementResult
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		move := &entity.StockMove{
			ProductID:      input.ProductID,
			FromLocationID: input.Direction.FromID(),
			ToLocationID:   input.Direction.ToID(),
			Qty:            input.Qty,
			UnitCost:       input.UnitCost,
			Reason:         input.Reason,
			RefType:        input.RefType,
			RefID:          input.RefID,
			CreatedBy:      input.ActorID,
		}
		if err := s.stockRepo.CreateMove(ctx, move); err != nil {
			return err
		}

		delta := input.Direction.SignedQty(input.Qty)
		balance, err := s.stockRepo.AddToBalance(ctx, input.ProductID, affected, delta)
		if errors.Is(err, repository.ErrBalanceNotFound) {
			if !input.Direction.Incoming() {
				// An issue against a pair that never held stock is an
				// error, not an implicit creation.
				return apperror.NewNotFoundError("Stock balance")
			}
			balance = &entity.StockBalance{
				ProductID:    input.ProductID,
				LocationID:   affected,
				OnHandQty:    input.Qty,
				CommittedQty: 0,
				AvailableQty: input.Qty,
			}
			if err := s.stockRepo.CreateBalance(ctx, balance); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		if balance.OnHandQty < 0 {
			return apperror.NewNegativeStockError(product.Name)
		}

		total, err := s.RefreshProductStock(ctx, input.ProductID)
		if err != nil {
			return err
		}

		result = &MovementResult{Move: move, Balance: balance, TotalStock: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// RefreshProductStock recomputes a product's cached total from its balance
// rows and writes it back together with the derived in-stock flag. Must run
// inside the same transaction as the balance mutation it follows; calling it
// again without an intervening mutation yields the same total.
func (s *LedgerService) RefreshProductStock(ctx context.Context, productID uuid.UUID) (int, error) {
	total, err := s.stockRepo.SumAvailable(ctx, productID)
	if err != nil {
		return 0, err
	}
	if err := s.productRepo.UpdateTotalStock(ctx, productID, total, total > 0); err != nil {
		return 0, err
	}
	return total, nil
}
