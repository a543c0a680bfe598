package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
	"github.com/wekesa/dukapos-api/pkg/pagination"
	"github.com/wekesa/dukapos-api/pkg/utils"
)

// StockService exposes the inventory operations built on the ledger:
// receipts, issues, transfers, manual adjustments, and the read views
type StockService struct {
	ledger      *LedgerService
	stockRepo   repository.StockRepository
	productRepo repository.ProductRepository
	tx          repository.Transactor
}

// NewStockService creates a new stock service
func NewStockService(
	ledger *LedgerService,
	stockRepo repository.StockRepository,
	productRepo repository.ProductRepository,
	tx repository.Transactor,
) *StockService {
	return &StockService{
		ledger:      ledger,
		stockRepo:   stockRepo,
		productRepo: productRepo,
		tx:          tx,
	}
}

// ReceiveInput represents an incoming stock receipt, e.g. a purchase delivery
type ReceiveInput struct {
	ProductID  uuid.UUID
	LocationID uuid.UUID
	Qty        int
	RefType    string
	RefID      string
	UnitCost   *decimal.Decimal
	ActorID    uuid.UUID
}

// Receive adds stock at a location, creating the balance row on first receipt
func (s *StockService) Receive(ctx context.Context, input *ReceiveInput) (*MovementResult, error) {
	refType := input.RefType
	if refType == "" {
		refType = enum.RefTypePurchaseOrder
	}
	return s.ledger.ApplyMovement(ctx, &MovementInput{
		ProductID: input.ProductID,
		Direction: entity.Receipt(input.LocationID),
		Qty:       input.Qty,
		Reason:    enum.MoveReasonReceipt,
		RefType:   refType,
		RefID:     input.RefID,
		UnitCost:  input.UnitCost,
		ActorID:   input.ActorID,
	})
}

// IssueInput represents an outgoing stock issue
type IssueInput struct {
	ProductID  uuid.UUID
	LocationID uuid.UUID
	Qty        int
	RefType    string
	RefID      string
	ActorID    uuid.UUID
}

// Issue removes stock from a location; it fails when the pair has no balance
// or the quantity exceeds what is on hand
func (s *StockService) Issue(ctx context.Context, input *IssueInput) (*MovementResult, error) {
	refType := input.RefType
	if refType == "" {
		refType = enum.RefTypeSalesTransaction
	}
	return s.ledger.ApplyMovement(ctx, &MovementInput{
		ProductID: input.ProductID,
		Direction: entity.Issue(input.LocationID),
		Qty:       input.Qty,
		Reason:    enum.MoveReasonSale,
		RefType:   refType,
		RefID:     input.RefID,
		ActorID:   input.ActorID,
	})
}

// TransferInput represents a stock transfer between two locations
type TransferInput struct {
	ProductID      uuid.UUID
	FromLocationID uuid.UUID
	ToLocationID   uuid.UUID
	Qty            int
	ActorID        uuid.UUID
}

// TransferResult carries both legs of a committed transfer
type TransferResult struct {
	Ref     string          `json:"ref"`
	OutMove *MovementResult `json:"out"`
	InMove  *MovementResult `json:"in"`
}

// Transfer moves stock between two locations as two linked ledger movements
// inside one transaction. The source going negative aborts both legs.
func (s *StockService) Transfer(ctx context.Context, input *TransferInput) (*TransferResult, error) {
	if input.FromLocationID == input.ToLocationID {
		return nil, apperror.NewBadRequestError("Source and destination locations must be different")
	}

	ref := utils.GenerateTransferRef(input.ProductID)
	result := &TransferResult{Ref: ref}

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		out, err := s.ledger.ApplyMovement(ctx, &MovementInput{
			ProductID: input.ProductID,
			Direction: entity.TransferOut(input.FromLocationID, input.ToLocationID),
			Qty:       input.Qty,
			Reason:    enum.MoveReasonTransferOut,
			RefType:   enum.RefTypeTransfer,
			RefID:     ref,
			ActorID:   input.ActorID,
		})
		if err != nil {
			return err
		}

		in, err := s.ledger.ApplyMovement(ctx, &MovementInput{
			ProductID: input.ProductID,
			Direction: entity.TransferIn(input.FromLocationID, input.ToLocationID),
			Qty:       input.Qty,
			Reason:    enum.MoveReasonTransferIn,
			RefType:   enum.RefTypeTransfer,
			RefID:     ref,
			ActorID:   input.ActorID,
		})
		if err != nil {
			return err
		}

		result.OutMove = out
		result.InMove = in
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// AdjustInput represents a manual stock correction. QtyChange is signed:
// positive adds stock, negative removes it.
type AdjustInput struct {
	ProductID  uuid.UUID
	LocationID uuid.UUID
	QtyChange  int
	Reason     string
	ActorID    uuid.UUID
}

// Adjust applies a manual correction as a single ledger movement with the
// direction implied by the sign of QtyChange
func (s *StockService) Adjust(ctx context.Context, input *AdjustInput) (*MovementResult, error) {
	if input.QtyChange == 0 {
		return nil, apperror.NewBadRequestError("Quantity change cannot be zero")
	}
	if len(strings.TrimSpace(input.Reason)) < 5 {
		return nil, apperror.NewBadRequestError("Adjustment reason must be at least 5 characters")
	}

	qty := input.QtyChange
	direction := entity.Receipt(input.LocationID)
	reason := enum.MoveReasonAdjustIncrease
	if qty < 0 {
		qty = -qty
		direction = entity.Issue(input.LocationID)
		reason = enum.MoveReasonAdjustDecrease
	}

	return s.ledger.ApplyMovement(ctx, &MovementInput{
		ProductID: input.ProductID,
		Direction: direction,
		Qty:       qty,
		Reason:    reason,
		RefType:   enum.RefTypeAdjustment,
		RefID:     utils.GenerateAdjustmentRef(),
		ActorID:   input.ActorID,
	})
}

// ListBalances returns all stock balances with product and location loaded
func (s *StockService) ListBalances(ctx context.Context) ([]entity.StockBalance, error) {
	return s.stockRepo.ListBalances(ctx)
}

// ListMovements returns movement history, newest first
func (s *StockService) ListMovements(ctx context.Context, params *repository.MoveFilterParams) (*pagination.PaginatedResult[entity.StockMove], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	moves, total, err := s.stockRepo.ListMoves(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(moves, pag), nil
}
