package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"github.com/wekesa/dukapos-api/internal/domain/repository"
	"github.com/wekesa/dukapos-api/pkg/apperror"
	"github.com/wekesa/dukapos-api/pkg/pagination"
	"github.com/wekesa/dukapos-api/pkg/utils"
)

// CheckoutService turns a validated cart into a sales transaction plus one
// outgoing ledger movement per line, all inside a single transaction. Stock
// checks and decrements are bound to the one configured POS location.
type CheckoutService struct {
	productRepo repository.ProductRepository
	stockRepo   repository.StockRepository
	saleRepo    repository.SaleRepository
	ledger      *LedgerService
	tx          repository.Transactor
	locationID  uuid.UUID
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(
	productRepo repository.ProductRepository,
	stockRepo repository.StockRepository,
	saleRepo repository.SaleRepository,
	ledger *LedgerService,
	tx repository.Transactor,
	locationID uuid.UUID,
) *CheckoutService {
	return &CheckoutService{
		productRepo: productRepo,
		stockRepo:   stockRepo,
		saleRepo:    saleRepo,
		ledger:      ledger,
		tx:          tx,
		locationID:  locationID,
	}
}

// CartItem is one line of a checkout cart
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CheckoutInput is the validated checkout payload
type CheckoutInput struct {
	Cart           []CartItem
	DeclaredTotal  decimal.Decimal
	DiscountAmount decimal.Decimal
	PaymentMethod  enum.PaymentMethod
	CashierID      uuid.UUID
}

// Checkout validates stock and price against server-side truth, persists the
// sale and emits the stock movements. Any line failing leaves no side
// effects at all: the whole cart commits or nothing does.
//
// The declared total is compared against the server-recomputed total with
// exact decimal equality; a mismatch of even one cent aborts.
func (s *CheckoutService) Checkout(ctx context.Context, input *CheckoutInput) (*entity.SalesTransaction, error) {
	if len(input.Cart) == 0 {
		return nil, apperror.NewBadRequestError("Cart cannot be empty")
	}
	if !input.PaymentMethod.Valid() {
		return nil, apperror.NewBadRequestError("Unsupported payment method")
	}

	var created *entity.SalesTransaction
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		productIDs := make([]uuid.UUID, len(input.Cart))
		for i, item := range input.Cart {
			productIDs[i] = item.ProductID
		}

		products, err := s.productRepo.GetByIDs(ctx, productIDs)
		if err != nil {
			return err
		}
		productMap := make(map[uuid.UUID]*entity.Product, len(products))
		for i := range products {
			productMap[products[i].ID] = &products[i]
		}

		subtotal := decimal.Zero
		items := make([]entity.SalesItem, 0, len(input.Cart))

		for _, line := range input.Cart {
			product, exists := productMap[line.ProductID]
			if !exists {
				return apperror.NewNotFoundError("Product " + line.ProductID.String())
			}
			if line.Quantity <= 0 {
				return apperror.NewBadRequestError("Quantity must be a positive integer")
			}
			if !product.IsActive {
				return apperror.NewBadRequestError("Product " + product.Name + " is not available for sale")
			}

			balance, err := s.stockRepo.GetBalance(ctx, line.ProductID, s.locationID)
			if err != nil {
				return err
			}
			available := 0
			if balance != nil {
				available = balance.AvailableQty
			}
			if available < line.Quantity {
				return apperror.NewInsufficientStockError(product.Name, line.Quantity, available)
			}

			lineTotal := product.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			subtotal = subtotal.Add(lineTotal)

			items = append(items, entity.SalesItem{
				ProductID: product.ID,
				Quantity:  line.Quantity,
				Price:     product.Price,
				Revenue:   lineTotal,
			})
		}

		serverTotal := subtotal.Sub(input.DiscountAmount).Round(2)
		if !serverTotal.Equal(input.DeclaredTotal) {
			return apperror.NewPriceMismatchError(serverTotal.StringFixed(2), input.DeclaredTotal.StringFixed(2))
		}

		txn := &entity.SalesTransaction{
			TransactionNo:   utils.GenerateTransactionNo(),
			Amount:          serverTotal,
			DiscountApplied: input.DiscountAmount,
			PaymentMethod:   input.PaymentMethod,
			Status:          enum.SaleStatusCompleted,
			CashierID:       input.CashierID,
		}
		if err := s.saleRepo.CreateTransaction(ctx, txn); err != nil {
			return err
		}

		for i := range items {
			items[i].SalesTransactionID = txn.ID
		}
		if err := s.saleRepo.CreateItems(ctx, items); err != nil {
			return err
		}

		for _, line := range input.Cart {
			_, err := s.ledger.ApplyMovement(ctx, &MovementInput{
				ProductID: line.ProductID,
				Direction: entity.Issue(s.locationID),
				Qty:       line.Quantity,
				Reason:    enum.MoveReasonSale,
				RefType:   enum.RefTypeSalesTransaction,
				RefID:     txn.ID.String(),
				ActorID:   input.CashierID,
			})
			if err != nil {
				return err
			}
		}

		created = txn
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetSale retrieves a sales transaction with its items
func (s *CheckoutService) GetSale(ctx context.Context, id uuid.UUID) (*entity.SalesTransaction, error) {
	txn, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Sales transaction")
	}
	return txn, nil
}

// ListSales lists sales transactions, newest first
func (s *CheckoutService) ListSales(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.SalesTransaction], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	txns, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(txns, pag), nil
}
