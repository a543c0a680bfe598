package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wekesa/dukapos-api/internal/domain/entity"
	"github.com/wekesa/dukapos-api/internal/domain/enum"
	"github.com/wekesa/dukapos-api/pkg/apperror"
)

func TestCheckoutHappyPath(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	soda := env.store.addProduct(entity.Product{Name: "Soda 300ml", SKU: "SKU-SD3", Price: decimal.RequireFromString("10.00"), IsActive: true})
	crisps := env.store.addProduct(entity.Product{Name: "Crisps 50g", SKU: "SKU-CR5", Price: decimal.RequireFromString("5.00"), IsActive: true})
	env.store.setBalance(soda.ID, pos.ID, 20)
	env.store.setBalance(crisps.ID, pos.ID, 20)

	svc := env.checkout(pos.ID)
	cashier := uuid.New()

	txn, err := svc.Checkout(ctx, &CheckoutInput{
		Cart: []CartItem{
			{ProductID: soda.ID, Quantity: 2},
			{ProductID: crisps.ID, Quantity: 1},
		},
		DeclaredTotal:  decimal.RequireFromString("25.00"),
		DiscountAmount: decimal.Zero,
		PaymentMethod:  enum.PaymentMethodCash,
		CashierID:      cashier,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(txn.TransactionNo, "TXN-"))
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("25.00")))
	assert.Equal(t, enum.SaleStatusCompleted, txn.Status)
	assert.Equal(t, cashier, txn.CashierID)

	// Stock decremented at the POS location
	assert.Equal(t, 18, env.store.balances[balanceKey{soda.ID, pos.ID}].OnHandQty)
	assert.Equal(t, 19, env.store.balances[balanceKey{crisps.ID, pos.ID}].OnHandQty)

	// One SALE movement per cart line keyed to the transaction
	require.Len(t, env.store.moves, 2)
	for _, move := range env.store.moves {
		assert.Equal(t, enum.MoveReasonSale, move.Reason)
		assert.Equal(t, enum.RefTypeSalesTransaction, move.RefType)
		assert.Equal(t, txn.ID.String(), move.RefID)
	}

	// Line items persisted with captured prices
	require.Len(t, env.store.saleItems, 2)
	assert.True(t, env.store.saleItems[0].Revenue.Equal(decimal.RequireFromString("20.00")))
	assert.True(t, env.store.saleItems[1].Revenue.Equal(decimal.RequireFromString("5.00")))

	// Denormalized totals refreshed
	assert.Equal(t, 18, env.store.products[soda.ID].TotalStock)
	assert.Equal(t, 19, env.store.products[crisps.ID].TotalStock)
}

func TestCheckoutAppliesDiscount(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	product := env.store.addProduct(entity.Product{Name: "Juice 1L", SKU: "SKU-JC1", Price: decimal.RequireFromString("10.00"), IsActive: true})
	env.store.setBalance(product.ID, pos.ID, 10)

	svc := env.checkout(pos.ID)

	txn, err := svc.Checkout(ctx, &CheckoutInput{
		Cart:           []CartItem{{ProductID: product.ID, Quantity: 2}},
		DeclaredTotal:  decimal.RequireFromString("18.00"),
		DiscountAmount: decimal.RequireFromString("2.00"),
		PaymentMethod:  enum.PaymentMethodMobile,
		CashierID:      uuid.New(),
	})
	require.NoError(t, err)
	assert.True(t, txn.Amount.Equal(decimal.RequireFromString("18.00")))
	assert.True(t, txn.DiscountApplied.Equal(decimal.RequireFromString("2.00")))
}

func TestCheckoutRejectsPriceMismatch(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	product := env.store.addProduct(entity.Product{Name: "Biscuits", SKU: "SKU-BS1", Price: decimal.RequireFromString("10.00"), IsActive: true})
	env.store.setBalance(product.ID, pos.ID, 10)

	svc := env.checkout(pos.ID)

	// Off by one cent against the server-computed 20.00
	_, err := svc.Checkout(ctx, &CheckoutInput{
		Cart:          []CartItem{{ProductID: product.ID, Quantity: 2}},
		DeclaredTotal: decimal.RequireFromString("19.99"),
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	// Nothing persisted
	assert.Empty(t, env.store.sales)
	assert.Empty(t, env.store.saleItems)
	assert.Empty(t, env.store.moves)
	assert.Equal(t, 10, env.store.balances[balanceKey{product.ID, pos.ID}].OnHandQty)
}

func TestCheckoutInsufficientStockLeavesNoSideEffects(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	plenty := env.store.addProduct(entity.Product{Name: "Plenty", SKU: "SKU-PL1", Price: decimal.RequireFromString("3.00"), IsActive: true})
	scarce := env.store.addProduct(entity.Product{Name: "Scarce", SKU: "SKU-SC1", Price: decimal.RequireFromString("4.00"), IsActive: true})
	env.store.setBalance(plenty.ID, pos.ID, 50)
	env.store.setBalance(scarce.ID, pos.ID, 1)

	svc := env.checkout(pos.ID)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Cart: []CartItem{
			{ProductID: plenty.ID, Quantity: 2},
			{ProductID: scarce.ID, Quantity: 3},
		},
		DeclaredTotal: decimal.RequireFromString("18.00"),
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Insufficient stock for Scarce")
	assert.Contains(t, err.Error(), "Required: 3")
	assert.Contains(t, err.Error(), "Available: 1")

	assert.Empty(t, env.store.sales)
	assert.Empty(t, env.store.moves)
	assert.Equal(t, 50, env.store.balances[balanceKey{plenty.ID, pos.ID}].OnHandQty)
	assert.Equal(t, 1, env.store.balances[balanceKey{scarce.ID, pos.ID}].OnHandQty)
}

func TestCheckoutTreatsMissingBalanceAsZeroStock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	product := env.store.addProduct(entity.Product{Name: "Never Stocked", SKU: "SKU-NS1", Price: decimal.RequireFromString("9.00"), IsActive: true})

	svc := env.checkout(pos.ID)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Cart:          []CartItem{{ProductID: product.ID, Quantity: 1}},
		DeclaredTotal: decimal.RequireFromString("9.00"),
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available: 0")
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	env := newTestEnv()
	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	svc := env.checkout(pos.ID)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Cart:          []CartItem{{ProductID: uuid.New(), Quantity: 1}},
		DeclaredTotal: decimal.RequireFromString("1.00"),
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCheckoutRejectsEmptyCartAndBadPayment(t *testing.T) {
	env := newTestEnv()
	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	svc := env.checkout(pos.ID)

	_, err := svc.Checkout(context.Background(), &CheckoutInput{
		Cart:          nil,
		DeclaredTotal: decimal.Zero,
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)

	_, err = svc.Checkout(context.Background(), &CheckoutInput{
		Cart:          []CartItem{{ProductID: uuid.New(), Quantity: 1}},
		DeclaredTotal: decimal.Zero,
		PaymentMethod: enum.PaymentMethod("BARTER"),
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestCheckoutRejectsInactiveProduct(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	pos := env.store.addLocation(entity.Location{Name: "Main Store", IsActive: true})
	product := env.store.addProduct(entity.Product{Name: "Retired Item", SKU: "SKU-RT1", Price: decimal.RequireFromString("5.00"), IsActive: false})
	env.store.setBalance(product.ID, pos.ID, 10)

	svc := env.checkout(pos.ID)

	_, err := svc.Checkout(ctx, &CheckoutInput{
		Cart:          []CartItem{{ProductID: product.ID, Quantity: 1}},
		DeclaredTotal: decimal.RequireFromString("5.00"),
		PaymentMethod: enum.PaymentMethodCash,
		CashierID:     uuid.New(),
	})
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
	assert.Empty(t, env.store.sales)
}
