package repository

import (
	"context"
	"errors"
)

// ErrBalanceNotFound signals that an atomic balance update matched no row.
// The ledger treats it as an expected variant of the update step: an
// incoming movement creates the balance, an outgoing one fails.
var ErrBalanceNotFound = errors.New("stock balance not found")

// Transactor runs a function inside a single atomic transaction. Nested
// calls compose into the outer transaction rather than opening independent
// sub-transactions, so a transfer's two ledger movements or a checkout's N
// movements commit or roll back as one unit.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
