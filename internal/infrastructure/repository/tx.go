package repository

import (
	"context"

	domainRepo "github.com/wekesa/dukapos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type txKey struct{}

// txFromContext returns the transaction carried by the context, if any
func txFromContext(ctx context.Context) *gorm.DB {
	tx, _ := ctx.Value(txKey{}).(*gorm.DB)
	return tx
}

// conn resolves the handle a repository should use: the context's open
// transaction when one is running, the shared pool otherwise. This is what
// makes every repository call inside WithinTransaction land on the same
// transaction without the repositories knowing about each other.
func conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db.WithContext(ctx)
}

type gormTransactor struct {
	db *gorm.DB
}

// NewTransactor creates a Transactor backed by GORM transactions
func NewTransactor(db *gorm.DB) domainRepo.Transactor {
	return &gormTransactor{db: db}
}

// WithinTransaction runs fn inside a database transaction. When the context
// already carries a transaction the call joins it, so nested orchestrations
// (checkout driving the ledger, a transfer driving two movements) stay a
// single atomic unit.
func (t *gormTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
