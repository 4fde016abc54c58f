// Package db carries transaction plumbing shared by the repositories.
package db

import (
	"context"

	"gorm.io/gorm"
)

type txContextKey struct{}

// TransactionManager runs multi-repository write sequences atomically.
// The open transaction travels through the context so repositories join
// it without signature changes.
type TransactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction invokes fn inside a transaction. Repositories called
// with the derived context write through the same transaction; any error
// from fn rolls everything back.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txContextKey{}, tx))
	})
}

// GetTxFromContext resolves the DB handle a repository should use: the
// in-flight transaction when one is present, the default handle otherwise.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txContextKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
