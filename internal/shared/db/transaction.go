// Package db provides database utilities including transaction management.
package db

import (
	"context"

	"gorm.io/gorm"
)

// txKey is the context key for storing transaction.
type txKey struct{}

// WithTx returns a context carrying the transaction, for callers that open a
// transaction themselves and fan out to repository methods.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext returns the transaction from context if available,
// otherwise the default DB bound to the context.
func GetTxFromContext(ctx context.Context, defaultDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return defaultDB.WithContext(ctx)
}
