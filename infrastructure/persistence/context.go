package persistence

import (
	"context"

	"gorm.io/gorm"
)

type txKey struct{}

type requestIDKey struct{}

// TxFromContext returns the gorm transaction bound to ctx, or nil.
func TxFromContext(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return nil
}

// ContextWithTx binds a gorm transaction to ctx.
func ContextWithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// ContextWithRequestID attaches the HTTP request id so storage and logging can
// correlate their output with the request.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(requestIDKey{}).(string); ok {
		return id
	}
	return ""
}
