package postgresql

import (
	"context"

	"github.com/rosterly/attendance-backend-go/internal/pkg/database"
)

type querierKey struct{}

// WithQuerier routes repository calls made with the returned context through
// q instead of the pool. Tests inject a mock connection this way.
func WithQuerier(ctx context.Context, q database.Querier) context.Context {
	return context.WithValue(ctx, querierKey{}, q)
}

// GetQuerier returns the querier injected into ctx, or the pool.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if q, ok := ctx.Value(querierKey{}).(database.Querier); ok {
		return q
	}
	return db.Pool
}
