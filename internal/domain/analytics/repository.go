package analytics

import "context"

type Repository interface {
	CatalogTotals(ctx context.Context) (CatalogTotals, error)
	FlanExists(ctx context.Context, flanID uint) (bool, error)
}

// SubscriberCounter is satisfied by the subscribers service.
type SubscriberCounter interface {
	ActiveCount(ctx context.Context) int64
}
