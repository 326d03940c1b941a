package analytics

import (
	"context"

	"github.com/shopspring/decimal"
)

// Tracker reports engagement counters for a flan.
type Tracker interface {
	FlanStats(ctx context.Context, flanID uint) (FlanAnalytics, error)
}

// MockTracker derives stable counters from the flan id until a real tracking
// backend exists.
type MockTracker struct{}

var (
	mockRevenueBase = decimal.RequireFromString("49.90")
	mockRevenueStep = decimal.NewFromInt(5)
)

func (MockTracker) FlanStats(_ context.Context, flanID uint) (FlanAnalytics, error) {
	id := int64(flanID)
	return FlanAnalytics{
		FlanID:        flanID,
		Views:         100 + id*10,
		Likes:         25 + id*5,
		Subscriptions: 10 + id,
		Revenue:       mockRevenueBase.Add(mockRevenueStep.Mul(decimal.NewFromInt(id))),
	}, nil
}
