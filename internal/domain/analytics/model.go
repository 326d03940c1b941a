package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// FlanAnalytics holds the engagement counters of a single flan.
type FlanAnalytics struct {
	FlanID        uint
	Views         int64
	Likes         int64
	Subscriptions int64
	Revenue       decimal.Decimal
}

// EngagementRate is likes per view as a percentage rounded to 2 decimals.
func (a FlanAnalytics) EngagementRate() float64 {
	if a.Views == 0 {
		return 0
	}
	return round2(float64(a.Likes) / float64(a.Views) * 100)
}

func (a FlanAnalytics) RevenuePerSubscription() decimal.Decimal {
	if a.Subscriptions == 0 {
		return decimal.Zero
	}
	return a.Revenue.Div(decimal.NewFromInt(a.Subscriptions)).Round(2)
}

// CatalogTotals are the raw aggregates read from storage.
type CatalogTotals struct {
	TotalFlans          int64
	PremiumFlans        int64
	PremiumRevenue      decimal.Decimal
	AveragePremiumPrice decimal.Decimal
}

type SystemSummary struct {
	TotalFlans            int64
	PremiumFlans          int64
	FreeFlans             int64
	ActiveSubscribers     int64
	TotalRevenue          decimal.Decimal
	AveragePremiumPrice   decimal.Decimal
	PremiumConversionRate float64
}

func buildSummary(totals CatalogTotals, activeSubscribers int64) SystemSummary {
	summary := SystemSummary{
		TotalFlans:          totals.TotalFlans,
		PremiumFlans:        totals.PremiumFlans,
		FreeFlans:           totals.TotalFlans - totals.PremiumFlans,
		ActiveSubscribers:   activeSubscribers,
		TotalRevenue:        totals.PremiumRevenue.Round(2),
		AveragePremiumPrice: totals.AveragePremiumPrice.Round(2),
	}
	if totals.TotalFlans > 0 {
		summary.PremiumConversionRate = round2(float64(totals.PremiumFlans) / float64(totals.TotalFlans) * 100)
	}
	return summary
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
