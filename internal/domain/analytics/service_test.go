package analytics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	flansdomain "onlyflans/internal/domain/flans"
	"onlyflans/pkg/logger"
)

type fakeAnalyticsRepo struct {
	totals      CatalogTotals
	totalsErr   error
	totalsCalls int
	flans       map[uint]bool
}

func (r *fakeAnalyticsRepo) CatalogTotals(ctx context.Context) (CatalogTotals, error) {
	r.totalsCalls++
	return r.totals, r.totalsErr
}

func (r *fakeAnalyticsRepo) FlanExists(ctx context.Context, flanID uint) (bool, error) {
	return r.flans[flanID], nil
}

type fixedSubscribers int64

func (f fixedSubscribers) ActiveCount(ctx context.Context) int64 {
	return int64(f)
}

type mapCache struct {
	summary    *SystemSummary
	ttl        time.Duration
	generation uint64
}

func (c *mapCache) Get() (SystemSummary, uint64, bool) {
	if c.summary == nil {
		return SystemSummary{}, c.generation, false
	}
	return *c.summary, c.generation, true
}

func (c *mapCache) Set(summary SystemSummary, ttl time.Duration, generation uint64) {
	if generation != c.generation {
		return
	}
	c.summary = &summary
	c.ttl = ttl
}

func (c *mapCache) Clear() {
	c.summary = nil
	c.generation++
}

// invalidatingSubscribers clears the summary mid-computation, as a concurrent write would.
type invalidatingSubscribers struct {
	service *Service
}

func (s invalidatingSubscribers) ActiveCount(ctx context.Context) int64 {
	s.service.Invalidate()
	return 1
}

func TestMockTrackerIsDeterministic(t *testing.T) {
	tracker := MockTracker{}

	first, err := tracker.FlanStats(context.Background(), 3)
	require.NoError(t, err)
	second, err := tracker.FlanStats(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(130), first.Views)
	assert.Equal(t, int64(40), first.Likes)
	assert.Equal(t, int64(13), first.Subscriptions)
	assert.True(t, decimal.RequireFromString("64.90").Equal(first.Revenue))
	assert.Equal(t, 30.77, first.EngagementRate())
	assert.Equal(t, "4.99", first.RevenuePerSubscription().StringFixed(2))
}

func TestDerivedMetricsWithZeroDenominators(t *testing.T) {
	empty := FlanAnalytics{Revenue: decimal.NewFromInt(10)}
	assert.Equal(t, 0.0, empty.EngagementRate())
	assert.True(t, empty.RevenuePerSubscription().IsZero())
}

func TestFlanAnalyticsRequiresExistingFlan(t *testing.T) {
	repo := &fakeAnalyticsRepo{flans: map[uint]bool{1: true}}
	service := NewService(repo, fixedSubscribers(0), nil, logger.Discard())

	stats, err := service.FlanAnalytics(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(110), stats.Views)

	_, err = service.FlanAnalytics(context.Background(), 2)
	assert.ErrorIs(t, err, flansdomain.ErrFlanNotFound)
}

func TestSummaryAggregates(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: CatalogTotals{
		TotalFlans:          3,
		PremiumFlans:        1,
		PremiumRevenue:      decimal.RequireFromString("4.99"),
		AveragePremiumPrice: decimal.RequireFromString("4.99"),
	}}
	service := NewService(repo, fixedSubscribers(7), nil, logger.Discard())

	summary := service.Summary(context.Background())
	assert.Equal(t, int64(3), summary.TotalFlans)
	assert.Equal(t, int64(1), summary.PremiumFlans)
	assert.Equal(t, int64(2), summary.FreeFlans)
	assert.Equal(t, int64(7), summary.ActiveSubscribers)
	assert.Equal(t, "4.99", summary.TotalRevenue.StringFixed(2))
	assert.Equal(t, "4.99", summary.AveragePremiumPrice.StringFixed(2))
	assert.Equal(t, 33.33, summary.PremiumConversionRate)
}

func TestSummaryOfEmptyCatalog(t *testing.T) {
	service := NewService(&fakeAnalyticsRepo{}, fixedSubscribers(0), nil, logger.Discard())

	summary := service.Summary(context.Background())
	assert.Equal(t, 0.0, summary.PremiumConversionRate)
	assert.True(t, summary.TotalRevenue.IsZero())
}

func TestSummaryDegradesOnStorageError(t *testing.T) {
	repo := &fakeAnalyticsRepo{totalsErr: errors.New("db down")}
	cache := &mapCache{}
	service := NewServiceWithCache(repo, fixedSubscribers(4), nil, logger.Discard(), cache, time.Minute)

	assert.Equal(t, SystemSummary{}, service.Summary(context.Background()))
	assert.Nil(t, cache.summary)
}

func TestSummaryIsCachedUntilInvalidated(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: CatalogTotals{TotalFlans: 1}}
	cache := &mapCache{}
	service := NewServiceWithCache(repo, fixedSubscribers(0), nil, logger.Discard(), cache, time.Minute)
	ctx := context.Background()

	service.Summary(ctx)
	service.Summary(ctx)
	assert.Equal(t, 1, repo.totalsCalls)
	assert.Equal(t, time.Minute, cache.ttl)

	repo.totals.TotalFlans = 2
	service.Invalidate()
	assert.Equal(t, int64(2), service.Summary(ctx).TotalFlans)
	assert.Equal(t, 2, repo.totalsCalls)
}

func TestSummaryRacingInvalidateIsNotCached(t *testing.T) {
	repo := &fakeAnalyticsRepo{totals: CatalogTotals{TotalFlans: 1}}
	cache := &mapCache{}
	subscribers := &invalidatingSubscribers{}
	service := NewServiceWithCache(repo, subscribers, nil, logger.Discard(), cache, time.Minute)
	subscribers.service = service
	ctx := context.Background()

	assert.Equal(t, int64(1), service.Summary(ctx).TotalFlans)
	assert.Nil(t, cache.summary)

	repo.totals.TotalFlans = 2
	assert.Equal(t, int64(2), service.Summary(ctx).TotalFlans)
	assert.Equal(t, 2, repo.totalsCalls)
}
