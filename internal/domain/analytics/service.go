package analytics

import (
	"context"
	"fmt"
	"time"

	flansdomain "onlyflans/internal/domain/flans"
	"onlyflans/pkg/logger"
)

type Service struct {
	repo        Repository
	subscribers SubscriberCounter
	tracker     Tracker
	log         logger.Logger
	cache       SummaryCache
	cacheTTL    time.Duration
}

func NewService(repo Repository, subscribers SubscriberCounter, tracker Tracker, log logger.Logger) *Service {
	return NewServiceWithCache(repo, subscribers, tracker, log, nil, 0)
}

func NewServiceWithCache(repo Repository, subscribers SubscriberCounter, tracker Tracker, log logger.Logger, cache SummaryCache, ttl time.Duration) *Service {
	if cache == nil || ttl <= 0 {
		cache = noopSummaryCache{}
	}
	if tracker == nil {
		tracker = MockTracker{}
	}
	return &Service{
		repo:        repo,
		subscribers: subscribers,
		tracker:     tracker,
		log:         log,
		cache:       cache,
		cacheTTL:    ttl,
	}
}

// Summary returns the system-wide aggregates. Storage errors degrade to a zero
// summary and are not cached.
func (s *Service) Summary(ctx context.Context) SystemSummary {
	summary, generation, ok := s.cache.Get()
	if ok {
		return summary
	}

	totals, err := s.repo.CatalogTotals(ctx)
	if err != nil {
		s.log.InternalError("analytics.summary: totals failed", err)
		return SystemSummary{}
	}

	summary = buildSummary(totals, s.subscribers.ActiveCount(ctx))
	s.cache.Set(summary, s.cacheTTL, generation)
	return summary
}

// Invalidate drops the cached summary after a catalog or subscriber write.
func (s *Service) Invalidate() {
	s.cache.Clear()
}

func (s *Service) FlanAnalytics(ctx context.Context, flanID uint) (FlanAnalytics, error) {
	exists, err := s.repo.FlanExists(ctx, flanID)
	if err != nil {
		return FlanAnalytics{}, fmt.Errorf("check flan: %w", err)
	}
	if !exists {
		return FlanAnalytics{}, flansdomain.ErrFlanNotFound
	}

	stats, err := s.tracker.FlanStats(ctx, flanID)
	if err != nil {
		return FlanAnalytics{}, fmt.Errorf("track flan %d: %w", flanID, err)
	}
	return stats, nil
}
