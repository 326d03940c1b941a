package inmemory

import (
	"sync"
	"time"

	analyticsdomain "onlyflans/internal/domain/analytics"
)

// InMemorySummaryCache holds a single system summary with an expiry. Every Clear
// bumps the generation so a summary computed before it is never stored.
type InMemorySummaryCache struct {
	mu         sync.RWMutex
	value      analyticsdomain.SystemSummary
	expiresAt  time.Time
	set        bool
	generation uint64
	now        func() time.Time
}

func NewInMemorySummaryCache() *InMemorySummaryCache {
	return &InMemorySummaryCache{now: time.Now}
}

func (c *InMemorySummaryCache) Get() (analyticsdomain.SystemSummary, uint64, bool) {
	now := c.now()

	c.mu.RLock()
	value, expiresAt, set, generation := c.value, c.expiresAt, c.set, c.generation
	c.mu.RUnlock()
	if !set {
		return analyticsdomain.SystemSummary{}, generation, false
	}

	if !expiresAt.After(now) {
		c.mu.Lock()
		if c.set && !c.expiresAt.After(now) {
			c.set = false
		}
		c.mu.Unlock()
		return analyticsdomain.SystemSummary{}, generation, false
	}

	return value, generation, true
}

func (c *InMemorySummaryCache) Set(summary analyticsdomain.SystemSummary, ttl time.Duration, generation uint64) {
	if ttl <= 0 {
		c.Clear()
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return
	}
	c.value = summary
	c.expiresAt = c.now().Add(ttl)
	c.set = true
}

func (c *InMemorySummaryCache) Clear() {
	c.mu.Lock()
	c.value = analyticsdomain.SystemSummary{}
	c.set = false
	c.generation++
	c.mu.Unlock()
}
