package analytics

import "time"

// SummaryCache stores one summary. Get reports the generation observed, and Set
// drops the value when Clear ran since that generation.
type SummaryCache interface {
	Get() (summary SystemSummary, generation uint64, ok bool)
	Set(summary SystemSummary, ttl time.Duration, generation uint64)
	Clear()
}

type noopSummaryCache struct{}

func (noopSummaryCache) Get() (SystemSummary, uint64, bool) {
	return SystemSummary{}, 0, false
}

func (noopSummaryCache) Set(SystemSummary, time.Duration, uint64) {}

func (noopSummaryCache) Clear() {}
