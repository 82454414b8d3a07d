package closestpair

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSearch is called after each Search.
	// count is the number of input points, comparisons the number of
	// distance evaluations, err is nil if successful.
	RecordSearch(count int, comparisons int64, duration time.Duration, err error)

	// RecordStrip is called for each strip that is bucketed along z.
	// size is the number of strip points, layers the number of z-layers.
	RecordStrip(size, layers int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSearch(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordStrip(int, int)                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SearchCount       atomic.Int64
	SearchErrors      atomic.Int64
	SearchPoints      atomic.Int64
	SearchComparisons atomic.Int64
	SearchTotalNanos  atomic.Int64
	StripCount        atomic.Int64
	StripPoints       atomic.Int64
	StripLayers       atomic.Int64
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(count int, comparisons int64, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchPoints.Add(int64(count))
	b.SearchComparisons.Add(comparisons)
}

// RecordStrip implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStrip(size, layers int) {
	b.StripCount.Add(1)
	b.StripPoints.Add(int64(size))
	b.StripLayers.Add(int64(layers))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SearchCount:       b.SearchCount.Load(),
		SearchErrors:      b.SearchErrors.Load(),
		SearchPoints:      b.SearchPoints.Load(),
		SearchComparisons: b.SearchComparisons.Load(),
		SearchAvgNanos:    b.getAvgSearchNanos(),
		StripCount:        b.StripCount.Load(),
		StripPoints:       b.StripPoints.Load(),
		StripLayers:       b.StripLayers.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSearchNanos() int64 {
	count := b.SearchCount.Load()
	if count == 0 {
		return 0
	}
	return b.SearchTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SearchCount       int64
	SearchErrors      int64
	SearchPoints      int64
	SearchComparisons int64
	SearchAvgNanos    int64
	StripCount        int64
	StripPoints       int64
	StripLayers       int64
}
