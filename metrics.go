package knn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; package
// prom provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordFit is called after each Fit. rows is the training set size.
	RecordFit(rows int, duration time.Duration, err error)

	// RecordSearch is called after each neighbor search over a query batch.
	RecordSearch(k, queries int, duration time.Duration, err error)

	// RecordPredict is called after each Predict or PredictProba.
	RecordPredict(queries int, duration time.Duration, err error)

	// RecordFold is called after each cross-validation fold.
	RecordFold(fold int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(int, time.Duration, error)         {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPredict(int, time.Duration, error)     {}
func (NoopMetricsCollector) RecordFold(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount         atomic.Int64
	FitErrors        atomic.Int64
	FitRows          atomic.Int64
	SearchCount      atomic.Int64
	SearchErrors     atomic.Int64
	SearchQueries    atomic.Int64
	SearchTotalNanos atomic.Int64
	PredictCount     atomic.Int64
	PredictErrors    atomic.Int64
	PredictQueries   atomic.Int64
	FoldCount        atomic.Int64
	FoldErrors       atomic.Int64
	FoldTotalNanos   atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(rows int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	if err != nil {
		b.FitErrors.Add(1)
		return
	}
	b.FitRows.Add(int64(rows))
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(k, queries int, duration time.Duration, err error) {
	b.SearchCount.Add(1)
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SearchErrors.Add(1)
		return
	}
	b.SearchQueries.Add(int64(queries))
}

// RecordPredict implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPredict(queries int, duration time.Duration, err error) {
	b.PredictCount.Add(1)
	if err != nil {
		b.PredictErrors.Add(1)
		return
	}
	b.PredictQueries.Add(int64(queries))
}

// RecordFold implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFold(fold int, duration time.Duration, err error) {
	b.FoldCount.Add(1)
	b.FoldTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FoldErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:       b.FitCount.Load(),
		FitErrors:      b.FitErrors.Load(),
		FitRows:        b.FitRows.Load(),
		SearchCount:    b.SearchCount.Load(),
		SearchErrors:   b.SearchErrors.Load(),
		SearchQueries:  b.SearchQueries.Load(),
		SearchAvgNanos: avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		PredictCount:   b.PredictCount.Load(),
		PredictErrors:  b.PredictErrors.Load(),
		PredictQueries: b.PredictQueries.Load(),
		FoldCount:      b.FoldCount.Load(),
		FoldErrors:     b.FoldErrors.Load(),
		FoldAvgNanos:   avg(b.FoldTotalNanos.Load(), b.FoldCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount       int64
	FitErrors      int64
	FitRows        int64
	SearchCount    int64
	SearchErrors   int64
	SearchQueries  int64
	SearchAvgNanos int64
	PredictCount   int64
	PredictErrors  int64
	PredictQueries int64
	FoldCount      int64
	FoldErrors     int64
	FoldAvgNanos   int64
}
