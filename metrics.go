package valgebra

import (
	"sync/atomic"
	"time"

	"github.com/hupe1980/valgebra/blend"
	"github.com/hupe1980/valgebra/value"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// A MetricsCollector also satisfies pool.Metrics and batch.Metrics, so one
// collector observes the whole engine.
type MetricsCollector interface {
	// RecordOperatorLookup is called on every pool lookup. hit is false
	// when the lookup had to build the operator.
	RecordOperatorLookup(hit bool)

	// RecordOperatorBuild is called once per constructed operator.
	RecordOperatorBuild(k value.Kind, m blend.Mode)

	// RecordBatch is called after each batched call with the number of
	// values processed.
	RecordBatch(n int, d time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordOperatorLookup(bool)                  {}
func (NoopMetricsCollector) RecordOperatorBuild(value.Kind, blend.Mode) {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
type BasicMetricsCollector struct {
	LookupCount     atomic.Int64
	LookupMisses    atomic.Int64
	BuildCount      atomic.Int64
	BatchCount      atomic.Int64
	BatchValues     atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordOperatorLookup implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperatorLookup(hit bool) {
	b.LookupCount.Add(1)
	if !hit {
		b.LookupMisses.Add(1)
	}
}

// RecordOperatorBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOperatorBuild(value.Kind, blend.Mode) {
	b.BuildCount.Add(1)
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(n int, d time.Duration) {
	b.BatchCount.Add(1)
	b.BatchValues.Add(int64(n))
	b.BatchTotalNanos.Add(d.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		LookupCount:  b.LookupCount.Load(),
		LookupMisses: b.LookupMisses.Load(),
		BuildCount:   b.BuildCount.Load(),
		BatchCount:   b.BatchCount.Load(),
		BatchValues:  b.BatchValues.Load(),
	}
	if s.BatchCount > 0 {
		s.BatchAvgNanos = b.BatchTotalNanos.Load() / s.BatchCount
	}
	return s
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LookupCount   int64
	LookupMisses  int64
	BuildCount    int64
	BatchCount    int64
	BatchValues   int64
	BatchAvgNanos int64
}
