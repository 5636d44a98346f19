package tractgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordDistanceMatrix is called after each distance matrix computation.
	// staticSize and movingSize are the bundle sizes, duration the total
	// time taken, err is nil on success.
	RecordDistanceMatrix(staticSize, movingSize int, duration time.Duration, err error)

	// RecordBundleMinimum is called after each bundle-minimum-distance
	// computation (symmetric or asymmetric).
	RecordBundleMinimum(staticSize, movingSize int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordDistanceMatrix(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordBundleMinimum(int, int, time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	MatrixCount         atomic.Int64
	MatrixErrors        atomic.Int64
	MatrixTotalNanos    atomic.Int64
	MatrixPairs         atomic.Int64
	BundleMinCount      atomic.Int64
	BundleMinErrors     atomic.Int64
	BundleMinTotalNanos atomic.Int64
}

func (c *BasicMetricsCollector) RecordDistanceMatrix(staticSize, movingSize int, duration time.Duration, err error) {
	c.MatrixCount.Add(1)
	c.MatrixTotalNanos.Add(int64(duration))
	if err != nil {
		c.MatrixErrors.Add(1)
		return
	}
	c.MatrixPairs.Add(int64(staticSize) * int64(movingSize))
}

func (c *BasicMetricsCollector) RecordBundleMinimum(staticSize, movingSize int, duration time.Duration, err error) {
	c.BundleMinCount.Add(1)
	c.BundleMinTotalNanos.Add(int64(duration))
	if err != nil {
		c.BundleMinErrors.Add(1)
	}
}
