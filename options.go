package tractgo

import (
	"github.com/hupe1980/tractgo/metric"
)

type options struct {
	workers int
	metric  metric.Metric
	logger  *Logger
	metrics MetricsCollector
}

func defaultOptions() options {
	return options{
		workers: 0, // GOMAXPROCS
		metric:  metric.MetricMDF,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
}

func applyOptions(optFns []Option) options {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

// Option configures a single distance computation. Each call to one of the
// entry points is independent; options never persist across calls.
type Option func(*options)

// WithWorkers sets the number of goroutines used for the outer loop over
// static streamlines.
//
//   - n <= 0: runtime.GOMAXPROCS(0) (default)
//   - n == 1: sequential execution, no goroutines spawned
//
// The result is independent of the worker count, modulo floating-point
// summation order; bit-exact reproducibility across worker counts is not
// guaranteed, only value-exact agreement within floating-point tolerance.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithMetric selects the pairwise metric used by DistanceMatrix and
// DistanceMatrixInto. The default is metric.MetricMDF. The bundle-minimum
// reducers always use MDF regardless of this option.
func WithMetric(m metric.Metric) Option {
	return func(o *options) {
		o.metric = m
	}
}

// WithLogger configures structured logging for the computation.
// Pass nil to disable logging (the default).
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection (the default).
func WithMetricsCollector(c MetricsCollector) Option {
	return func(o *options) {
		if c == nil {
			c = NoopMetricsCollector{}
		}
		o.metrics = c
	}
}
