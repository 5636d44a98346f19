package tractgo

import (
	"context"
	"math"
	"sync"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/tractgo/internal/parallel"
	"github.com/hupe1980/tractgo/metric"
)

// BundleMinimumDistance computes the symmetric bundle-minimum-distance
// objective between two bundles under the MDF metric:
//
//	0.25 * ( mean_i min_j D[i,j] + mean_j min_i D[i,j] )^2
//
// Each static streamline contributes its distance to the nearest moving
// streamline and vice versa. The full matrix D is never materialized; the
// reduction keeps two running minima arrays of length len(static) and
// len(moving), trading O(S·M) memory for O(S+M) scratch. The scratch is
// owned by the call and released when it returns.
//
// Both bundles must share the same point count; a mismatch between the first
// streamlines fails with *ErrShapeMismatch before any worker is started.
func BundleMinimumDistance(ctx context.Context, static, moving Bundle, optFns ...Option) (float64, error) {
	o := applyOptions(optFns)

	start := time.Now()
	d, err := bundleMinimum(ctx, static, moving, o)
	o.metrics.RecordBundleMinimum(len(static), len(moving), time.Since(start), err)
	o.logger.LogBundleMinimum(ctx, len(static), len(moving), d, err)

	return d, err
}

// BundleMinimumDistanceAsymmetric computes the directed variant: the mean
// over static streamlines of the distance to the nearest moving streamline.
// Unlike the symmetric objective it is not squared or scaled.
func BundleMinimumDistanceAsymmetric(ctx context.Context, static, moving Bundle, optFns ...Option) (float64, error) {
	o := applyOptions(optFns)

	start := time.Now()
	d, err := bundleMinimumAsymmetric(ctx, static, moving, o)
	o.metrics.RecordBundleMinimum(len(static), len(moving), time.Since(start), err)
	o.logger.LogBundleMinimum(ctx, len(static), len(moving), d, err)

	return d, err
}

func bundleMinimum(ctx context.Context, static, moving Bundle, o options) (float64, error) {
	if err := validatePair(static, moving, true); err != nil {
		return 0, err
	}

	minOverMoving := newInfSlice(len(static))
	minOverStatic := newInfSlice(len(moving))

	// minOverStatic[j] is written by every worker, so each compare-and-update
	// of the pair runs under one mutex. The lock is never held across the
	// distance computation itself; widening it would serialize the workers.
	var mu sync.Mutex
	err := parallel.For(ctx, o.workers, len(static), func(i int) {
		a := static[i]
		for j := range moving {
			d := metric.MDF(a.points, moving[j].points, a.rows)
			mu.Lock()
			if d < minOverMoving[i] {
				minOverMoving[i] = d
			}
			if d < minOverStatic[j] {
				minOverStatic[j] = d
			}
			mu.Unlock()
		}
	})
	if err != nil {
		return 0, err
	}

	// All writers have joined; the sums need no synchronization.
	avg := floats.Sum(minOverMoving)/float64(len(static)) +
		floats.Sum(minOverStatic)/float64(len(moving))

	return 0.25 * avg * avg, nil
}

func bundleMinimumAsymmetric(ctx context.Context, static, moving Bundle, o options) (float64, error) {
	if err := validatePair(static, moving, true); err != nil {
		return 0, err
	}

	// Only the per-static-row minima are tracked and each row is owned by a
	// single worker, so no lock is needed here.
	minOverMoving := newInfSlice(len(static))

	err := parallel.For(ctx, o.workers, len(static), func(i int) {
		a := static[i]
		best := math.Inf(1)
		for j := range moving {
			if d := metric.MDF(a.points, moving[j].points, a.rows); d < best {
				best = d
			}
		}
		minOverMoving[i] = best
	})
	if err != nil {
		return 0, err
	}

	return floats.Sum(minOverMoving) / float64(len(static)), nil
}

func newInfSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.Inf(1)
	}
	return s
}
