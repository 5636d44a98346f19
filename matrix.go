package tractgo

import (
	"context"
	"fmt"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/tractgo/internal/parallel"
	"github.com/hupe1980/tractgo/metric"
)

// DistanceMatrix computes the dense static×moving distance matrix:
// entry (i, j) is the pairwise distance between static[i] and moving[j].
//
// The outer loop over static streamlines is parallelized; every worker owns
// a disjoint set of matrix rows, so no synchronization is needed. The
// returned matrix is freshly allocated and owned by the caller.
//
// With the default MDF metric the two bundles must share the same point
// count; a mismatch between the first streamlines of each bundle fails with
// *ErrShapeMismatch before any distance is computed. The MAM metrics accept
// unequal point counts.
func DistanceMatrix(ctx context.Context, static, moving Bundle, optFns ...Option) (*mat.Dense, error) {
	o := applyOptions(optFns)

	start := time.Now()
	d, err := distanceMatrix(ctx, nil, static, moving, o)
	o.metrics.RecordDistanceMatrix(len(static), len(moving), time.Since(start), err)
	o.logger.LogDistanceMatrix(ctx, len(static), len(moving), err)

	return d, err
}

// DistanceMatrixInto is like DistanceMatrix but writes into the
// caller-owned dst, which must be len(static)×len(moving). Fails with
// ErrBadDestination otherwise.
func DistanceMatrixInto(ctx context.Context, dst *mat.Dense, static, moving Bundle, optFns ...Option) error {
	o := applyOptions(optFns)

	start := time.Now()
	var err error
	if r, c := dst.Dims(); r != len(static) || c != len(moving) {
		err = fmt.Errorf("%w: got %dx%d, want %dx%d", ErrBadDestination, r, c, len(static), len(moving))
	} else {
		_, err = distanceMatrix(ctx, dst, static, moving, o)
	}
	o.metrics.RecordDistanceMatrix(len(static), len(moving), time.Since(start), err)
	o.logger.LogDistanceMatrix(ctx, len(static), len(moving), err)

	return err
}

func distanceMatrix(ctx context.Context, dst *mat.Dense, static, moving Bundle, o options) (*mat.Dense, error) {
	fn, err := metric.Provider(o.metric)
	if err != nil {
		return nil, err
	}
	if err := validatePair(static, moving, o.metric.RequiresEqualRows()); err != nil {
		return nil, err
	}

	if dst == nil {
		dst = mat.NewDense(len(static), len(moving), nil)
	}

	err = parallel.For(ctx, o.workers, len(static), func(i int) {
		row := dst.RawRowView(i)
		a := static[i]
		for j, b := range moving {
			row[j] = fn(a.points, b.points, a.rows, b.rows)
		}
	})
	if err != nil {
		return nil, err
	}

	return dst, nil
}
