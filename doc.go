// Package tractgo computes geometric distances between bundles of 3D
// streamlines (diffusion-tractography polylines).
//
// The core metric is the minimum-average-direct-flip (MDF) distance: the
// smaller of the direct-order and reverse-order mean point-to-point Euclidean
// distance between two equal-length streamlines, making it invariant to a
// streamline's arbitrary traversal direction. On top of the metric, tractgo
// provides two reductions used in streamline-bundle registration:
//
//   - DistanceMatrix: the full static×moving pairwise distance matrix
//   - BundleMinimumDistance: the scalar closest-streamline objective,
//     computed without materializing the matrix
//
// # Quick Start
//
//	ctx := context.Background()
//
//	a, _ := tractgo.NewStreamline([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0})
//	b, _ := tractgo.NewStreamline([]float64{2, 0, 0, 1, 0, 0, 0, 0, 0})
//
//	static := tractgo.Bundle{a}
//	moving := tractgo.Bundle{b}
//
//	D, _ := tractgo.DistanceMatrix(ctx, static, moving)
//	d, _ := tractgo.BundleMinimumDistance(ctx, static, moving)
//
// # Concurrency
//
// Both reductions parallelize over the static bundle across a fixed number
// of goroutines (WithWorkers). Results are independent of the worker count,
// modulo floating-point summation order. Calls run to completion once
// started; the context is only honored before any work begins.
//
// # Preconditions
//
// The MDF metric is only defined for streamline pairs with identical point
// counts. The entry points validate the first streamline of each bundle and
// fail with *ErrShapeMismatch before spawning any worker; per-pair checks
// inside the hot loop are deliberately omitted, so bundles that are
// internally heterogeneous produce meaningless results. Resampling
// streamlines to a common point count is the caller's job.
//
// # Key Features
//
//   - Exact MDF metric with direct/flipped orientation disambiguation
//   - MAM distance variants for unequal point counts (see the metric package)
//   - Lock-free row-parallel matrix fill; O(S+M) scratch bundle reduction
//   - Structured logging (log/slog) and pluggable metrics collection
package tractgo
