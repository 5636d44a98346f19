package metric

import (
	"fmt"
	"math"
)

// MDF returns the minimum-average-direct-flip distance between two
// streamlines of rows 3D points each, stored as contiguous row-major
// float64 buffers (x, y, z per point).
//
// The direct mean pairs point i of a with point i of b; the flipped mean
// pairs point i of a with point rows-1-i of b. The smaller of the two means
// is returned, so the metric is invariant to the traversal direction of
// either streamline. Exact ties resolve to the direct mean.
//
// Both buffers must hold at least rows*3 values and rows must be positive;
// this is the caller's responsibility and is not checked here.
func MDF(a, b []float64, rows int) float64 {
	var direct, flipped float64
	last := rows - 1
	for i := 0; i < rows; i++ {
		p := a[i*3 : i*3+3]
		direct += euclidean3(p, b[i*3:i*3+3])
		flipped += euclidean3(p, b[(last-i)*3:(last-i)*3+3])
	}
	n := float64(rows)
	direct /= n
	flipped /= n
	if direct <= flipped {
		return direct
	}
	return flipped
}

// MAMMin returns the smaller of the two directed mean-closest-point
// distances between a (rowsA points) and b (rowsB points).
// Unlike MDF, the two streamlines may have different point counts.
func MAMMin(a, b []float64, rowsA, rowsB int) float64 {
	return math.Min(meanClosest(a, rowsA, b, rowsB), meanClosest(b, rowsB, a, rowsA))
}

// MAMMean returns the average of the two directed mean-closest-point
// distances between a and b.
func MAMMean(a, b []float64, rowsA, rowsB int) float64 {
	return 0.5 * (meanClosest(a, rowsA, b, rowsB) + meanClosest(b, rowsB, a, rowsA))
}

// MAMMax returns the larger of the two directed mean-closest-point
// distances between a and b.
func MAMMax(a, b []float64, rowsA, rowsB int) float64 {
	return math.Max(meanClosest(a, rowsA, b, rowsB), meanClosest(b, rowsB, a, rowsA))
}

// meanClosest is the directed mean-closest-point distance: for every point
// of a, the distance to its nearest point of b, averaged over a.
func meanClosest(a []float64, rowsA int, b []float64, rowsB int) float64 {
	var sum float64
	for i := 0; i < rowsA; i++ {
		p := a[i*3 : i*3+3]
		best := math.Inf(1)
		for j := 0; j < rowsB; j++ {
			if d := euclidean3(p, b[j*3:j*3+3]); d < best {
				best = d
			}
		}
		sum += best
	}
	return sum / float64(rowsA)
}

func euclidean3(p, q []float64) float64 {
	dx := p[0] - q[0]
	dy := p[1] - q[1]
	dz := p[2] - q[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Metric selects the pairwise streamline distance used for a computation.
type Metric int

const (
	// MetricMDF is the minimum-average-direct-flip distance (default).
	// It requires both streamlines to have the same point count.
	MetricMDF Metric = iota
	// MetricMAMMin is the minimum of the two directed mean-closest-point distances.
	MetricMAMMin
	// MetricMAMMean is the average of the two directed mean-closest-point distances.
	MetricMAMMean
	// MetricMAMMax is the maximum of the two directed mean-closest-point distances.
	MetricMAMMax
)

func (m Metric) String() string {
	switch m {
	case MetricMDF:
		return "MDF"
	case MetricMAMMin:
		return "MAMMin"
	case MetricMAMMean:
		return "MAMMean"
	case MetricMAMMax:
		return "MAMMax"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// RequiresEqualRows reports whether the metric is only defined for
// streamline pairs with identical point counts.
func (m Metric) RequiresEqualRows() bool {
	return m == MetricMDF
}

// Func is a pairwise streamline distance over contiguous float64 buffers.
type Func func(a, b []float64, rowsA, rowsB int) float64

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricMDF:
		return func(a, b []float64, rowsA, _ int) float64 {
			return MDF(a, b, rowsA)
		}, nil
	case MetricMAMMin:
		return MAMMin, nil
	case MetricMAMMean:
		return MAMMean, nil
	case MetricMAMMax:
		return MAMMax, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
