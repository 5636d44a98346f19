package tractgo

import "gonum.org/v1/gonum/spatial/r3"

// Streamline is one polyline of 3D points, stored as a contiguous row-major
// float64 buffer (point-major, then x/y/z). The buffer layout is what the
// distance kernels iterate over, so a Streamline is never reshaped or copied
// once constructed.
type Streamline struct {
	points []float64
	rows   int
}

// NewStreamline wraps a raw coordinate buffer as a streamline without
// copying. len(points) must be a positive multiple of 3.
//
// The caller must not mutate points while the streamline is in use.
func NewStreamline(points []float64) (Streamline, error) {
	if len(points) == 0 || len(points)%3 != 0 {
		return Streamline{}, &ErrInvalidPointLayout{Len: len(points)}
	}
	return Streamline{points: points, rows: len(points) / 3}, nil
}

// StreamlineFromPoints copies pts into a fresh contiguous buffer.
func StreamlineFromPoints(pts []r3.Vec) (Streamline, error) {
	if len(pts) == 0 {
		return Streamline{}, &ErrInvalidPointLayout{Len: 0}
	}
	buf := make([]float64, 0, len(pts)*3)
	for _, p := range pts {
		buf = append(buf, p.X, p.Y, p.Z)
	}
	return Streamline{points: buf, rows: len(pts)}, nil
}

// StreamlineFromFloat32 copies a single-precision coordinate buffer into the
// double-precision layout the distance kernels require. len(points) must be
// a positive multiple of 3.
func StreamlineFromFloat32(points []float32) (Streamline, error) {
	if len(points) == 0 || len(points)%3 != 0 {
		return Streamline{}, &ErrInvalidPointLayout{Len: len(points)}
	}
	buf := make([]float64, len(points))
	for i, v := range points {
		buf[i] = float64(v)
	}
	return Streamline{points: buf, rows: len(points) / 3}, nil
}

// Rows returns the number of 3D points.
func (s Streamline) Rows() int { return s.rows }

// Point returns point i as a 3D vector.
func (s Streamline) Point(i int) r3.Vec {
	return r3.Vec{X: s.points[i*3], Y: s.points[i*3+1], Z: s.points[i*3+2]}
}

// Reversed returns a copy of the streamline with its point order reversed.
// Under the MDF metric a streamline and its reversal are at distance zero.
func (s Streamline) Reversed() Streamline {
	buf := make([]float64, len(s.points))
	for i := 0; i < s.rows; i++ {
		copy(buf[i*3:i*3+3], s.points[(s.rows-1-i)*3:(s.rows-1-i)*3+3])
	}
	return Streamline{points: buf, rows: s.rows}
}

// Bundle is an ordered collection of streamlines, typically one anatomical
// structure. The distance entry points validate the point count of the first
// streamline of each bundle only; keeping every streamline within a bundle at
// the same point count is the caller's contract for the MDF metric, and
// violating it yields meaningless distances (the hot path has no per-pair
// checks).
type Bundle []Streamline

// Rows returns the point count of the first streamline, or 0 for an empty
// bundle.
func (b Bundle) Rows() int {
	if len(b) == 0 {
		return 0
	}
	return b[0].rows
}

// validatePair is the boundary check run before any worker is started.
func validatePair(static, moving Bundle, equalRows bool) error {
	if len(static) == 0 || len(moving) == 0 {
		return ErrEmptyBundle
	}
	if equalRows && static.Rows() != moving.Rows() {
		return &ErrShapeMismatch{Static: static.Rows(), Moving: moving.Rows()}
	}
	return nil
}
