package tractgo

import (
	"math/rand"
	"testing"
)

// randomBundle builds size streamlines of rows points each from a seeded
// source, so tests are reproducible.
func randomBundle(t testing.TB, rng *rand.Rand, size, rows int) Bundle {
	t.Helper()

	b := make(Bundle, size)
	for i := range b {
		pts := make([]float64, rows*3)
		for j := range pts {
			pts[j] = rng.Float64() * 10
		}
		s, err := NewStreamline(pts)
		if err != nil {
			t.Fatalf("random streamline: %v", err)
		}
		b[i] = s
	}
	return b
}

func mustStreamline(t *testing.T, points ...float64) Streamline {
	t.Helper()

	s, err := NewStreamline(points)
	if err != nil {
		t.Fatalf("streamline from %v: %v", points, err)
	}
	return s
}
