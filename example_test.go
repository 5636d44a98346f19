package tractgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/tractgo"
	"github.com/hupe1980/tractgo/metric"
)

// Example demonstrates the flip invariance of the MDF metric: a bundle and
// its point-order-reversed copy are at distance zero.
func Example() {
	ctx := context.Background()

	a, err := tractgo.NewStreamline([]float64{0, 0, 0, 1, 0, 0, 2, 0, 0})
	if err != nil {
		log.Fatal(err)
	}

	static := tractgo.Bundle{a}
	moving := tractgo.Bundle{a.Reversed()}

	d, err := tractgo.BundleMinimumDistance(ctx, static, moving)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f\n", d)
	// Output: 0.0
}

// ExampleDistanceMatrix computes the full pairwise matrix between two
// two-streamline bundles.
func ExampleDistanceMatrix() {
	ctx := context.Background()

	line := func(y float64) tractgo.Streamline {
		s, err := tractgo.NewStreamline([]float64{0, y, 0, 1, y, 0, 2, y, 0})
		if err != nil {
			log.Fatal(err)
		}
		return s
	}

	static := tractgo.Bundle{line(0), line(1)}
	moving := tractgo.Bundle{line(0), line(3)}

	d, err := tractgo.DistanceMatrix(ctx, static, moving, tractgo.WithWorkers(2))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.0f %.0f\n", d.At(0, 0), d.At(0, 1))
	fmt.Printf("%.0f %.0f\n", d.At(1, 0), d.At(1, 1))
	// Output:
	// 0 3
	// 1 2
}

// ExampleWithMetric selects a MAM variant, which also accepts streamlines
// with unequal point counts.
func ExampleWithMetric() {
	ctx := context.Background()

	a, _ := tractgo.NewStreamline([]float64{0, 0, 0, 1, 0, 0})
	b, _ := tractgo.NewStreamline([]float64{0, 1, 0, 1, 1, 0, 2, 1, 0})

	d, err := tractgo.DistanceMatrix(ctx, tractgo.Bundle{a}, tractgo.Bundle{b},
		tractgo.WithMetric(metric.MetricMAMMin))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%.1f\n", d.At(0, 0))
	// Output: 1.0
}
