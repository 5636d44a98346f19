package tractgo

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/hupe1980/tractgo/metric"
)

func TestDistanceMatrix(t *testing.T) {
	ctx := context.Background()

	t.Run("IdenticalSingles", func(t *testing.T) {
		a := mustStreamline(t, 0, 0, 0, 1, 0, 0, 2, 0, 0)
		b := mustStreamline(t, 0, 0, 0, 1, 0, 0, 2, 0, 0)

		d, err := DistanceMatrix(ctx, Bundle{a}, Bundle{b})
		require.NoError(t, err)

		r, c := d.Dims()
		assert.Equal(t, 1, r)
		assert.Equal(t, 1, c)
		assert.Equal(t, 0.0, d.At(0, 0))
	})

	t.Run("FlippedPair", func(t *testing.T) {
		a := mustStreamline(t, 0, 0, 0, 1, 0, 0)
		b := mustStreamline(t, 1, 0, 0, 0, 0, 0)

		d, err := DistanceMatrix(ctx, Bundle{a}, Bundle{b})
		require.NoError(t, err)
		assert.Equal(t, 0.0, d.At(0, 0))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		static := randomBundle(t, rand.New(rand.NewSource(1)), 3, 10)
		moving := randomBundle(t, rand.New(rand.NewSource(2)), 3, 12)

		_, err := DistanceMatrix(ctx, static, moving)

		var mismatch *ErrShapeMismatch
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, 10, mismatch.Static)
		assert.Equal(t, 12, mismatch.Moving)
	})

	t.Run("EmptyBundle", func(t *testing.T) {
		static := randomBundle(t, rand.New(rand.NewSource(1)), 3, 10)

		_, err := DistanceMatrix(ctx, static, Bundle{})
		require.ErrorIs(t, err, ErrEmptyBundle)

		_, err = DistanceMatrix(ctx, Bundle{}, static)
		require.ErrorIs(t, err, ErrEmptyBundle)
	})

	t.Run("MAMAcceptsUnequalRows", func(t *testing.T) {
		static := randomBundle(t, rand.New(rand.NewSource(1)), 3, 10)
		moving := randomBundle(t, rand.New(rand.NewSource(2)), 4, 12)

		d, err := DistanceMatrix(ctx, static, moving, WithMetric(metric.MetricMAMMean))
		require.NoError(t, err)

		r, c := d.Dims()
		assert.Equal(t, 3, r)
		assert.Equal(t, 4, c)
	})

	t.Run("UnknownMetric", func(t *testing.T) {
		static := randomBundle(t, rand.New(rand.NewSource(1)), 2, 5)

		_, err := DistanceMatrix(ctx, static, static, WithMetric(metric.Metric(99)))
		require.Error(t, err)
	})
}

func TestDistanceMatrixDeterministicAcrossWorkers(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(7))

	static := randomBundle(t, rng, 20, 15)
	moving := randomBundle(t, rng, 30, 15)

	seq, err := DistanceMatrix(ctx, static, moving, WithWorkers(1))
	require.NoError(t, err)

	par, err := DistanceMatrix(ctx, static, moving, WithWorkers(8))
	require.NoError(t, err)

	// Each cell is computed by exactly one worker, so the matrices agree
	// bit for bit regardless of worker count.
	assert.True(t, mat.Equal(seq, par))
}

func TestDistanceMatrixInto(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(3))

	static := randomBundle(t, rng, 4, 8)
	moving := randomBundle(t, rng, 5, 8)

	dst := mat.NewDense(4, 5, nil)
	require.NoError(t, DistanceMatrixInto(ctx, dst, static, moving))

	want, err := DistanceMatrix(ctx, static, moving)
	require.NoError(t, err)
	assert.True(t, mat.Equal(want, dst))

	t.Run("BadDestination", func(t *testing.T) {
		bad := mat.NewDense(2, 2, nil)
		err := DistanceMatrixInto(ctx, bad, static, moving)
		require.ErrorIs(t, err, ErrBadDestination)
	})
}

func TestDistanceMatrixSymmetricOnSameBundle(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(11))

	b := randomBundle(t, rng, 10, 12)

	d, err := DistanceMatrix(ctx, b, b)
	require.NoError(t, err)

	n, _ := d.Dims()
	for i := 0; i < n; i++ {
		assert.Equal(t, 0.0, d.At(i, i))
		for j := i + 1; j < n; j++ {
			assert.InDelta(t, d.At(i, j), d.At(j, i), 1e-12)
		}
	}
}

func BenchmarkDistanceMatrix(b *testing.B) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(1))

	static := randomBundle(b, rng, 50, 20)
	moving := randomBundle(b, rng, 50, 20)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := DistanceMatrix(ctx, static, moving); err != nil {
			b.Fatal(err)
		}
	}
}
