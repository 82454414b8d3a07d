package closestpair

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"testing"

	"github.com/hupe1980/closestpair/point"
	"github.com/hupe1980/closestpair/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireMatchesBruteForce checks f's result against exhaustive search.
func requireMatchesBruteForce(t *testing.T, f *Finder, pts []point.Point) {
	t.Helper()

	want := testutil.BruteForce(pts)

	d, err := f.ClosestDistance()
	require.NoError(t, err)
	require.Equal(t, want.Distance, d)

	i, j, err := f.ClosestIndices()
	require.NoError(t, err)
	require.Less(t, i, j)
	require.Equal(t, want.Distance, point.Distance(pts[i], pts[j]))

	a, b, err := f.ClosestPair()
	require.NoError(t, err)
	require.Equal(t, pts[i], a)
	require.Equal(t, pts[j], b)
}

func TestSearch_Examples(t *testing.T) {
	t.Run("FourPoints", func(t *testing.T) {
		pts := []point.Point{
			point.New(0, 0, 0),
			point.New(1, 1, 1),
			point.New(5, 5, 5),
			point.New(0, 0, 0.5),
		}
		f := New()
		require.NoError(t, f.Search(pts))

		d, err := f.ClosestDistance()
		require.NoError(t, err)
		assert.InDelta(t, 0.5, d, 1e-12)

		a, b, err := f.ClosestPair()
		require.NoError(t, err)
		assert.Equal(t, point.New(0, 0, 0), a)
		assert.Equal(t, point.New(0, 0, 0.5), b)

		i, j, err := f.ClosestIndices()
		require.NoError(t, err)
		assert.Equal(t, 0, i)
		assert.Equal(t, 3, j)
	})

	t.Run("TwoPoints", func(t *testing.T) {
		pts := []point.Point{point.New(0, 0, 0), point.New(10, 10, 10)}
		f := New()
		require.NoError(t, f.Search(pts))

		d, err := f.ClosestDistance()
		require.NoError(t, err)
		assert.InDelta(t, 10*math.Sqrt(3), d, 1e-12)

		a, b, err := f.ClosestPair()
		require.NoError(t, err)
		assert.Equal(t, pts[0], a)
		assert.Equal(t, pts[1], b)
	})

	t.Run("ThreePoints", func(t *testing.T) {
		pts := []point.Point{point.New(0, 0, 0), point.New(3, 0, 0), point.New(0, 0, 2)}
		f := New()
		require.NoError(t, f.Search(pts))
		requireMatchesBruteForce(t, f, pts)

		d, _ := f.ClosestDistance()
		assert.Equal(t, 2.0, d)
	})
}

func TestSearch_MatchesBruteForce(t *testing.T) {
	rng := testutil.NewRNG(4711)

	generators := []struct {
		name string
		gen  func(n int) []point.Point
	}{
		{"Uniform", func(n int) []point.Point { return rng.UniformPoints(n, -1000, 1000) }},
		{"Gaussian", func(n int) []point.Point { return rng.GaussianPoints(n, 10) }},
		{"Clustered", func(n int) []point.Point { return rng.ClusteredPoints(n, 5, 0.01) }},
		{"IntegerGrid", func(n int) []point.Point { return rng.IntegerPoints(n, 8) }},
	}
	sizes := []int{2, 3, 4, 5, 6, 7, 8, 13, 32, 100, 257, 1000}

	f := New()
	for _, g := range generators {
		for _, n := range sizes {
			t.Run(fmt.Sprintf("%s/%d", g.name, n), func(t *testing.T) {
				for trial := range 5 {
					pts := g.gen(n)
					require.NoError(t, f.Search(pts), "trial %d", trial)
					requireMatchesBruteForce(t, f, pts)
				}
			})
		}
	}
}

func TestSearch_Large(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping large search in short mode")
	}

	rng := testutil.NewRNG(99)
	for _, n := range []int{2000, 4000} {
		t.Run(fmt.Sprintf("Uniform/%d", n), func(t *testing.T) {
			pts := rng.UniformPoints(n, 0, 1)
			f := New()
			require.NoError(t, f.Search(pts))
			requireMatchesBruteForce(t, f, pts)

			res, err := f.Result()
			require.NoError(t, err)
			assert.Less(t, res.Comparisons, int64(n*n/8))
		})
	}
}

func TestSearch_Degenerate(t *testing.T) {
	line := func(n int, at func(i float64) point.Point) []point.Point {
		pts := make([]point.Point, n)
		for i := range pts {
			pts[i] = at(float64(i*i%97) + float64(i)/7)
		}
		return pts
	}

	tests := []struct {
		name string
		pts  []point.Point
	}{
		{"CollinearX", line(60, func(v float64) point.Point { return point.New(v, 0, 0) })},
		{"CollinearY", line(60, func(v float64) point.Point { return point.New(0, v, 0) })},
		{"CollinearZ", line(60, func(v float64) point.Point { return point.New(0, 0, v) })},
		{"SharedZ", testutil.NewRNG(3).UniformPoints(200, -5, 5)},
		{"SharedX", testutil.NewRNG(5).UniformPoints(200, -5, 5)},
		{"Lattice", testutil.Lattice(6, 0.25)},
		{"ExtremeZSpread", []point.Point{
			point.New(0, 0, 0),
			point.New(1e-10, 0, 0),
			point.New(0, 1, 1e300),
			point.New(1e-10, 2, -1e300),
			point.New(2e-10, 3, 5e299),
			point.New(0, 4, -5e299),
		}},
		{"WideZSpreadSharedX", []point.Point{
			point.New(0, 0, 0),
			point.New(0, 1e-9, 0),
			point.New(0, 1, 1e300),
			point.New(0, 2, -1e300),
			point.New(0, 3, 1e-300),
			point.New(0, 4, 2e300),
		}},
	}
	for i := range tests[3].pts {
		tests[3].pts[i].Z = 1
	}
	for i := range tests[4].pts {
		tests[4].pts[i].X = -2
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			require.NoError(t, f.Search(tt.pts))
			requireMatchesBruteForce(t, f, tt.pts)
		})
	}
}

func TestSearch_IdenticalPoints(t *testing.T) {
	pts := make([]point.Point, 50)
	for i := range pts {
		pts[i] = point.New(1.5, -2, 7)
	}

	f := New()
	require.NoError(t, f.Search(pts))

	d, err := f.ClosestDistance()
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	a, b, err := f.ClosestPair()
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSearch_DuplicateAmongDistinct(t *testing.T) {
	pts := testutil.NewRNG(8).UniformPoints(300, 0, 100)
	pts = append(pts, pts[123])

	f := New()
	require.NoError(t, f.Search(pts))

	i, j, err := f.ClosestIndices()
	require.NoError(t, err)
	assert.Equal(t, 123, i)
	assert.Equal(t, 300, j)
}

func TestSearch_Idempotent(t *testing.T) {
	pts := testutil.NewRNG(21).IntegerPoints(500, 20)
	f := New()

	require.NoError(t, f.Search(pts))
	first, err := f.Result()
	require.NoError(t, err)

	require.NoError(t, f.Search(pts))
	second, err := f.Result()
	require.NoError(t, err)

	assert.Equal(t, first.Distance, second.Distance)
	assert.Equal(t, first, second)
}

func TestSearch_Reuse(t *testing.T) {
	rng := testutil.NewRNG(2)
	f := New()

	a := rng.UniformPoints(100, 0, 1)
	require.NoError(t, f.Search(a))
	requireMatchesBruteForce(t, f, a)

	b := rng.UniformPoints(40, 1000, 1001)
	require.NoError(t, f.Search(b))
	requireMatchesBruteForce(t, f, b)
}

func TestSearch_DoesNotAliasInput(t *testing.T) {
	pts := []point.Point{point.New(0, 0, 0), point.New(0, 0, 1), point.New(9, 9, 9)}
	f := New()
	require.NoError(t, f.Search(pts))

	pts[0] = point.New(100, 100, 100)

	a, _, err := f.ClosestPair()
	require.NoError(t, err)
	assert.Equal(t, point.New(0, 0, 0), a)
}

func TestSearch_InvalidInput(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		err := New().Search(nil)
		require.ErrorIs(t, err, ErrInvalidInput)

		var pc *ErrPointCount
		require.ErrorAs(t, err, &pc)
		assert.Equal(t, 0, pc.Got)
		assert.Equal(t, 2, pc.Min)
	})

	t.Run("Single", func(t *testing.T) {
		err := New().Search([]point.Point{point.New(1, 2, 3)})
		require.ErrorIs(t, err, ErrInvalidInput)
		assert.Contains(t, err.Error(), "need at least 2 points, got 1")
	})

	t.Run("NonFinite", func(t *testing.T) {
		pts := []point.Point{point.New(0, 0, 0), point.New(0, math.NaN(), 0)}
		err := New().Search(pts)
		require.ErrorIs(t, err, ErrInvalidInput)

		var ip *ErrInvalidPoint
		require.ErrorAs(t, err, &ip)
		assert.Equal(t, 1, ip.Index)
	})
}

func TestAccessors_NotComputed(t *testing.T) {
	f := New()

	_, _, err := f.ClosestPair()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, err = f.ClosestDistance()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, _, err = f.ClosestIndices()
	assert.ErrorIs(t, err, ErrNotComputed)
	_, err = f.Result()
	assert.ErrorIs(t, err, ErrNotComputed)

	t.Run("FailedSearchClearsResult", func(t *testing.T) {
		require.NoError(t, f.Search([]point.Point{point.New(0, 0, 0), point.New(1, 0, 0)}))
		require.Error(t, f.Search([]point.Point{point.New(0, 0, 0)}))

		_, err := f.ClosestDistance()
		assert.ErrorIs(t, err, ErrNotComputed)
	})
}

func TestHandleBaseCase(t *testing.T) {
	pts := []point.Point{point.New(0, 0, 0), point.New(4, 0, 0), point.New(0, 3, 0), point.New(0, 0, 1)}
	f := New()
	require.NoError(t, f.Search(pts))

	t.Run("RejectsSizes", func(t *testing.T) {
		for _, ids := range [][]int{nil, {0}, {0, 1, 2, 3}} {
			_, err := f.handleBaseCase(ids)
			require.ErrorIs(t, err, ErrInvalidInput)
		}
	})

	t.Run("NoImprovementIsInf", func(t *testing.T) {
		d, err := f.handleBaseCase([]int{0, 1, 2})
		require.NoError(t, err)
		assert.True(t, math.IsInf(d, 1))

		best, _ := f.ClosestDistance()
		assert.Equal(t, 1.0, best)
	})

	t.Run("Improves", func(t *testing.T) {
		f.best.dist = math.Inf(1)
		d, err := f.handleBaseCase([]int{1, 2, 0})
		require.NoError(t, err)
		assert.Equal(t, 3.0, d)

		i, j, _ := f.ClosestIndices()
		assert.Equal(t, 0, i)
		assert.Equal(t, 2, j)
	})
}

func TestSearchStrip_Small(t *testing.T) {
	pts := []point.Point{point.New(0, 0, 0), point.New(0, 1, 0), point.New(0, 5, 0)}
	f := New()
	require.NoError(t, f.Search(pts))

	d, err := f.searchStrip(nil, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	d, err = f.searchStrip([]int{2}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)

	d, err = f.searchStrip([]int{1, 2}, 2.5)
	require.NoError(t, err)
	assert.Equal(t, 2.5, d)
}

func TestFind(t *testing.T) {
	pts := testutil.NewRNG(1).UniformPoints(64, -1, 1)
	res, err := Find(pts)
	require.NoError(t, err)

	want := testutil.BruteForce(pts)
	assert.Equal(t, want.Distance, res.Distance)
	assert.Equal(t, pts[res.I], res.A)
	assert.Equal(t, pts[res.J], res.B)
	assert.Positive(t, res.Comparisons)

	_, err = Find(nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCompare(t *testing.T) {
	a := Result{I: 0, J: 1, Distance: 1}
	b := Result{I: 0, J: 2, Distance: 1}
	c := Result{I: 0, J: 1, Distance: 2}
	assert.Negative(t, Compare(a, b))
	assert.Negative(t, Compare(b, c))
	assert.Zero(t, Compare(a, a))
}

func TestMetricsCollector(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	f := New(WithMetricsCollector(metrics))

	pts := testutil.NewRNG(5).UniformPoints(500, 0, 10)
	require.NoError(t, f.Search(pts))
	require.Error(t, f.Search(nil))

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.SearchCount)
	assert.Equal(t, int64(1), stats.SearchErrors)
	assert.Equal(t, int64(500), stats.SearchPoints)
	assert.Positive(t, stats.SearchComparisons)
	assert.GreaterOrEqual(t, stats.SearchAvgNanos, int64(0))

	res, err := f.Result()
	assert.ErrorIs(t, err, ErrNotComputed)
	assert.Zero(t, res.Comparisons)

	t.Run("NilFallsBackToNoop", func(t *testing.T) {
		f := New(WithMetricsCollector(nil))
		assert.NoError(t, f.Search(pts))
	})
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	f := New(WithLogger(logger))

	require.NoError(t, f.Search([]point.Point{point.New(0, 0, 0), point.New(0, 3, 4)}))
	assert.Contains(t, buf.String(), `"msg":"search completed"`)
	assert.Contains(t, buf.String(), `"distance":5`)

	buf.Reset()
	err := f.Search(nil)
	require.Error(t, err)
	assert.Contains(t, buf.String(), `"msg":"search failed"`)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	t.Run("Noop", func(t *testing.T) {
		f := New(WithLogger(nil), WithLogLevel(slog.LevelError))
		assert.NoError(t, f.Search([]point.Point{point.New(0, 0, 0), point.New(1, 0, 0)}))
	})
}

func TestSearch_OverflowingDistances(t *testing.T) {
	pts := []point.Point{
		point.New(-1e300, -1e300, -1e300),
		point.New(1e300, 1e300, 1e300),
	}
	f := New()
	require.NoError(t, f.Search(pts))

	d, err := f.ClosestDistance()
	require.NoError(t, err)
	assert.True(t, math.IsInf(d, 1))

	i, j, err := f.ClosestIndices()
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)
}
