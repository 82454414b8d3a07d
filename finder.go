package closestpair

import (
	"cmp"
	"context"
	"math"
	"slices"
	"time"

	"github.com/hupe1980/closestpair/internal/zlayer"
	"github.com/hupe1980/closestpair/point"
)

// Result describes the closest pair found by a search.
type Result struct {
	// A and B are the two points of the pair, in input order.
	A, B point.Point
	// I and J are the input positions of A and B (I < J).
	I, J int
	// Distance is the Euclidean distance between A and B.
	Distance float64
	// Comparisons is the number of distance evaluations the search made.
	Comparisons int64
}

type pair struct {
	i, j int
	dist float64
}

// Finder searches a point set for its closest pair.
//
// A Finder is reusable: every Search discards the previous result.
// It is not safe for concurrent use.
type Finder struct {
	opts options

	points []point.Point
	byX    []int // input positions ordered by x
	rank   []int // input position -> index in byX

	best        pair
	comparisons int64
	computed    bool

	slots []zlayer.Slot
}

// New creates a Finder.
func New(optFns ...Option) *Finder {
	f := &Finder{opts: applyOptions(optFns)}
	f.reset()
	return f
}

// Find runs a single search over points and returns its result.
func Find(points []point.Point, optFns ...Option) (Result, error) {
	f := New(optFns...)
	if err := f.Search(points); err != nil {
		return Result{}, err
	}
	return f.Result()
}

// Search finds the closest pair among points. It needs at least two points,
// all with finite coordinates. The result is available from ClosestPair,
// ClosestDistance, ClosestIndices and Result until the next Search.
func (f *Finder) Search(points []point.Point) error {
	start := time.Now()
	err := f.search(points)
	elapsed := time.Since(start)

	f.opts.metricsCollector.RecordSearch(len(points), f.comparisons, elapsed, err)
	f.opts.logger.LogSearch(context.Background(), len(points), f.best.dist, f.comparisons, elapsed, err)
	return err
}

func (f *Finder) reset() {
	f.points = nil
	f.byX = nil
	f.rank = nil
	f.best = pair{i: -1, j: -1, dist: math.Inf(1)}
	f.comparisons = 0
	f.computed = false
}

func (f *Finder) search(points []point.Point) error {
	f.reset()

	if err := validate("search", points); err != nil {
		return err
	}

	f.points = slices.Clone(points)
	f.byX = f.sortedBy(point.CompareX)
	f.rank = make([]int, len(points))
	for r, id := range f.byX {
		f.rank[id] = r
	}
	byY := f.sortedBy(point.CompareY)

	// The first two points in x order seed the best pair.
	a, b := min(f.byX[0], f.byX[1]), max(f.byX[0], f.byX[1])
	f.best = pair{i: a, j: b, dist: f.distance(a, b)}

	if _, err := f.searchRange(0, byY); err != nil {
		f.reset()
		return err
	}

	f.computed = true
	return nil
}

// sortedBy returns the input positions stably sorted with compare.
func (f *Finder) sortedBy(compare func(a, b point.Point) int) []int {
	ids := make([]int, len(f.points))
	for i := range ids {
		ids[i] = i
	}
	slices.SortStableFunc(ids, func(a, b int) int {
		return compare(f.points[a], f.points[b])
	})
	return ids
}

// searchRange returns the smallest distance within ys, bounded above by the
// best distance known so far. ys holds the points of byX[start:start+len(ys)]
// in y order.
func (f *Finder) searchRange(start int, ys []int) (float64, error) {
	n := len(ys)
	if n < 2 {
		return math.Inf(1), nil
	}
	if n <= 3 {
		return f.handleBaseCase(ys)
	}

	// Splitting by x-rank keeps both halves non-empty when x values tie.
	mid := start + n/2
	boundary := f.points[f.byX[mid]].X

	left := make([]int, 0, n/2+1)
	right := make([]int, 0, n-n/2)
	for _, id := range ys {
		if f.rank[id] <= mid {
			left = append(left, id)
		} else {
			right = append(right, id)
		}
	}

	dl, err := f.searchRange(start, left)
	if err != nil {
		return 0, err
	}
	dr, err := f.searchRange(start+len(left), right)
	if err != nil {
		return 0, err
	}
	delta := min(dl, dr, f.best.dist)

	var strip []int
	for _, id := range ys {
		if math.Abs(f.points[id].X-boundary) < delta {
			strip = append(strip, id)
		}
	}

	return f.searchStrip(strip, delta)
}

// handleBaseCase compares every pair of two or three points and returns the
// smallest distance that improved the best pair, or +Inf if none did.
func (f *Finder) handleBaseCase(ids []int) (float64, error) {
	if len(ids) < 2 || len(ids) > 3 {
		return 0, &ErrPointCount{Op: "base case", Got: len(ids), Min: 2, Max: 3}
	}

	result := math.Inf(1)
	for i := 0; i < len(ids)-1; i++ {
		for j := i + 1; j < len(ids); j++ {
			if d := f.distance(ids[i], ids[j]); d < f.best.dist {
				f.update(ids[i], ids[j], d)
				result = d
			}
		}
	}
	return result, nil
}

func (f *Finder) distance(a, b int) float64 {
	f.comparisons++
	return point.Distance(f.points[a], f.points[b])
}

func (f *Finder) update(a, b int, d float64) {
	if d >= f.best.dist {
		return
	}
	if a > b {
		a, b = b, a
	}
	f.best = pair{i: a, j: b, dist: d}
}

// ClosestPair returns the two points of the closest pair, in input order.
func (f *Finder) ClosestPair() (point.Point, point.Point, error) {
	if !f.computed {
		return point.Point{}, point.Point{}, ErrNotComputed
	}
	return f.points[f.best.i], f.points[f.best.j], nil
}

// ClosestDistance returns the distance between the closest pair.
func (f *Finder) ClosestDistance() (float64, error) {
	if !f.computed {
		return 0, ErrNotComputed
	}
	return f.best.dist, nil
}

// ClosestIndices returns the input positions of the closest pair, lower first.
func (f *Finder) ClosestIndices() (int, int, error) {
	if !f.computed {
		return -1, -1, ErrNotComputed
	}
	return f.best.i, f.best.j, nil
}

// Result returns the full result of the last search.
func (f *Finder) Result() (Result, error) {
	if !f.computed {
		return Result{}, ErrNotComputed
	}
	return Result{
		A:           f.points[f.best.i],
		B:           f.points[f.best.j],
		I:           f.best.i,
		J:           f.best.j,
		Distance:    f.best.dist,
		Comparisons: f.comparisons,
	}, nil
}

// Compare orders results by distance, then by input positions.
func Compare(a, b Result) int {
	return cmp.Or(
		cmp.Compare(a.Distance, b.Distance),
		cmp.Compare(a.I, b.I),
		cmp.Compare(a.J, b.J),
	)
}
