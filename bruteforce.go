package closestpair

import "github.com/hupe1980/closestpair/point"

// validate checks the preconditions shared by every search.
func validate(op string, points []point.Point) error {
	if len(points) < 2 {
		return &ErrPointCount{Op: op, Got: len(points), Min: 2}
	}
	for i, p := range points {
		if !p.Valid() {
			return &ErrInvalidPoint{Index: i, Point: p}
		}
	}
	return nil
}

// BruteForce compares every pair of points. It accepts the same input as
// Finder.Search and reports the first pair, in input order, at the minimum
// distance. It costs n(n-1)/2 comparisons and is meant for verifying
// results on small sets.
func BruteForce(points []point.Point) (Result, error) {
	if err := validate("brute force", points); err != nil {
		return Result{}, err
	}

	// Seeded with the first pair so that an overflowing distance still
	// yields a pair.
	bi, bj := 0, 1
	best := point.Distance(points[0], points[1])
	var comparisons int64 = 1

	for i := 0; i < len(points)-1; i++ {
		for j := i + 1; j < len(points); j++ {
			if i == 0 && j == 1 {
				continue
			}
			comparisons++
			if d := point.Distance(points[i], points[j]); d < best {
				bi, bj, best = i, j, d
			}
		}
	}

	return Result{
		A:           points[bi],
		B:           points[bj],
		I:           bi,
		J:           bj,
		Distance:    best,
		Comparisons: comparisons,
	}, nil
}
