package testutil

import (
	"math"

	"github.com/hupe1980/closestpair/point"
	"github.com/hupe1980/closestpair/pointgen"
)

// Pair is the result of an exhaustive closest pair search.
// I < J index the input slice.
type Pair struct {
	I, J     int
	Distance float64
}

// RNG is the seeded point generator used throughout the tests.
type RNG = pointgen.Generator

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return pointgen.New(seed)
}

// Lattice returns the n*n*n points of a cubic grid with the given spacing.
func Lattice(n int, spacing float64) []point.Point {
	return pointgen.Lattice(n, spacing)
}

// BruteForce compares all pairs of pts and returns the first pair (in index
// order) at minimum distance. It returns a Pair with Distance +Inf when pts
// holds fewer than two points.
func BruteForce(pts []point.Point) Pair {
	best := Pair{I: -1, J: -1, Distance: math.Inf(1)}
	for i := 0; i < len(pts)-1; i++ {
		for j := i + 1; j < len(pts); j++ {
			if d := point.Distance(pts[i], pts[j]); d < best.Distance {
				best = Pair{I: i, J: j, Distance: d}
			}
		}
	}
	return best
}
