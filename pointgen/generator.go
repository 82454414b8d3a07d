package pointgen

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/closestpair/point"
)

// Generator wraps a seeded random source. It is safe for concurrent use.
type Generator struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// New creates a Generator with the specified seed.
func New(seed int64) *Generator {
	return &Generator{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset rewinds the Generator to its initial seed.
func (r *Generator) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *Generator) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *Generator) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *Generator) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformPoints generates num points with every coordinate in [minVal, maxVal).
func (r *Generator) UniformPoints(num int, minVal, maxVal float64) []point.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	span := maxVal - minVal
	pts := make([]point.Point, num)
	for i := range pts {
		pts[i] = point.New(
			minVal+r.rand.Float64()*span,
			minVal+r.rand.Float64()*span,
			minVal+r.rand.Float64()*span,
		)
	}
	return pts
}

// GaussianPoints generates num points drawn from a normal distribution
// centred on the origin with standard deviation sigma.
func (r *Generator) GaussianPoints(num int, sigma float64) []point.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.Point, num)
	for i := range pts {
		pts[i] = point.New(
			r.rand.NormFloat64()*sigma,
			r.rand.NormFloat64()*sigma,
			r.rand.NormFloat64()*sigma,
		)
	}
	return pts
}

// ClusteredPoints generates points around random centroids in [-100, 100)^3.
// Points are assigned to centroids round-robin and displaced by Gaussian
// noise scaled by spread.
func (r *Generator) ClusteredPoints(num, clusters int, spread float64) []point.Point {
	if clusters < 1 {
		clusters = 1
	}
	centroids := r.UniformPoints(clusters, -100, 100)

	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.Point, num)
	for i := range pts {
		c := centroids[i%clusters]
		pts[i] = point.New(
			c.X+r.rand.NormFloat64()*spread,
			c.Y+r.rand.NormFloat64()*spread,
			c.Z+r.rand.NormFloat64()*spread,
		)
	}
	return pts
}

// IntegerPoints generates points with integer coordinates in [0, side).
// Small sides produce many exact duplicates and distance ties.
func (r *Generator) IntegerPoints(num, side int) []point.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]point.Point, num)
	for i := range pts {
		pts[i] = point.New(
			float64(r.rand.Intn(side)),
			float64(r.rand.Intn(side)),
			float64(r.rand.Intn(side)),
		)
	}
	return pts
}

// Shuffle permutes pts in place.
func (r *Generator) Shuffle(pts []point.Point) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Shuffle(len(pts), func(i, j int) {
		pts[i], pts[j] = pts[j], pts[i]
	})
}

// Lattice returns the n*n*n points of a cubic grid with the given spacing.
func Lattice(n int, spacing float64) []point.Point {
	pts := make([]point.Point, 0, n*n*n)
	for x := range n {
		for y := range n {
			for z := range n {
				pts = append(pts, point.New(float64(x)*spacing, float64(y)*spacing, float64(z)*spacing))
			}
		}
	}
	return pts
}

// Distribution names a point distribution accepted by Generate.
type Distribution string

const (
	// Uniform spreads points over the cube [-scale, scale)^3.
	Uniform Distribution = "uniform"
	// Gaussian draws every coordinate from N(0, scale^2).
	Gaussian Distribution = "gaussian"
	// Clustered places points around 8 centroids with spread scale/100.
	Clustered Distribution = "clustered"
	// Integer draws integer coordinates in [0, scale), full of duplicates.
	Integer Distribution = "integer"
)

// Distributions lists every distribution in a stable order.
func Distributions() []Distribution {
	return []Distribution{Uniform, Gaussian, Clustered, Integer}
}

// Generate draws n points from the named distribution. scale sets its
// extent and must be positive.
func (r *Generator) Generate(d Distribution, n int, scale float64) ([]point.Point, error) {
	if n < 0 {
		return nil, fmt.Errorf("pointgen: negative point count %d", n)
	}
	if !(scale > 0) {
		return nil, fmt.Errorf("pointgen: invalid scale %g", scale)
	}

	switch d {
	case Uniform:
		return r.UniformPoints(n, -scale, scale), nil
	case Gaussian:
		return r.GaussianPoints(n, scale), nil
	case Clustered:
		return r.ClusteredPoints(n, 8, scale/100), nil
	case Integer:
		return r.IntegerPoints(n, max(int(scale), 1)), nil
	default:
		return nil, fmt.Errorf("pointgen: unknown distribution %q", d)
	}
}
