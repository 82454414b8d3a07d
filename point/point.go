package point

import (
	"cmp"
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Point is a coordinate triple in three-dimensional space.
type Point struct {
	X, Y, Z float64
}

// New returns the point (x, y, z).
func New(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// FromVector converts an r3.Vector to a Point.
func FromVector(v r3.Vector) Point {
	return Point{X: v.X, Y: v.Y, Z: v.Z}
}

// Vector returns p as an r3.Vector.
func (p Point) Vector() r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.Z}
}

// Valid reports whether all coordinates are finite.
func (p Point) Valid() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// Distance returns the Euclidean distance between a and b.
// It is symmetric and exactly 0 for identical coordinates.
func Distance(a, b Point) float64 {
	return a.Vector().Distance(b.Vector())
}

// CompareX orders points by their x coordinate.
func CompareX(a, b Point) int {
	return cmp.Compare(a.X, b.X)
}

// CompareY orders points by their y coordinate.
func CompareY(a, b Point) int {
	return cmp.Compare(a.Y, b.Y)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
