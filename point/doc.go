// Package point provides the three-dimensional point type searched by the
// closestpair package.
//
// A Point is a plain value. It carries no per-search state, so the same
// slice of points can be handed to any number of independent searches.
//
// # Usage
//
//	a := point.New(0, 0, 0)
//	b := point.New(1, 1, 1)
//	d := point.Distance(a, b) // sqrt(3)
package point
