// Package closestpair finds the closest pair among points in
// three-dimensional space.
//
// The search is a divide-and-conquer algorithm running in O(n log n):
//
//   - points are ordered once by x and once by y
//   - each level splits the y-ordered subset at the median x-rank
//   - the halves are searched recursively; delta is the best distance so far
//   - points within delta of the split plane form a strip, which is bucketed
//     along z into layers of width delta so that each point is compared with
//     a bounded number of neighbours
//   - subsets of at most three points are compared exhaustively
//
// # Quick Start
//
//	f := closestpair.New()
//	if err := f.Search(points); err != nil {
//	    return err
//	}
//	a, b, _ := f.ClosestPair()
//	d, _ := f.ClosestDistance()
//
// Or in one call:
//
//	res, err := closestpair.Find(points)
//
// # Errors
//
// Search returns an error matching ErrInvalidInput for fewer than two points
// or for points with non-finite coordinates. The accessors return
// ErrNotComputed until a Search succeeds.
//
// # Concurrency
//
// A Finder keeps the state of one search and must not be shared between
// goroutines. Independent Finders may run concurrently.
package closestpair
