// Package zlayer partitions a strip of points into bands ("layers") along
// the z axis.
//
// A Layout is built for one strip search and discarded afterwards. For every
// strip position it records the layer the point fell into and, for the
// previous, own and next layer, the position to resume scanning from. A
// scan that starts there only visits points inserted after the point, so
// each unordered pair is examined at most once.
package zlayer
