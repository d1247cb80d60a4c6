// Package distance provides the Euclidean distance used throughout kohonen.
//
// Every distance in the module, whether between two weight vectors or
// between two lattice positions, is the square root of the sum of squared
// per-component differences, accumulated in float64 regardless of the
// element type.
//
// # Usage
//
//	d := distance.L2(a, b)          // vector space
//	g := distance.Grid(0, 0, 2, 1)  // lattice coordinates
package distance
