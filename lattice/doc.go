// Package lattice defines Shape, a fixed-size 3D boolean lattice used to
// represent polycubes, and the primitives that operate on it: bounded
// coordinate access, axis rotation, bounding-box growth, and diagnostic
// rendering.
//
// What:
//
//   - Shape wraps a dense []bool of Width*Height*Depth cells, addressed by
//     the fixed row-major-over-x-then-y-then-z index formula.
//   - RotateX/RotateY/RotateZ produce a new Shape with permuted dimensions,
//     each an order-4 rotation about one cube axis.
//   - GrowToFit enlarges a Shape on whichever faces are needed to bring an
//     out-of-bounds coordinate in bounds, translating existing cells.
//   - ConnectedComponents/Popcount are diagnostic helpers used by tests to
//     verify face-connectedness; they are not on the enumeration hot path.
//
// Why:
//
//   - Equality and hashing both depend on (Width, Height, Depth, Data), so
//     every mutating operation here is careful to keep dimensions and data
//     in lock-step — see ErrNonPositiveDimension and the *Into variants
//     used by package canon for buffer reuse.
//
// Complexity:
//
//   - New, Get, Set, IsInside: O(1).
//   - RotateX/Y/Z, RotateX/Y/ZInto: O(Width*Height*Depth).
//   - GrowToFit: O(Width*Height*Depth) for the copy.
//   - ConnectedComponents: O(Width*Height*Depth).
//
// Grounded on a dense, immutable-once-built grid with precomputed neighbor
// offsets, row-major indexing, and a tight in-bounds test, generalized
// here from a 2D [][]int grid to a 3D flat []bool lattice.
package lattice
