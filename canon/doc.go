// Package canon reduces a lattice.Shape to the lexicographically minimum
// Shape across the 24-element proper rotation group of the cube — the
// unique representative of its rotation-equivalence class.
//
// What:
//
//   - A Canonicalizer enumerates exactly 24 rotations via the standard
//     "6 face orientations x 4 z-spins" construction, not the 2x4x4 or
//     4x4x4 constructions that cover the group as a (correct but wasteful)
//     superset.
//   - Comparison is lexicographic over Data (lattice.Shape.Less), which
//     short-circuits on the first differing cell; identical Data is
//     ordered by dimensions.
//   - A Canonicalizer owns scratch buffers reused across calls and across
//     the four z-spins of each face orientation; the six face orientations
//     and the returned Shape are allocated on every call.
//
// Why:
//
//   - Canonicalization runs once per candidate child in the enumeration's
//     innermost loop (package engine), so both correctness (group-closed:
//     every rotation of a Shape canonicalizes to the same result) and
//     allocation discipline matter.
//
// Complexity: O(24*Width*Height*Depth) per call, dominated by the 24
// rotations; comparison is O(Width*Height*Depth) worst case but typically
// exits early.
//
// Grounded on the general pattern, used throughout this module, of
// precomputing and reusing buffers outside hot loops (lattice's
// precomputed neighborOffsets3D, dedup's preallocated bucket map), and on
// original_source/src/main.rs's create_canonical, corrected from a
// 32-rotation (2x4x4) over-enumeration to an exact 24-rotation one.
package canon
