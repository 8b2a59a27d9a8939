// Package extend produces, from a lattice.Shape of population n, every
// distinct Shape of population n+1 obtained by setting one currently-unset
// cell that is face-adjacent to some set cell — including cells outside
// the source Shape's current bounding box.
//
// What:
//
//   - Children returns one child per qualifying candidate cell; two
//     different touching cells of one parent always produce two separate
//     children, which may be Equal Shapes (opposite faces of a 1x1x1 seed
//     both grow into the same 2x1x1, 1x2x1 or 1x1x2 lattice).
//     Deduplication across children (including across rotations
//     of the same resulting polycube) is the caller's job — package engine
//     does it via package canon.
//   - A candidate outside the source's bounds triggers lattice.Shape's
//     GrowToFit before the cell is set, so memory stays proportional to
//     the true bounding box rather than padded speculatively.
//
// Complexity: O(Width*Height*Depth) candidate cells considered, O(1)
// neighbor checks each; each yielded child costs O(Width*Height*Depth) to
// clone or grow.
//
// Grounded on a neighbor-offset iteration idiom shared with
// lattice.ConnectedComponents, generalized from 2D 4/8-connectivity to 3D
// 6-connectivity, and on original_source/src/main.rs's
// touching_unset_bits/has_set_neighbor/generate, reworked into Go's
// iterator-via-callback idiom.
package extend
