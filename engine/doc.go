// Package engine drives the outer enumeration loop: it holds the current
// generation's canonical Shapes, extends and canonicalizes each into the
// next generation, and reports |P(n)| as it goes.
//
// What:
//
//   - Engine.Step runs one generation transition single-threadedly.
//   - Engine.StepParallel partitions the current generation across a
//     bounded worker pool, merging goroutine-local results into the
//     shared dedup.Set — opt-in parallelism via workers > 1.
//   - Both preserve the same correctness property: after step n, the
//     next generation's cardinality is exactly |P(n+1)|.
//
// Complexity: one Step over a generation of size m touches, worst case,
// O(m * candidates-per-parent) Extender children, each canonicalized in
// O(24*volume) and inserted in O(1) expected.
//
// Grounded on the enumerator's classic seed/generate/swap/clear/report
// main loop, and on a mutex-guarded mutable-state struct behind a small
// method surface, adapted here to own two dedup.Sets instead of
// vertex/edge maps.
package engine
