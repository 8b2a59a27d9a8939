// Package dedup implements the generation-deduplicating set: a
// set of lattice.Shapes deduplicating by Shape.Equal, used by package
// engine to hold one generation of canonical polycubes at a time.
//
// What:
//
//   - Set buckets members by a BLAKE2b-256 digest over (Width, Height,
//     Depth, Data) — a superset of the fields Shape.Equal compares — so
//     hash and equality stay consistent by construction: the digest
//     covers every field Shape.Equal compares.
//   - Digest collisions (vanishingly unlikely at 256 bits, but not
//     impossible) never corrupt membership: each bucket is a short chain
//     of Shapes verified by full Shape.Equal before being treated as a
//     duplicate.
//   - A single sync.RWMutex guards the bucket map, one lock per
//     logically-independent piece of mutable state rather than a single
//     global lock shared across unrelated concerns.
//
// Complexity: Insert is O(1) expected plus O(bucket length) equality
// checks (bucket length is 1 in the overwhelming common case). Len is
// O(1). Each is O(n).
//
// Grounded on github.com/gtank/blake2's blake2b.Digest for hashing, and on
// a mutex-guarded nested-map idiom
// (adjacencyList[from][to][edgeID]=struct{}{}) for the bucket-of-entries
// shape, adapted here as bucket-of-Shapes-with-equality-fallback rather
// than bucket-of-distinct-IDs.
package dedup
