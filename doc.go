// Package polycube enumerates free polycubes — equivalence classes of
// face-connected unit cubes on the integer lattice, up to the 24 proper
// rotations of the cube (OEIS A000162) — and exposes the building blocks
// for driving that enumeration generation by generation.
//
// What:
//
//	A small set of focused subpackages, each owning one stage of the
//	pipeline:
//
//	  • lattice/ — the dense 3D boolean Shape, its rotations, growth,
//	    connectivity, and diagnostic rendering.
//	  • canon/   — reduces a Shape to its rotation-canonical representative.
//	  • extend/  — generates every size-(n+1) candidate child of a Shape.
//	  • dedup/   — a BLAKE2b-bucketed set of Shapes, deduplicating by
//	    Shape.Equal.
//	  • engine/  — drives the generation-by-generation sweep, single- or
//	    multi-threaded, reporting |P(n)| as it advances.
//
// Why:
//
//	Splitting canonicalization, child generation, deduplication, and the
//	outer loop into separate packages keeps each piece independently
//	testable against the small, well-known polycube counts (1, 1, 2, 8,
//	29, 166, 1023, 6922, ...) without coupling them to a driver or a CLI.
//
// The cmd/polycubes command wires these packages into a runnable
// enumerator: see cmd/polycubes/main.go.
//
//	go get github.com/katalvlaran/polycube
package polycube
