package engine

import (
	"sync"

	"github.com/katalvlaran/polycube/canon"
	"github.com/katalvlaran/polycube/dedup"
	"github.com/katalvlaran/polycube/extend"
	"github.com/katalvlaran/polycube/lattice"
)

// Engine holds the current generation of canonical Shapes and advances it
// one generation at a time. The zero value is not usable; construct with
// New.
type Engine struct {
	current *dedup.Set
	next    *dedup.Set
	gen     int
	canon   *canon.Canonicalizer
}

// New returns an Engine seeded with generation 1: the single 1x1x1 Shape
// with its one cell set, representing the lone free monomino.
func New() *Engine {
	seed, err := lattice.New(1, 1, 1)
	if err != nil {
		// lattice.New(1,1,1) can only fail for non-positive dimensions,
		// which these are not.
		panic("engine: seed construction failed: " + err.Error())
	}
	seed.Set(0, 0, 0, true)

	current := dedup.NewSet()
	current.Insert(seed)

	return &Engine{
		current: current,
		next:    dedup.NewSet(),
		gen:     1,
		canon:   canon.New(),
	}
}

// Generation returns the index of the generation currently held, starting
// at 1.
func (e *Engine) Generation() int {
	return e.gen
}

// Count returns the number of distinct Shapes in the current generation —
// the term of OEIS A000162 at index e.Generation().
func (e *Engine) Count() int {
	return e.current.Len()
}

// Step extends and canonicalizes every Shape in the current generation,
// deduplicates the results into the next generation, then swaps the two so
// Generation and Count reflect the new generation. Returns the new Count.
//
// After Step, the set held as current contains exactly one representative
// per rotation-equivalence class reachable by adding one face-connected
// cell to some member of the previous generation.
func (e *Engine) Step() int {
	e.current.Each(func(parent *lattice.Shape) {
		extend.Each(parent, func(child *lattice.Shape) {
			e.next.Insert(e.canon.Canonicalize(child))
		})
	})

	e.current, e.next = e.next, e.current
	e.next.Clear()
	e.gen++

	return e.current.Len()
}

// StepParallel is Step's bounded-worker-pool counterpart: it partitions the
// current generation's Shapes into workers roughly-equal shards, extends
// and canonicalizes each shard on its own goroutine with its own
// Canonicalizer (a Canonicalizer is not safe for concurrent use), and
// merges each shard's goroutine-local dedup.Set into the next generation
// before swapping. workers <= 1 runs Step directly. Produces the same
// generation Step would for the same starting state, modulo which
// rotation-equivalent representative a Shape's bucket happens to retain —
// the population is identical, only which canonically-equal pointer survives
// in a bucket may differ, and that pointer never changes membership as
// observed by Count.
func (e *Engine) StepParallel(workers int) int {
	if workers <= 1 {
		return e.Step()
	}

	var parents []*lattice.Shape
	e.current.Each(func(s *lattice.Shape) {
		parents = append(parents, s)
	})
	if len(parents) == 0 {
		e.current, e.next = e.next, e.current
		e.next.Clear()
		e.gen++

		return e.current.Len()
	}

	shardSize := (len(parents) + workers - 1) / workers
	partials := make([]*dedup.Set, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * shardSize
		if start >= len(parents) {
			partials[w] = dedup.NewSet()
			continue
		}
		end := start + shardSize
		if end > len(parents) {
			end = len(parents)
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			local := dedup.NewSet()
			localCanon := canon.New()
			for _, parent := range parents[start:end] {
				extend.Each(parent, func(child *lattice.Shape) {
					local.Insert(localCanon.Canonicalize(child))
				})
			}
			partials[w] = local
		}(w, start, end)
	}
	wg.Wait()

	for _, partial := range partials {
		partial.Each(func(s *lattice.Shape) {
			e.next.Insert(s)
		})
	}

	e.current, e.next = e.next, e.current
	e.next.Clear()
	e.gen++

	return e.current.Len()
}

// Shapes returns a snapshot slice of the current generation's members, for
// callers that need to render or inspect individual Shapes (e.g. the
// cmd/polycubes driver's verbose mode).
func (e *Engine) Shapes() []*lattice.Shape {
	var out []*lattice.Shape
	e.current.Each(func(s *lattice.Shape) {
		out = append(out, s)
	})

	return out
}
