package canon

import "github.com/katalvlaran/polycube/lattice"

// Canonicalizer reduces Shapes to their rotation-canonical form. The zero
// value is ready to use. A Canonicalizer is not safe for concurrent use —
// package engine gives each worker its own Canonicalizer (see
// engine.Engine.StepParallel).
type Canonicalizer struct {
	cur, nxt, best lattice.Shape
	haveBest       bool
}

// New returns a ready-to-use Canonicalizer.
func New() *Canonicalizer {
	return &Canonicalizer{}
}

// Canonicalize returns the lexicographically minimum Shape across the
// 24-element proper rotation group of the cube applied to s — the unique
// representative of s's rotation-equivalence class. The returned Shape is
// independent of s and of the Canonicalizer's internal scratch buffers, so
// it may be retained (e.g. inserted into a dedup.Set) across calls.
//
// The 24 rotations are enumerated as 6 face orientations (obtained by 0..3
// x-rotations or a single y-rotation in either direction from s) times 4
// z-rotations of each, per spec's "SHOULD be 24" construction — not the
// 2x4x4 over-enumeration of the original Rust source.
func (c *Canonicalizer) Canonicalize(s *lattice.Shape) *lattice.Shape {
	c.haveBest = false

	x1 := s.RotateX()
	x2 := x1.RotateX()
	x3 := x2.RotateX()
	y1 := s.RotateY()
	y2 := y1.RotateY()
	y3 := y2.RotateY()
	faceOrientations := [6]*lattice.Shape{s, x1, x2, x3, y1, y3}

	for _, orientation := range faceOrientations {
		orientation.CloneInto(&c.cur)
		for spin := 0; spin < 4; spin++ {
			c.consider(&c.cur)
			if spin < 3 {
				c.cur.RotateZInto(&c.nxt)
				c.cur, c.nxt = c.nxt, c.cur
			}
		}
	}

	return c.best.Clone()
}

// consider updates c.best if candidate sorts strictly before the current
// best, per lattice.Shape.Less's lazy, first-difference comparison.
func (c *Canonicalizer) consider(candidate *lattice.Shape) {
	if !c.haveBest || candidate.Less(&c.best) {
		candidate.CloneInto(&c.best)
		c.haveBest = true
	}
}

// ValidateRotationClosure recomputes all 24 rotations of s and confirms
// each has the same Data length as s (dimensions are merely permuted, so
// Width*Height*Depth is a rotation invariant). It is a consistency check
// for tests, not used on the enumeration hot path.
func ValidateRotationClosure(s *lattice.Shape) error {
	volume := s.Volume()

	x1 := s.RotateX()
	x2 := x1.RotateX()
	x3 := x2.RotateX()
	y1 := s.RotateY()
	y2 := y1.RotateY()
	y3 := y2.RotateY()

	for _, r := range []*lattice.Shape{s, x1, x2, x3, y1, y2, y3} {
		for spin, cur := 0, r; spin < 4; spin++ {
			if cur.Volume() != volume {
				return ErrDimensionMismatch
			}
			cur = cur.RotateZ()
		}
	}

	return nil
}
