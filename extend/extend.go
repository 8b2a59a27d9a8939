package extend

import "github.com/katalvlaran/polycube/lattice"

// neighborOffsets enumerates the six face-adjacent directions in Z^3.
var neighborOffsets = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// Each invokes yield once per candidate child Shape of s: every distinct
// Shape obtainable by setting one currently-unset cell that is
// face-adjacent to some set cell of s, including cells one step outside
// s's current bounding box on any face.
//
// Each allocates no intermediate slice; callers that need all children at
// once should use Children.
func Each(s *lattice.Shape, yield func(*lattice.Shape)) {
	for x := -1; x <= s.Width; x++ {
		for y := -1; y <= s.Height; y++ {
			for z := -1; z <= s.Depth; z++ {
				if !isCandidate(s, x, y, z) {
					continue
				}
				yield(childAt(s, x, y, z))
			}
		}
	}
}

// Children returns every candidate child Shape of s. See Each.
func Children(s *lattice.Shape) []*lattice.Shape {
	var out []*lattice.Shape
	Each(s, func(c *lattice.Shape) {
		out = append(out, c)
	})

	return out
}

// isCandidate reports whether (x,y,z) qualifies as a child cell: it is
// outside s's bounds, or inside and currently unset — and in either case
// has at least one in-bounds, set face neighbor.
func isCandidate(s *lattice.Shape, x, y, z int) bool {
	if s.IsInside(x, y, z) && s.Get(x, y, z) {
		return false
	}

	return hasSetNeighbor(s, x, y, z)
}

// hasSetNeighbor reports whether any of (x,y,z)'s six face neighbors lies
// inside s and is set.
func hasSetNeighbor(s *lattice.Shape, x, y, z int) bool {
	for _, d := range neighborOffsets {
		nx, ny, nz := x+d[0], y+d[1], z+d[2]
		if s.IsInside(nx, ny, nz) && s.Get(nx, ny, nz) {
			return true
		}
	}

	return false
}

// childAt builds the child Shape for a qualifying candidate cell,
// growing s first if the cell lies outside its current bounds.
func childAt(s *lattice.Shape, x, y, z int) *lattice.Shape {
	if s.IsInside(x, y, z) {
		child := s.Clone()
		child.Set(x, y, z, true)

		return child
	}

	grown := s.GrowToFit(x, y, z)
	grown.Set(clampNonNegative(x), clampNonNegative(y), clampNonNegative(z), true)

	return grown
}

// clampNonNegative returns v if v >= 0, else 0 — the grown Shape has
// already translated negative-face growth, so a negative candidate
// coordinate lands at 0 in the grown lattice.
func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}

	return v
}
