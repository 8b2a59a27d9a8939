package extend_test

import (
	"testing"

	"github.com/katalvlaran/polycube/extend"
	"github.com/katalvlaran/polycube/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shape(t *testing.T, w, h, d int, set [][3]int) *lattice.Shape {
	t.Helper()
	s, err := lattice.New(w, h, d)
	require.NoError(t, err)
	for _, c := range set {
		s.Set(c[0], c[1], c[2], true)
	}

	return s
}

// TestChildren_SingleCell_SixFaces verifies that extending the
// 1x1x1 seed yields exactly six candidate children, one per face.
func TestChildren_SingleCell_SixFaces(t *testing.T) {
	seed := shape(t, 1, 1, 1, [][3]int{{0, 0, 0}})
	children := extend.Children(seed)
	require.Len(t, children, 6)

	for _, c := range children {
		assert.Equal(t, 2, c.Popcount(), "each child should have popcount 2")
	}
}

// TestChildren_ClosurePopcount verifies that every child has
// exactly popcount(S)+1 set cells and is face-connected.
func TestChildren_ClosurePopcount(t *testing.T) {
	s := shape(t, 2, 1, 1, [][3]int{{0, 0, 0}, {1, 0, 0}})
	want := s.Popcount() + 1

	children := extend.Children(s)
	require.NotEmpty(t, children)
	for i, c := range children {
		assert.Equalf(t, want, c.Popcount(), "child %d popcount", i)
		assert.Truef(t, c.IsFaceConnected(), "child %d should be face-connected", i)
	}
}

// TestChildren_GrowthOutOfBounds verifies that candidates outside the
// current bounding box trigger GrowToFit: every child of the 1x1x1 seed is
// grown beyond the seed's box and holds two set cells.
func TestChildren_GrowthOutOfBounds(t *testing.T) {
	s := shape(t, 1, 1, 1, [][3]int{{0, 0, 0}})
	children := extend.Children(s)

	sawGrowthOnEachAxis := map[[3]int]bool{}
	for _, c := range children {
		sawGrowthOnEachAxis[[3]int{c.Width, c.Height, c.Depth}] = true
		assert.Equal(t, 2, c.Popcount())
	}
	// Six faces of a single cube: each axis grows to size 2 on either
	// side, so the grown dimension triples are (2,1,1), (1,2,1) and
	// (1,1,2) — no child retains the original 1x1x1 bounding box.
	for dims := range sawGrowthOnEachAxis {
		assert.NotEqual(t, [3]int{1, 1, 1}, dims)
	}
}

// TestChildren_NoSelfDuplication verifies the Extender does not deduplicate
// across siblings: distinct touching cells yield distinct (non-equal)
// children, even though some may later canonicalize to the same polycube.
func TestChildren_NoSelfDuplication(t *testing.T) {
	seed := shape(t, 1, 1, 1, [][3]int{{0, 0, 0}})
	children := extend.Children(seed)
	for i := range children {
		for j := range children {
			if i == j {
				continue
			}
			assert.Falsef(t, children[i].Equal(children[j]), "children %d and %d should differ", i, j)
		}
	}
}

func TestEach_MatchesChildren(t *testing.T) {
	s := shape(t, 2, 2, 1, [][3]int{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
	var viaEach []*lattice.Shape
	extend.Each(s, func(c *lattice.Shape) { viaEach = append(viaEach, c) })
	viaChildren := extend.Children(s)
	require.Equal(t, len(viaChildren), len(viaEach))
}
