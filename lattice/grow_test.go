package lattice_test

import (
	"testing"

	"github.com/katalvlaran/polycube/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGrowToFit_NegativeFace verifies growth on the negative face
// translates existing cells by the computed offset.
func TestGrowToFit_NegativeFace(t *testing.T) {
	s := buildShape(t, 1, 1, 1, [][3]int{{0, 0, 0}})
	grown := s.GrowToFit(-1, 0, 0)

	require.Equal(t, 2, grown.Width)
	require.Equal(t, 1, grown.Height)
	require.Equal(t, 1, grown.Depth)

	// original cell (0,0,0) translated to (1,0,0)
	assert.True(t, grown.Get(1, 0, 0))
	assert.False(t, grown.Get(0, 0, 0))
}

// TestGrowToFit_PositiveFace verifies growth on the positive face does not
// translate existing cells.
func TestGrowToFit_PositiveFace(t *testing.T) {
	s := buildShape(t, 1, 1, 1, [][3]int{{0, 0, 0}})
	grown := s.GrowToFit(1, 0, 0)

	require.Equal(t, 2, grown.Width)
	assert.True(t, grown.Get(0, 0, 0))
	assert.False(t, grown.Get(1, 0, 0))
}

// TestGrowToFit_NoSlack verifies growth never pads a face that the target
// coordinate doesn't require (P5's "no other cells are true" half implies
// no spurious dimension growth either).
func TestGrowToFit_NoSlack(t *testing.T) {
	s := buildShape(t, 2, 2, 2, [][3]int{{0, 0, 0}})
	grown := s.GrowToFit(1, 1, 1) // already in bounds
	assert.Equal(t, 2, grown.Width)
	assert.Equal(t, 2, grown.Height)
	assert.Equal(t, 2, grown.Depth)
}

// TestGrowToFit_PreservesExistingCells verifies that every
// originally-set cell survives growth at its translated coordinate, and no
// other cell becomes set.
func TestGrowToFit_PreservesExistingCells(t *testing.T) {
	s := buildShape(t, 2, 2, 2, [][3]int{{0, 0, 0}, {1, 1, 0}})
	grown := s.GrowToFit(-1, -1, 2)

	require.Equal(t, 3, grown.Width)
	require.Equal(t, 3, grown.Height)
	require.Equal(t, 3, grown.Depth)

	assert.Equal(t, 2, grown.Popcount())
	assert.True(t, grown.Get(1, 1, 0))
	assert.True(t, grown.Get(2, 2, 0))
}
