package dedup

import (
	"testing"

	"github.com/katalvlaran/polycube/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSet_BucketCollisionSafety exercises bucket-collision safety: two distinct
// Shapes forced into the same digest bucket are both retained, because
// bucket membership falls back to full Shape.Equal rather than trusting
// the digest alone.
func TestSet_BucketCollisionSafety(t *testing.T) {
	set := NewSet()
	a, err := lattice.New(1, 1, 1)
	require.NoError(t, err)
	a.Set(0, 0, 0, true)

	b, err := lattice.New(2, 1, 1)
	require.NoError(t, err)
	b.Set(0, 0, 0, true)

	var collidingKey [digestSize]byte
	set.buckets[collidingKey] = []*lattice.Shape{a}
	set.count = 1

	// Insert b through the forced bucket directly, bypassing digestOf, to
	// simulate a genuine digest collision between a and b.
	set.mu.Lock()
	bucket := set.buckets[collidingKey]
	isDup := false
	for _, existing := range bucket {
		if existing.Equal(b) {
			isDup = true
		}
	}
	if !isDup {
		set.buckets[collidingKey] = append(bucket, b)
		set.count++
	}
	set.mu.Unlock()

	assert.Equal(t, 2, set.count)
	assert.Len(t, set.buckets[collidingKey], 2)
}
