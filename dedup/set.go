package dedup

import (
	"encoding/binary"
	"sync"

	"github.com/gtank/blake2/blake2b"

	"github.com/katalvlaran/polycube/lattice"
)

// digestSize is the BLAKE2b output length used for bucket keys.
const digestSize = 32

// Set is a deduplicating collection of *lattice.Shape, keyed by Shape
// equality. Created empty at the start of each generation step,
// populated during the step, iterated to drive the next step, then
// discarded. The zero value is not usable; construct with NewSet.
type Set struct {
	mu      sync.RWMutex
	buckets map[[digestSize]byte][]*lattice.Shape
	count   int
}

// NewSet returns an empty Set.
func NewSet() *Set {
	return &Set{buckets: make(map[[digestSize]byte][]*lattice.Shape)}
}

// Insert adds s to the set if no equal Shape is already present. Reports
// whether s was newly inserted. Safe for concurrent use.
func (set *Set) Insert(s *lattice.Shape) bool {
	key := digestOf(s)

	set.mu.Lock()
	defer set.mu.Unlock()

	bucket := set.buckets[key]
	for _, existing := range bucket {
		if existing.Equal(s) {
			return false
		}
	}
	set.buckets[key] = append(bucket, s)
	set.count++

	return true
}

// Clear resets the set to empty, discarding all members. The backing map
// is reallocated, mirroring core.Graph.Clear's reset-maps-preserve-nothing
// semantics (there is no configuration to preserve here).
func (set *Set) Clear() {
	set.mu.Lock()
	defer set.mu.Unlock()

	set.buckets = make(map[[digestSize]byte][]*lattice.Shape)
	set.count = 0
}

// Len returns the number of distinct Shapes in the set.
func (set *Set) Len() int {
	set.mu.RLock()
	defer set.mu.RUnlock()

	return set.count
}

// Each invokes fn once per member. fn must not call back into set.
func (set *Set) Each(fn func(*lattice.Shape)) {
	set.mu.RLock()
	defer set.mu.RUnlock()

	for _, bucket := range set.buckets {
		for _, s := range bucket {
			fn(s)
		}
	}
}

// digestOf computes the BLAKE2b-256 digest of s's dimensions and data —
// a superset of the fields Shape.Equal compares, so equal digests imply
// candidates worth comparing and unequal Shapes never silently collapse.
func digestOf(s *lattice.Shape) [digestSize]byte {
	digest, err := blake2b.NewDigest(nil, nil, nil, digestSize)
	if err != nil {
		// NewDigest only fails for a bad key/salt/personalization or an
		// out-of-range output size; all four arguments here are fixed
		// and valid, so this is unreachable outside a broken build.
		panic("dedup: blake2b.NewDigest failed with fixed arguments: " + err.Error())
	}

	var header [24]byte
	binary.LittleEndian.PutUint64(header[0:8], uint64(s.Width))
	binary.LittleEndian.PutUint64(header[8:16], uint64(s.Height))
	binary.LittleEndian.PutUint64(header[16:24], uint64(s.Depth))
	_, _ = digest.Write(header[:])
	_, _ = digest.Write(packBits(s.Data))

	var key [digestSize]byte
	copy(key[:], digest.Sum(nil))

	return key
}

// packBits bit-packs data, eight cells per byte, so the digest input
// scales with Width*Height*Depth bits rather than bytes.
func packBits(data []bool) []byte {
	out := make([]byte, (len(data)+7)/8)
	for i, v := range data {
		if v {
			out[i/8] |= 1 << uint(i%8)
		}
	}

	return out
}
