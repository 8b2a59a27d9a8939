package lattice

import "strings"

// String renders s for human debugging: Depth many Height x Width slices,
// each row a string of '1'/'0' cells, slices separated by a dash line of
// Width dashes, the whole block framed above by Width 'ˇ' markers and
// below by Width '^' markers. This rendering is diagnostic only and is
// not part of any data contract.
//
// Grounded on original_source/src/main.rs's Display impl for Bitfield3D,
// re-expressed with strings.Builder rather than transliterated.
func (s *Shape) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("ˇ", s.Width))
	b.WriteByte('\n')

	dashLine := strings.Repeat("-", s.Width)
	for z := 0; z < s.Depth; z++ {
		if z != 0 {
			b.WriteString(dashLine)
			b.WriteByte('\n')
		}
		for y := 0; y < s.Height; y++ {
			for x := 0; x < s.Width; x++ {
				if s.Get(x, y, z) {
					b.WriteByte('1')
				} else {
					b.WriteByte('0')
				}
			}
			b.WriteByte('\n')
		}
	}

	b.WriteString(strings.Repeat("^", s.Width))
	b.WriteByte('\n')

	return b.String()
}
