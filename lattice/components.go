package lattice

// neighborOffsets3D enumerates the six face-adjacent directions in Z^3.
var neighborOffsets3D = [6][3]int{
	{-1, 0, 0}, {1, 0, 0},
	{0, -1, 0}, {0, 1, 0},
	{0, 0, -1}, {0, 0, 1},
}

// ConnectedComponents partitions the set cells of s into face-connected
// groups, each returned as a slice of flat Data indices. It is a
// diagnostic helper — not on the enumeration hot path — used by tests to
// verify that every extended child Shape is face-connected.
//
// Generalized from a 2D flood-fill over 4/8-connected grid indices to a 3D
// flood-fill over 6-connected lattice indices.
//
// Complexity: O(Width*Height*Depth).
func (s *Shape) ConnectedComponents() [][]int {
	total := len(s.Data)
	visited := make([]bool, total)
	var components [][]int

	for start := 0; start < total; start++ {
		if !s.Data[start] || visited[start] {
			continue
		}

		queue := []int{start}
		visited[start] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			idx := queue[qi]
			comp = append(comp, idx)
			x, y, z := s.coordinate(idx)

			for _, d := range neighborOffsets3D {
				nx, ny, nz := x+d[0], y+d[1], z+d[2]
				if !s.IsInside(nx, ny, nz) {
					continue
				}
				nIdx := s.index(nx, ny, nz)
				if visited[nIdx] || !s.Data[nIdx] {
					continue
				}
				visited[nIdx] = true
				queue = append(queue, nIdx)
			}
		}

		components = append(components, comp)
	}

	return components
}

// IsFaceConnected reports whether every set cell of s belongs to a single
// face-connected component. An empty Shape (no set cells) is vacuously
// connected.
func (s *Shape) IsFaceConnected() bool {
	comps := s.ConnectedComponents()
	if len(comps) == 0 {
		return true
	}

	return len(comps) == 1
}

// coordinate inverts index for a cell known to lie within s's bounds.
func (s *Shape) coordinate(idx int) (x, y, z int) {
	z = idx % s.Depth
	idx /= s.Depth
	y = idx % s.Height
	x = idx / s.Height

	return x, y, z
}
