package lattice

// RotateX returns a new Shape rotated 90 degrees about the x-axis.
// Dimensions become (Width, Depth, Height); cell (x,y,z) of s becomes
// cell (x, Depth-1-z, y) of the result. Applying RotateX four times
// yields a Shape equal to the original.
func (s *Shape) RotateX() *Shape {
	dst := &Shape{Data: make([]bool, len(s.Data))}
	s.RotateXInto(dst)

	return dst
}

// RotateY returns a new Shape rotated 90 degrees about the y-axis.
// Dimensions become (Depth, Height, Width); cell (x,y,z) of s becomes
// cell (z, y, Width-1-x) of the result.
func (s *Shape) RotateY() *Shape {
	dst := &Shape{Data: make([]bool, len(s.Data))}
	s.RotateYInto(dst)

	return dst
}

// RotateZ returns a new Shape rotated 90 degrees about the z-axis.
// Dimensions become (Height, Width, Depth); cell (x,y,z) of s becomes
// cell (Height-1-y, x, z) of the result.
func (s *Shape) RotateZ() *Shape {
	dst := &Shape{Data: make([]bool, len(s.Data))}
	s.RotateZInto(dst)

	return dst
}

// RotateXInto writes s rotated about the x-axis into dst, growing dst's
// backing array if needed. dst must not alias s. The *Into forms let a
// caller ping-pong between two scratch buffers without allocating per
// rotation; package canon does this with RotateZInto for its z-spins.
func (s *Shape) RotateXInto(dst *Shape) {
	dst.reset(len(s.Data))
	dst.Width, dst.Height, dst.Depth = s.Width, s.Depth, s.Height

	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			for z := 0; z < s.Depth; z++ {
				nx, ny, nz := x, s.Depth-1-z, y
				dst.Data[dst.index(nx, ny, nz)] = s.Data[s.index(x, y, z)]
			}
		}
	}
}

// RotateYInto writes s rotated about the y-axis into dst. See RotateXInto.
func (s *Shape) RotateYInto(dst *Shape) {
	dst.reset(len(s.Data))
	dst.Width, dst.Height, dst.Depth = s.Depth, s.Height, s.Width

	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			for z := 0; z < s.Depth; z++ {
				nx, ny, nz := z, y, s.Width-1-x
				dst.Data[dst.index(nx, ny, nz)] = s.Data[s.index(x, y, z)]
			}
		}
	}
}

// RotateZInto writes s rotated about the z-axis into dst. See RotateXInto.
func (s *Shape) RotateZInto(dst *Shape) {
	dst.reset(len(s.Data))
	dst.Width, dst.Height, dst.Depth = s.Height, s.Width, s.Depth

	for x := 0; x < s.Width; x++ {
		for y := 0; y < s.Height; y++ {
			for z := 0; z < s.Depth; z++ {
				nx, ny, nz := s.Height-1-y, x, z
				dst.Data[dst.index(nx, ny, nz)] = s.Data[s.index(x, y, z)]
			}
		}
	}
}
