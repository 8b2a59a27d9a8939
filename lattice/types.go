package lattice

// Shape is a fixed-size 3D boolean lattice. A cell at (x,y,z) with
// 0<=x<Width, 0<=y<Height, 0<=z<Depth maps to Data[(x*Height+y)*Depth+z].
// This layout is fixed: equality and canonical ordering both depend on it.
//
// Two Shapes are equal iff they share (Width, Height, Depth) and Data is
// element-wise identical. Zero value is not valid; construct via New.
type Shape struct {
	Width, Height, Depth int
	Data                 []bool
}

// New returns a Width*Height*Depth Shape with every cell false.
// Requires width, height, depth >= 1.
func New(width, height, depth int) (*Shape, error) {
	if width < 1 || height < 1 || depth < 1 {
		return nil, ErrNonPositiveDimension
	}

	return &Shape{
		Width:  width,
		Height: height,
		Depth:  depth,
		Data:   make([]bool, width*height*depth),
	}, nil
}

// index maps (x,y,z) to its position in Data. Caller is responsible for
// bounds; see IsInside.
func (s *Shape) index(x, y, z int) int {
	return (x*s.Height+y)*s.Depth + z
}

// Get returns the cell at (x,y,z). Unchecked: caller must ensure
// IsInside(x,y,z) first.
func (s *Shape) Get(x, y, z int) bool {
	return s.Data[s.index(x, y, z)]
}

// Set writes v to the cell at (x,y,z). Unchecked: caller must ensure
// IsInside(x,y,z) first.
func (s *Shape) Set(x, y, z int, v bool) {
	s.Data[s.index(x, y, z)] = v
}

// IsInside reports whether (x,y,z) lies within this Shape's bounds.
func (s *Shape) IsInside(x, y, z int) bool {
	return x >= 0 && x < s.Width && y >= 0 && y < s.Height && z >= 0 && z < s.Depth
}

// Volume returns Width*Height*Depth, the length of Data.
func (s *Shape) Volume() int {
	return s.Width * s.Height * s.Depth
}

// reset grows Data to exactly volume elements, reusing the backing array
// when it already has enough capacity. Dimensions are left untouched;
// callers that use reset for buffer reuse (package canon) always set
// Width/Height/Depth immediately afterward.
func (s *Shape) reset(volume int) {
	if cap(s.Data) >= volume {
		s.Data = s.Data[:volume]
	} else {
		s.Data = make([]bool, volume)
	}
}

// Clone returns an independent copy of s.
func (s *Shape) Clone() *Shape {
	dst := &Shape{Width: s.Width, Height: s.Height, Depth: s.Depth, Data: make([]bool, len(s.Data))}
	copy(dst.Data, s.Data)

	return dst
}

// CloneInto copies s's dimensions and data into dst, growing dst's backing
// array only if needed. dst is a scratch buffer owned by the caller;
// it must not be aliased with s or with any Shape that persists beyond the
// caller's own scope (see package canon).
func (s *Shape) CloneInto(dst *Shape) {
	dst.reset(len(s.Data))
	dst.Width, dst.Height, dst.Depth = s.Width, s.Height, s.Depth
	copy(dst.Data, s.Data)
}

// Popcount returns the number of set cells.
func (s *Shape) Popcount() int {
	n := 0
	for _, v := range s.Data {
		if v {
			n++
		}
	}

	return n
}
