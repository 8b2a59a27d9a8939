package canon

import "errors"

// ErrDimensionMismatch indicates a rotation produced a Data length other
// than the source's Width*Height*Depth. The 24-rotation enumeration is
// statically correct by construction and never raises this on the
// enumeration hot path; ValidateRotationClosure exists for tests.
var ErrDimensionMismatch = errors.New("canon: rotation changed lattice volume")
