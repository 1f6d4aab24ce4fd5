package sparsify

import "errors"

// ErrUnknownBoundaryCell is returned when a cell's boundary references a
// cell absent from the basis being sparsified — a basis that is not
// closed under its own boundary operator.
var ErrUnknownBoundaryCell = errors.New("sparsify: boundary cell not found in basis")
