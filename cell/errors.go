package cell

import "errors"

// ErrMissingEntranceTime indicates EntranceTime was called on a cell that
// was synthesised without one (a boundary element), or that
// SortByEntranceTime was asked to order a slice containing such a cell.
var ErrMissingEntranceTime = errors.New("cell: missing entrance time")
