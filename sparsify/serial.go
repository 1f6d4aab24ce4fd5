package sparsify

import (
	"sort"

	"github.com/flowcomplex/rph/cell"
)

// Sparsify converts a sorted basis into its sparse boundary-matrix form.
// It walks the basis once, in order, assigning each cell an index and
// resolving its boundary cells' indices against every cell seen so far —
// a basis is always sparsified after it has been sorted by entrance time,
// so a cell's boundary (one dimension lower, entering no later) is
// guaranteed to already be indexed by the time it is needed.
func Sparsify(basis []cell.Cell) ([]SparseColumn, error) {
	index := make(map[cell.Key]int, len(basis))
	out := make([]SparseColumn, len(basis))
	for i, c := range basis {
		boundaryIdx, err := resolveBoundary(index, c)
		if err != nil {
			return nil, err
		}
		out[i] = SparseColumn{Dim: c.Dimension(), Boundary: boundaryIdx}
		index[c.Key()] = i
	}
	return out, nil
}

func resolveBoundary(index map[cell.Key]int, c cell.Cell) ([]int, error) {
	boundary := c.Boundary()
	if len(boundary) == 0 {
		return nil, nil
	}
	idx := make([]int, 0, len(boundary))
	for _, b := range boundary {
		i, ok := index[b.Key()]
		if !ok {
			return nil, ErrUnknownBoundaryCell
		}
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx, nil
}
