package sparsify

// SparseColumn is one column of a sparse boundary matrix: a cell's
// dimension together with the ascending, strictly-lesser-index list of
// its boundary cells' positions in the basis it was sparsified from.
type SparseColumn struct {
	Dim      int
	Boundary []int
}
