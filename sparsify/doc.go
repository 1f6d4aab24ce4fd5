// Package sparsify converts a sorted cellular basis into the sparse
// (dimension, boundary-index-list) column form a downstream persistence
// decomposer consumes. Sparsify builds the cell-to-index map
// incrementally as it walks the basis; Parallel fans the same
// computation out one dimension-wave at a time, inserting each wave's
// cells into the shared lookup only once every boundary in that wave has
// been resolved against the previous waves.
package sparsify
