// Package twopath enumerates every length-2 directed path in an edge map
// and classifies each one into an immediate 2-cell (DoubleEdge or
// Triangle) or a bridge — a two-path whose chord is not yet present,
// which contributes to a long-square family instead of a cell of its own.
//
// The pipeline runs in two stages:
//
//	Enumerate — flattens the edge map into every (source, mid, end) triple
//	            with an edge source->mid and an edge mid->end, fanned out
//	            across goroutines since every triple is independent.
//	Classify  — walks the enumerated two-paths (again fanned out, each
//	            worker folding into its own local accumulator), splitting
//	            them into immediate cells and bridges, then resolves every
//	            bridge group into one collapsing Triangle plus a chain of
//	            LongSquare cells.
//
// Classify's result is the complete, unsorted set of 2-cells; package
// basis sorts them into a filtration-ordered basis.
package twopath
