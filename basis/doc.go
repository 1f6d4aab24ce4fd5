// Package basis assembles the sorted cellular basis of an RPH chain
// complex from a digraph.EdgeMap: Assemble2 runs the two-path
// enumeration/classification/bridge-resolution pipeline (package twopath)
// and sorts its output by entrance time (package cell); Assemble01 builds
// the 0- and 1-skeleton directly from the edge map's vertices and edges.
// The two producers are independent and composable, per the distilled
// spec; Assemble concatenates them for callers who want a complete basis.
package basis
