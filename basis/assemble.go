package basis

import (
	"sort"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
	"github.com/flowcomplex/rph/twopath"
)

// Assemble2 returns the 2-cell basis (DoubleEdge, Triangle, LongSquare)
// of em's RPH chain complex, sorted ascending by entrance time.
func Assemble2(em *digraph.EdgeMap) ([]cell.Cell, error) {
	raw := em.Snapshot()
	cols := twopath.Classify(raw, twopath.Enumerate(raw))
	if err := cell.SortByEntranceTime(cols); err != nil {
		return nil, err
	}
	return cols, nil
}

// Assemble01 returns the 0- and 1-skeleton of em: one Node per vertex, in
// ascending NodeIndex order, followed by one Edge per edge, sorted by
// (entrance time, source, target).
func Assemble01(em *digraph.EdgeMap) []cell.Cell {
	vertices := em.Vertices()
	out := make([]cell.Cell, 0, len(vertices))
	for _, v := range vertices {
		out = append(out, cell.NewNode(v, 0))
	}

	type edgeRow struct {
		s, t digraph.NodeIndex
		time digraph.Time
	}
	var edges []edgeRow
	for _, s := range vertices {
		for t, tm := range em.OutNeighbors(s) {
			edges = append(edges, edgeRow{s: s, t: t, time: tm})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].time != edges[j].time {
			return edges[i].time < edges[j].time
		}
		if edges[i].s != edges[j].s {
			return edges[i].s < edges[j].s
		}
		return edges[i].t < edges[j].t
	})
	for _, e := range edges {
		out = append(out, cell.NewEdge(e.s, e.t, e.time))
	}
	return out
}

// Assemble returns the complete basis: Assemble01 followed by Assemble2's
// 2-cells.
func Assemble(em *digraph.EdgeMap) ([]cell.Cell, error) {
	twoCells, err := Assemble2(em)
	if err != nil {
		return nil, err
	}
	out := Assemble01(em)
	out = append(out, twoCells...)
	return out, nil
}
