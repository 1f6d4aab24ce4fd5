package twopath

import (
	"math"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
)

// FlagTwoCells returns the 2-cells of the directed flag complex variant:
// for every two-path (s, m, e) with s != e whose chord s->e exists at any
// time (not necessarily at or before the path's own time, unlike the RPH
// classifier), it emits Triangle(s, m, e) entering at
// max(pathTime, chordTime). Two-paths whose chord never enters the
// filtration (chordTime == +Inf) contribute no cell. The result is sorted
// ascending by entrance time.
//
// This is a simpler sibling of Classify sharing Enumerate's two-path
// walk: the distilled RPH classifier treats a late chord as a bridge
// needing resolution, while the flag complex admits any chord, however
// late, as long as it is finite.
func FlagTwoCells(raw digraph.RawEdgeMap, paths []TwoPath) []cell.Cell {
	cols := make([]cell.Cell, 0, len(paths))
	for _, p := range paths {
		if p.Source == p.End {
			continue
		}
		chordTime := raw.Time(p.Source, p.End)
		entranceTime := p.PathTime
		if chordTime > entranceTime {
			entranceTime = chordTime
		}
		if math.IsInf(entranceTime, 1) {
			continue
		}
		cols = append(cols, cell.NewTriangle(p.Source, p.Mid, p.End, entranceTime))
	}
	_ = cell.SortByEntranceTime(cols)
	return cols
}
