package twopath

import (
	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
)

// TwoPath is a directed two-path source->mid->end present in an edge map,
// together with its path time: max(E[source][mid], E[mid][end]).
type TwoPath struct {
	Source, Mid, End digraph.NodeIndex
	PathTime         digraph.Time
}

// bridgeEntry is one midpoint contributing to a bridge group, together
// with the entrance time of that contribution.
type bridgeEntry struct {
	Mid digraph.NodeIndex
	T   digraph.Time
}

// fold is the thread-local accumulator each classification worker builds
// independently before merge combines them: immediate cells ready for
// the basis, and bridges collected by endpoint pair for later
// resolution.
type fold struct {
	cols    []cell.Cell
	bridges map[digraph.Endpoints][]bridgeEntry
}

func newFold() fold {
	return fold{bridges: make(map[digraph.Endpoints][]bridgeEntry)}
}

// merge combines two fold accumulators, concatenating cols and extending
// the bridge list at each shared endpoint key.
func merge(a, b fold) fold {
	a.cols = append(a.cols, b.cols...)
	for k, v := range b.bridges {
		if existing, ok := a.bridges[k]; ok {
			a.bridges[k] = append(existing, v...)
		} else {
			a.bridges[k] = v
		}
	}
	return a
}
