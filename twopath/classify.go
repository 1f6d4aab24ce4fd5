package twopath

import (
	"runtime"
	"sort"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
	"golang.org/x/sync/errgroup"
)

// Classify splits paths into immediate 2-cells (DoubleEdge, Triangle) and
// bridges, then resolves every bridge group into one collapsing Triangle
// plus a chain of LongSquare cells. The result is the complete, unsorted
// set of 2-cells; package basis sorts them into a filtration-ordered
// basis.
//
// Per two-path (s, m, e, t):
//
//  1. s == e            -> immediate DoubleEdge(s, m) at time t.
//  2. raw.Time(s,e) <= t -> immediate Triangle(s, m, e) at time t.
//  3. otherwise          -> a bridge recorded under endpoints (s, e),
//     resolved below once every two-path has been classified.
//
// Classification fans out across runtime.GOMAXPROCS(0) errgroup workers,
// each folding its shard of paths into a thread-local fold accumulator;
// the accumulators are merged sequentially afterwards (merge).
func Classify(raw digraph.RawEdgeMap, paths []TwoPath) []cell.Cell {
	if len(paths) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(paths) {
		workers = len(paths)
	}
	if workers < 1 {
		workers = 1
	}

	folds := make([]fold, workers)
	var g errgroup.Group
	chunk := (len(paths) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if lo > len(paths) {
			lo = len(paths)
		}
		if hi > len(paths) {
			hi = len(paths)
		}
		shard := paths[lo:hi]
		g.Go(func() error {
			folds[w] = classifyShard(raw, shard)
			return nil
		})
	}
	_ = g.Wait()

	merged := newFold()
	for _, f := range folds {
		merged = merge(merged, f)
	}

	cols := merged.cols
	for endpoints, bridges := range merged.bridges {
		cols = append(cols, resolveBridges(raw, endpoints, bridges)...)
	}
	return cols
}

func classifyShard(raw digraph.RawEdgeMap, paths []TwoPath) fold {
	acc := newFold()
	for _, p := range paths {
		switch {
		case p.Source == p.End:
			acc.cols = append(acc.cols, cell.NewDoubleEdge(p.Source, p.Mid, p.PathTime))
		case raw.Time(p.Source, p.End) <= p.PathTime:
			acc.cols = append(acc.cols, cell.NewTriangle(p.Source, p.Mid, p.End, p.PathTime))
		default:
			key := digraph.Endpoints{From: p.Source, To: p.End}
			acc.bridges[key] = append(acc.bridges[key], bridgeEntry{Mid: p.Mid, T: p.PathTime})
		}
	}
	return acc
}

// resolveBridges turns one endpoint pair's bridge list into one collapsing
// Triangle (from the earliest bridge, the family's base) plus one
// LongSquare per remaining bridge. Ties in entrance time are broken by
// ascending midpoint index, a pinned, deterministic tie-break.
func resolveBridges(raw digraph.RawEdgeMap, endpoints digraph.Endpoints, bridges []bridgeEntry) []cell.Cell {
	sorted := append([]bridgeEntry(nil), bridges...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].T != sorted[j].T {
			return sorted[i].T < sorted[j].T
		}
		return sorted[i].Mid < sorted[j].Mid
	})

	base := sorted[0]
	collapseTime := raw.Time(endpoints.From, endpoints.To)
	out := make([]cell.Cell, 0, len(sorted))
	out = append(out, cell.NewTriangle(endpoints.From, base.Mid, endpoints.To, collapseTime))
	for _, br := range sorted[1:] {
		out = append(out, cell.NewLongSquare(endpoints.From, base.Mid, br.Mid, endpoints.To, br.T))
	}
	return out
}
