package twopath

import (
	"runtime"

	"github.com/flowcomplex/rph/digraph"
	"golang.org/x/sync/errgroup"
)

// Enumerate returns every directed two-path source->mid->end present in
// raw, each tagged with its path time: max(E[source][mid], E[mid][end]).
//
// A lazy, parallel-consumable iterator buys nothing here: Go's ecosystem
// carries no pack-sourced parallel-iterator equivalent, and the one
// consumer of this sequence (Classify) immediately folds the whole thing
// regardless, so Enumerate materializes eagerly: it shards the edge map's
// source vertices across runtime.GOMAXPROCS(0) errgroup workers, each
// walking its shard's out-neighbours and their out-neighbours in turn
// into a worker-local slice, concatenated at join time. Order across
// workers is unspecified; Classify's result does not depend on it.
func Enumerate(raw digraph.RawEdgeMap) []TwoPath {
	sources := make([]digraph.NodeIndex, 0, len(raw))
	for s := range raw {
		sources = append(sources, s)
	}
	if len(sources) == 0 {
		return nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(sources) {
		workers = len(sources)
	}
	if workers < 1 {
		workers = 1
	}

	shardResults := make([][]TwoPath, workers)
	var g errgroup.Group
	chunk := (len(sources) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		lo := w * chunk
		hi := lo + chunk
		if lo > len(sources) {
			lo = len(sources)
		}
		if hi > len(sources) {
			hi = len(sources)
		}
		shard := sources[lo:hi]
		g.Go(func() error {
			shardResults[w] = enumerateShard(raw, shard)
			return nil
		})
	}
	_ = g.Wait() // workers never return an error

	total := 0
	for _, s := range shardResults {
		total += len(s)
	}
	out := make([]TwoPath, 0, total)
	for _, s := range shardResults {
		out = append(out, s...)
	}
	return out
}

func enumerateShard(raw digraph.RawEdgeMap, sources []digraph.NodeIndex) []TwoPath {
	var out []TwoPath
	for _, s := range sources {
		for mid, firstHop := range raw[s] {
			for end, secondHop := range raw[mid] {
				t := firstHop
				if secondHop > t {
					t = secondHop
				}
				out = append(out, TwoPath{Source: s, Mid: mid, End: end, PathTime: t})
			}
		}
	}
	return out
}
