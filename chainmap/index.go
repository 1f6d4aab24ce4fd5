package chainmap

import (
	"runtime"
	"sync"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
	"golang.org/x/sync/errgroup"
)

// Index is a multi-map over a codomain basis answering "which cell
// realises this image two-path?" queries. It borrows the basis it was
// built from: it stores indices into that slice, never copies of the
// cells, and must not outlive it.
type Index struct {
	nodes       map[digraph.NodeIndex]int
	edges       map[digraph.Endpoints]int
	doubleEdges map[digraph.Endpoints]int
	triangles   map[digraph.Triple]int
	longSquares map[digraph.Triple]int // keyed by (i, w, k), w the non-base midpoint
	bases       map[digraph.Endpoints]digraph.NodeIndex
}

func newIndex() *Index {
	return &Index{
		nodes:       make(map[digraph.NodeIndex]int),
		edges:       make(map[digraph.Endpoints]int),
		doubleEdges: make(map[digraph.Endpoints]int),
		triangles:   make(map[digraph.Triple]int),
		longSquares: make(map[digraph.Triple]int),
		bases:       make(map[digraph.Endpoints]digraph.NodeIndex),
	}
}

func (idx *Index) insert(i int, c cell.Cell) {
	switch c.Kind() {
	case cell.KindNode:
		idx.nodes[c.Node()] = i
	case cell.KindEdge:
		s, t := c.Edge()
		idx.edges[digraph.Endpoints{From: s, To: t}] = i
	case cell.KindDoubleEdge:
		p, q := c.DoubleEdge()
		idx.doubleEdges[digraph.Endpoints{From: p, To: q}] = i
	case cell.KindTriangle:
		a, b, d := c.Triangle()
		idx.triangles[digraph.Triple{A: a, B: b, C: d}] = i
	case cell.KindLongSquare:
		from, u, w, to := c.LongSquare()
		idx.longSquares[digraph.Triple{A: from, B: w, C: to}] = i
		idx.bases[digraph.Endpoints{From: from, To: to}] = u
	}
}

func mergeIndex(dst, src *Index) {
	for k, v := range src.nodes {
		dst.nodes[k] = v
	}
	for k, v := range src.edges {
		dst.edges[k] = v
	}
	for k, v := range src.doubleEdges {
		dst.doubleEdges[k] = v
	}
	for k, v := range src.triangles {
		dst.triangles[k] = v
	}
	for k, v := range src.longSquares {
		dst.longSquares[k] = v
	}
	for k, v := range src.bases {
		dst.bases[k] = v
	}
}

// BuildIndex builds an Index over codomain. The basis is sharded across
// runtime.GOMAXPROCS(0) workers, each building a local Index over its
// shard; the shards are then merged under a mutex into the result (R2:
// Go's ecosystem has no pack-sourced concurrent-map equivalent to the
// original per-key-locked map, so the parallel-build step is a sharded
// build followed by a sequential merge rather than concurrent writes into
// one shared structure).
func BuildIndex(codomain []cell.Cell) (*Index, error) {
	n := len(codomain)
	result := newIndex()
	if n == 0 {
		return result, nil
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}
	chunk := (n + workers - 1) / workers

	var mu sync.Mutex
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= n {
			break
		}
		end := start + chunk
		if end > n {
			end = n
		}
		start, end := start, end
		g.Go(func() error {
			local := newIndex()
			for i := start; i < end; i++ {
				local.insert(i, codomain[i])
			}
			mu.Lock()
			mergeIndex(result, local)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
