package sparsify

import (
	"runtime"
	"sort"
	"sync"

	"github.com/flowcomplex/rph/cell"
	"golang.org/x/sync/errgroup"
)

// Parallel is a dimension-wave sparsifier: cells at or below a configured
// maximum dimension are resolved one dimension at a time, each wave's
// boundaries computed concurrently against the index built from every
// earlier wave, before the wave's own cells are inserted into that index
// as a barrier ahead of the next wave. Cells above maxDim are skipped,
// not erred on.
type Parallel struct {
	maxDim int
}

// NewParallel returns a Parallel sparsifier bounded to maxDim. Only
// dimensions 0, 1 and 2 exist in this complex; any maxDim >= 2 admits the
// whole basis.
func NewParallel(maxDim int) *Parallel {
	return &Parallel{maxDim: maxDim}
}

// Sparsify runs the dimension-wave algorithm over basis. basis need not
// be pre-sorted by dimension; waves are formed by scanning for each
// dimension in turn, so cells may appear in any order as long as the
// basis is sorted by entrance time (cell boundaries never appear later
// in the basis, a precondition of both Sparsify and Parallel.Sparsify).
func (p *Parallel) Sparsify(basis []cell.Cell) ([]SparseColumn, error) {
	out := make([]SparseColumn, len(basis))

	var mu sync.RWMutex
	index := make(map[cell.Key]int, len(basis))

	workers := runtime.GOMAXPROCS(0)

	for dim := 0; dim <= p.maxDim; dim++ {
		var wave []int
		for i, c := range basis {
			if c.Dimension() == dim {
				wave = append(wave, i)
			}
		}
		if len(wave) == 0 {
			continue
		}

		sem := make(chan struct{}, workers)
		var g errgroup.Group
		for _, i := range wave {
			i := i
			sem <- struct{}{}
			g.Go(func() error {
				defer func() { <-sem }()
				boundary := basis[i].Boundary()
				idx := make([]int, 0, len(boundary))
				mu.RLock()
				for _, b := range boundary {
					j, ok := index[b.Key()]
					if !ok {
						mu.RUnlock()
						return ErrUnknownBoundaryCell
					}
					idx = append(idx, j)
				}
				mu.RUnlock()
				sort.Ints(idx)
				out[i] = SparseColumn{Dim: dim, Boundary: idx}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		mu.Lock()
		for _, i := range wave {
			index[basis[i].Key()] = i
		}
		mu.Unlock()
	}

	return out, nil
}
