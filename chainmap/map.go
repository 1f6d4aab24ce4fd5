package chainmap

import (
	"runtime"
	"sort"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
	"golang.org/x/sync/errgroup"
)

// imageOfTwoPath resolves the image set of the two-path a->b->c against
// index, following the four-case collapse rule: a degenerate path (a==c)
// collapses to a double edge or vanishes entirely; a realised chord
// yields the triangle directly; otherwise the endpoint pair's long-square
// family supplies both the long-square member and its base triangle.
func imageOfTwoPath(index *Index, a, b, c digraph.NodeIndex) (map[int]struct{}, error) {
	out := make(map[int]struct{})

	if a == c {
		if a == b {
			return out, nil
		}
		i, ok := index.doubleEdges[digraph.Endpoints{From: a, To: b}]
		if !ok {
			return nil, ErrMalformedCodomainBasis
		}
		out[i] = struct{}{}
		return out, nil
	}

	if a == b || b == c {
		return out, nil
	}

	if i, ok := index.triangles[digraph.Triple{A: a, B: b, C: c}]; ok {
		out[i] = struct{}{}
		return out, nil
	}

	u, ok := index.bases[digraph.Endpoints{From: a, To: c}]
	if !ok {
		return nil, ErrMalformedCodomainBasis
	}
	ls, ok := index.longSquares[digraph.Triple{A: a, B: b, C: c}]
	if !ok {
		return nil, ErrMalformedCodomainBasis
	}
	base, ok := index.triangles[digraph.Triple{A: a, B: u, C: c}]
	if !ok {
		return nil, ErrMalformedCodomainBasis
	}
	out[ls] = struct{}{}
	out[base] = struct{}{}
	return out, nil
}

// symmetricDifference merges a and b modulo 2: an index present in
// exactly one of the two sets survives.
func symmetricDifference(a, b map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(a)+len(b))
	for i := range a {
		if _, ok := b[i]; !ok {
			out[i] = struct{}{}
		}
	}
	for i := range b {
		if _, ok := a[i]; !ok {
			out[i] = struct{}{}
		}
	}
	return out
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for i := range set {
		out = append(out, i)
	}
	sort.Ints(out)
	return out
}

// imageOf resolves the image of a single domain cell c under phi against
// index, per the collapse rules: a node maps to a node, an edge
// collapsing under phi vanishes, and the three 2-cell kinds resolve
// through imageOfTwoPath (a LongSquare's image is the symmetric
// difference of its two constituent two-paths' images).
func imageOf(index *Index, phi digraph.VertexMap, c cell.Cell) ([]int, error) {
	f := func(v digraph.NodeIndex) (digraph.NodeIndex, error) {
		mapped, ok := phi[v]
		if !ok {
			return 0, ErrMalformedVertexMap
		}
		return mapped, nil
	}

	switch c.Kind() {
	case cell.KindNode:
		v, err := f(c.Node())
		if err != nil {
			return nil, err
		}
		i, ok := index.nodes[v]
		if !ok {
			return nil, ErrMalformedCodomainBasis
		}
		return []int{i}, nil

	case cell.KindEdge:
		s, t := c.Edge()
		fs, err := f(s)
		if err != nil {
			return nil, err
		}
		ft, err := f(t)
		if err != nil {
			return nil, err
		}
		if fs == ft {
			return nil, nil
		}
		i, ok := index.edges[digraph.Endpoints{From: fs, To: ft}]
		if !ok {
			return nil, ErrMalformedCodomainBasis
		}
		return []int{i}, nil

	case cell.KindDoubleEdge:
		i, j := c.DoubleEdge()
		fi, err := f(i)
		if err != nil {
			return nil, err
		}
		fj, err := f(j)
		if err != nil {
			return nil, err
		}
		set, err := imageOfTwoPath(index, fi, fj, fi)
		if err != nil {
			return nil, err
		}
		return sortedKeys(set), nil

	case cell.KindTriangle:
		i, j, k := c.Triangle()
		fi, err := f(i)
		if err != nil {
			return nil, err
		}
		fj, err := f(j)
		if err != nil {
			return nil, err
		}
		fk, err := f(k)
		if err != nil {
			return nil, err
		}
		set, err := imageOfTwoPath(index, fi, fj, fk)
		if err != nil {
			return nil, err
		}
		return sortedKeys(set), nil

	case cell.KindLongSquare:
		i, u, w, k := c.LongSquare()
		fi, err := f(i)
		if err != nil {
			return nil, err
		}
		fu, err := f(u)
		if err != nil {
			return nil, err
		}
		fw, err := f(w)
		if err != nil {
			return nil, err
		}
		fk, err := f(k)
		if err != nil {
			return nil, err
		}
		viaU, err := imageOfTwoPath(index, fi, fu, fk)
		if err != nil {
			return nil, err
		}
		viaW, err := imageOfTwoPath(index, fi, fw, fk)
		if err != nil {
			return nil, err
		}
		return sortedKeys(symmetricDifference(viaU, viaW)), nil
	}

	return nil, ErrMalformedCodomainBasis
}

// ComputeChainMap resolves the image of every cell in domain under phi
// against index, returning one sorted index slice per domain cell, in
// domain order. One goroutine per domain cell runs under a semaphore
// sized to runtime.GOMAXPROCS(0), each writing its own disjoint slot of
// the pre-sized result, so no merge step is required. The first error
// from any worker is returned as-is, with no partial result; the workers
// for the remaining cells are not cancelled and still run to completion.
func ComputeChainMap(domain []cell.Cell, index *Index, phi digraph.VertexMap) ([][]int, error) {
	result := make([][]int, len(domain))
	if len(domain) == 0 {
		return result, nil
	}

	workers := runtime.GOMAXPROCS(0)
	sem := make(chan struct{}, workers)

	var g errgroup.Group
	for i, c := range domain {
		i, c := i, c
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			image, err := imageOf(index, phi, c)
			if err != nil {
				return err
			}
			result[i] = image
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
