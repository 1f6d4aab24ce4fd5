package twopath_test

import (
	"math"
	"testing"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/digraph"
	"github.com/flowcomplex/rph/twopath"
	"github.com/stretchr/testify/require"
)

func buildRaw(t *testing.T, edges map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time) digraph.RawEdgeMap {
	t.Helper()
	em := digraph.NewEdgeMap()
	for s, dists := range edges {
		for to, tm := range dists {
			require.NoError(t, em.Set(s, to, tm))
		}
	}
	return em.Snapshot()
}

func twoCells(t *testing.T, raw digraph.RawEdgeMap) []cell.Cell {
	t.Helper()
	return twopath.Classify(raw, twopath.Enumerate(raw))
}

func keysOf(cells []cell.Cell) map[cell.Key]cell.Cell {
	out := make(map[cell.Key]cell.Cell, len(cells))
	for _, c := range cells {
		out[c.Key()] = c
	}
	return out
}

// S1: triangle 0->1->2 with chord 0->2.
func TestS1Triangle(t *testing.T) {
	raw := buildRaw(t, map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time{
		0: {1: 1.0, 2: 3.0},
		1: {2: 2.0},
		2: {},
	})
	cols := twoCells(t, raw)
	require.Len(t, cols, 1)
	require.Equal(t, cell.KindTriangle, cols[0].Kind())
	i, j, k := cols[0].Triangle()
	require.Equal(t, digraph.NodeIndex(0), i)
	require.Equal(t, digraph.NodeIndex(1), j)
	require.Equal(t, digraph.NodeIndex(2), k)
	tm, err := cols[0].EntranceTime()
	require.NoError(t, err)
	require.Equal(t, 3.0, tm)
}

// S2: double edge 0<->1.
func TestS2DoubleEdge(t *testing.T) {
	raw := buildRaw(t, map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time{
		0: {1: 1.0},
		1: {0: 2.0},
	})
	cols := twoCells(t, raw)
	require.Len(t, cols, 2)
	for _, c := range cols {
		require.Equal(t, cell.KindDoubleEdge, c.Kind())
		tm, err := c.EntranceTime()
		require.NoError(t, err)
		require.Equal(t, 2.0, tm)
	}
	keys := keysOf(cols)
	_, hasZeroOne := keys[cell.NewDoubleEdge(0, 1, 0).Key()]
	_, hasOneZero := keys[cell.NewDoubleEdge(1, 0, 0).Key()]
	require.True(t, hasZeroOne)
	require.True(t, hasOneZero)
}

// S3: long-square family. Bridge group (0,3) has midpoints {1,2} at
// entrance time 1.0 each; tie-break picks midpoint 1 as base.
func TestS3LongSquareFamily(t *testing.T) {
	raw := buildRaw(t, map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time{
		0: {1: 1.0, 2: 1.0, 3: 10.0},
		1: {3: 1.0},
		2: {3: 1.0},
		3: {},
	})
	cols := twoCells(t, raw)
	require.Len(t, cols, 2)

	var triangle, longSquare *cell.Cell
	for i := range cols {
		switch cols[i].Kind() {
		case cell.KindTriangle:
			triangle = &cols[i]
		case cell.KindLongSquare:
			longSquare = &cols[i]
		}
	}
	require.NotNil(t, triangle)
	require.NotNil(t, longSquare)

	ti, tj, tk := triangle.Triangle()
	require.Equal(t, digraph.NodeIndex(0), ti)
	require.Equal(t, digraph.NodeIndex(1), tj)
	require.Equal(t, digraph.NodeIndex(3), tk)
	ttime, _ := triangle.EntranceTime()
	require.Equal(t, 10.0, ttime)

	li, lu, lw, lk := longSquare.LongSquare()
	require.Equal(t, digraph.NodeIndex(0), li)
	require.Equal(t, digraph.NodeIndex(1), lu)
	require.Equal(t, digraph.NodeIndex(2), lw)
	require.Equal(t, digraph.NodeIndex(3), lk)
	ltime, _ := longSquare.EntranceTime()
	require.Equal(t, 1.0, ltime)
}

// A bridge group whose chord never enters still emits its collapsing
// triangle, with entrance time +Inf.
func TestInfiniteCollapsingTriangleIsKept(t *testing.T) {
	raw := buildRaw(t, map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time{
		0: {1: 1.0},
		1: {2: 1.0},
		2: {},
	})
	cols := twoCells(t, raw)
	require.Len(t, cols, 1)
	require.Equal(t, cell.KindTriangle, cols[0].Kind())
	tm, err := cols[0].EntranceTime()
	require.NoError(t, err)
	require.True(t, math.IsInf(tm, 1))
}

func TestNoTwoPathsYieldsEmptyBasis(t *testing.T) {
	raw := buildRaw(t, map[digraph.NodeIndex]map[digraph.NodeIndex]digraph.Time{
		0: {1: 1.0},
		1: {},
	})
	require.Empty(t, twoCells(t, raw))
}
