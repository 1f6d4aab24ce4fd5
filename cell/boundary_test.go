package cell_test

import (
	"testing"

	"github.com/flowcomplex/rph/cell"
	"github.com/stretchr/testify/require"
)

func TestBoundaryDoubleEdge(t *testing.T) {
	bdry := cell.NewDoubleEdge(1, 2, 9.0).Boundary()
	require.Equal(t, keys(cell.NewEdge(1, 2, 0), cell.NewEdge(2, 1, 0)), keysOf(bdry))
}

func TestBoundaryTriangle(t *testing.T) {
	bdry := cell.NewTriangle(1, 2, 3, 9.0).Boundary()
	want := keys(cell.NewEdge(1, 2, 0), cell.NewEdge(2, 3, 0), cell.NewEdge(1, 3, 0))
	require.Equal(t, want, keysOf(bdry))
}

func TestBoundaryLongSquare(t *testing.T) {
	bdry := cell.NewLongSquare(1, 2, 3, 4, 9.0).Boundary()
	want := keys(
		cell.NewEdge(1, 2, 0),
		cell.NewEdge(1, 3, 0),
		cell.NewEdge(2, 4, 0),
		cell.NewEdge(3, 4, 0),
	)
	require.Equal(t, want, keysOf(bdry))
}

func TestBoundaryEdge(t *testing.T) {
	bdry := cell.NewEdge(1, 2, 9.0).Boundary()
	require.Equal(t, keys(cell.NewNode(1, 0), cell.NewNode(2, 0)), keysOf(bdry))
}

func TestBoundaryNode(t *testing.T) {
	require.Empty(t, cell.NewNode(1, 9.0).Boundary())
}

func TestBoundaryCellsHaveNoEntranceTime(t *testing.T) {
	for _, b := range cell.NewTriangle(1, 2, 3, 9.0).Boundary() {
		require.False(t, b.HasTime())
	}
}

func keysOf(cells []cell.Cell) []cell.Key {
	out := make([]cell.Key, len(cells))
	for i, c := range cells {
		out[i] = c.Key()
	}
	return out
}

func keys(cells ...cell.Cell) []cell.Key {
	return keysOf(cells)
}
