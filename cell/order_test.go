package cell_test

import (
	"errors"
	"math"
	"testing"

	"github.com/flowcomplex/rph/cell"
	"github.com/stretchr/testify/require"
)

func TestSortByEntranceTimeAscending(t *testing.T) {
	cells := []cell.Cell{
		cell.NewTriangle(0, 1, 2, 3.0),
		cell.NewNode(1, 1.0),
		cell.NewEdge(0, 1, 2.0),
	}
	require.NoError(t, cell.SortByEntranceTime(cells))
	for i := 0; i+1 < len(cells); i++ {
		ti, _ := cells[i].EntranceTime()
		tj, _ := cells[i+1].EntranceTime()
		require.LessOrEqual(t, ti, tj)
	}
}

func TestSortByEntranceTimeDeterministicTieBreak(t *testing.T) {
	a := []cell.Cell{cell.NewNode(2, 1.0), cell.NewNode(1, 1.0), cell.NewNode(3, 1.0)}
	b := []cell.Cell{cell.NewNode(3, 1.0), cell.NewNode(1, 1.0), cell.NewNode(2, 1.0)}
	require.NoError(t, cell.SortByEntranceTime(a))
	require.NoError(t, cell.SortByEntranceTime(b))
	require.Equal(t, keysOf(a), keysOf(b))
}

func TestSortByEntranceTimeInfinityLast(t *testing.T) {
	cells := []cell.Cell{
		cell.NewTriangle(0, 1, 2, math.Inf(1)),
		cell.NewTriangle(3, 4, 5, 1.0),
	}
	require.NoError(t, cell.SortByEntranceTime(cells))
	tm, _ := cells[len(cells)-1].EntranceTime()
	require.True(t, math.IsInf(tm, 1))
}

func TestSortByEntranceTimeMissingTime(t *testing.T) {
	cells := cell.NewTriangle(0, 1, 2, 1.0).Boundary()
	err := cell.SortByEntranceTime(cells)
	require.True(t, errors.Is(err, cell.ErrMissingEntranceTime))
}
