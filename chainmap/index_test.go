package chainmap_test

import (
	"testing"

	"github.com/flowcomplex/rph/cell"
	"github.com/flowcomplex/rph/chainmap"
	"github.com/flowcomplex/rph/digraph"
	"github.com/stretchr/testify/require"
)

// buildS3Basis reconstructs the S3 long-square-family basis by hand:
// E = {0->{1:1.0, 2:1.0, 3:10.0}, 1->{3:1.0}, 2->{3:1.0}, 3->{}}.
// Bridge group (0,3) has midpoints {1,2} both at time 1.0; base u=1.
func buildS3Basis() []cell.Cell {
	return []cell.Cell{
		cell.NewNode(0, 0),
		cell.NewNode(1, 0),
		cell.NewNode(2, 0),
		cell.NewNode(3, 0),
		cell.NewEdge(0, 1, 1.0),
		cell.NewEdge(0, 2, 1.0),
		cell.NewEdge(1, 3, 1.0),
		cell.NewEdge(2, 3, 1.0),
		cell.NewEdge(0, 3, 10.0),
		cell.NewLongSquare(0, 1, 2, 3, 1.0),
		cell.NewTriangle(0, 1, 3, 10.0),
	}
}

func TestBuildIndexEmptyCodomain(t *testing.T) {
	idx, err := chainmap.BuildIndex(nil)
	require.NoError(t, err)
	require.NotNil(t, idx)
}

func TestBuildIndexShardsAndMerges(t *testing.T) {
	basis := buildS3Basis()
	idx, err := chainmap.BuildIndex(basis)
	require.NoError(t, err)

	phi := digraph.VertexMap{0: 0, 1: 1, 2: 2, 3: 3}
	out, err := chainmap.ComputeChainMap(basis, idx, phi)
	require.NoError(t, err)
	require.Len(t, out, len(basis))
}
