package cell

import "github.com/flowcomplex/rph/digraph"

// edgeKey builds a boundary Edge cell: an identity only, no entrance time.
func edgeKey(s, t digraph.NodeIndex) Cell {
	return Cell{kind: KindEdge, v: [4]digraph.NodeIndex{s, t}}
}

// nodeKey builds a boundary Node cell: an identity only, no entrance time.
func nodeKey(v digraph.NodeIndex) Cell {
	return Cell{kind: KindNode, v: [4]digraph.NodeIndex{v}}
}

// Boundary returns the dimension-one-lower cells of c, in the canonical
// order used by the sparsifier (sparsify package) to build a boundary
// column. The returned cells carry no entrance time — they exist only to
// be looked up by Key() against an already-assigned index.
//
//	DoubleEdge(i,j)        -> [Edge(i,j), Edge(j,i)]
//	Triangle(i,j,k)        -> [Edge(i,j), Edge(j,k), Edge(i,k)]
//	LongSquare(i,(u,w),k)  -> [Edge(i,u), Edge(i,w), Edge(u,k), Edge(w,k)]
//	Edge(i,j)              -> [Node(i), Node(j)]
//	Node(_)                -> []
func (c Cell) Boundary() []Cell {
	switch c.kind {
	case KindDoubleEdge:
		i, j := c.DoubleEdge()
		return []Cell{edgeKey(i, j), edgeKey(j, i)}
	case KindTriangle:
		i, j, k := c.Triangle()
		return []Cell{edgeKey(i, j), edgeKey(j, k), edgeKey(i, k)}
	case KindLongSquare:
		i, u, w, k := c.LongSquare()
		return []Cell{edgeKey(i, u), edgeKey(i, w), edgeKey(u, k), edgeKey(w, k)}
	case KindEdge:
		s, t := c.Edge()
		return []Cell{nodeKey(s), nodeKey(t)}
	default: // KindNode
		return nil
	}
}
