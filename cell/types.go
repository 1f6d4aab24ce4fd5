package cell

import "github.com/flowcomplex/rph/digraph"

// Kind distinguishes the five cell variants. The zero value is KindNode.
type Kind uint8

const (
	KindNode Kind = iota
	KindEdge
	KindDoubleEdge
	KindTriangle
	KindLongSquare
)

// String renders a Kind for logging and test failure messages.
func (k Kind) String() string {
	switch k {
	case KindNode:
		return "Node"
	case KindEdge:
		return "Edge"
	case KindDoubleEdge:
		return "DoubleEdge"
	case KindTriangle:
		return "Triangle"
	case KindLongSquare:
		return "LongSquare"
	default:
		return "Unknown"
	}
}

// Dimension returns the dimension of cells of this Kind.
func (k Kind) Dimension() int {
	switch k {
	case KindNode:
		return 0
	case KindEdge:
		return 1
	default:
		return 2
	}
}

// Key is the variant-tag-plus-payload identity of a Cell: two cells
// compare equal, and hash equally as map keys, iff their Keys are equal.
// Entrance time never participates.
type Key struct {
	Kind Kind
	V    [4]digraph.NodeIndex
}

// Cell is a single element of an RPH chain complex basis: one of Node,
// Edge, DoubleEdge, Triangle or LongSquare, with an optional entrance
// time. The payload layout of V depends on Kind:
//
//	Node:       V[0]=v
//	Edge:       V[0]=s, V[1]=t
//	DoubleEdge: V[0]=i, V[1]=j            (i->j->i)
//	Triangle:   V[0]=i, V[1]=j, V[2]=k    (i->j->k, chord i->k)
//	LongSquare: V[0]=i, V[1]=u, V[2]=w, V[3]=k  (u = base midpoint)
//
// The zero Cell is not a valid cell; always construct via the New*
// functions.
type Cell struct {
	kind Kind
	v    [4]digraph.NodeIndex
	t    digraph.Time
	hasT bool
}

// Kind returns the cell's variant tag.
func (c Cell) Kind() Kind { return c.kind }

// Dimension returns 0, 1 or 2 according to the cell's Kind.
func (c Cell) Dimension() int { return c.kind.Dimension() }

// Key returns the variant-tag-plus-payload identity used for equality,
// hashing and map lookups. Entrance time is never part of a Key.
func (c Cell) Key() Key { return Key{Kind: c.kind, V: c.v} }

// HasTime reports whether the cell carries an entrance time.
func (c Cell) HasTime() bool { return c.hasT }

// EntranceTime returns the cell's entrance time, or ErrMissingEntranceTime
// if the cell was synthesised without one (a boundary element).
func (c Cell) EntranceTime() (digraph.Time, error) {
	if !c.hasT {
		return 0, ErrMissingEntranceTime
	}
	return c.t, nil
}

// NewNode constructs a dimension-0 cell for vertex v, entering at time t.
func NewNode(v digraph.NodeIndex, t digraph.Time) Cell {
	return Cell{kind: KindNode, v: [4]digraph.NodeIndex{v}, t: t, hasT: true}
}

// NewEdge constructs a directed dimension-1 cell s->t, entering at time et.
func NewEdge(s, t digraph.NodeIndex, et digraph.Time) Cell {
	return Cell{kind: KindEdge, v: [4]digraph.NodeIndex{s, t}, t: et, hasT: true}
}

// NewDoubleEdge constructs the 2-cycle i->j->i, entering at time t.
func NewDoubleEdge(i, j digraph.NodeIndex, t digraph.Time) Cell {
	return Cell{kind: KindDoubleEdge, v: [4]digraph.NodeIndex{i, j}, t: t, hasT: true}
}

// NewTriangle constructs the directed triangle i->j->k (chord i->k),
// entering at time t.
func NewTriangle(i, j, k digraph.NodeIndex, t digraph.Time) Cell {
	return Cell{kind: KindTriangle, v: [4]digraph.NodeIndex{i, j, k}, t: t, hasT: true}
}

// NewLongSquare constructs the long-square family member spanning i..k
// with base midpoint u and other midpoint w, entering at time t.
func NewLongSquare(i, u, w, k digraph.NodeIndex, t digraph.Time) Cell {
	return Cell{kind: KindLongSquare, v: [4]digraph.NodeIndex{i, u, w, k}, t: t, hasT: true}
}

// Node returns the vertex index for a KindNode cell.
func (c Cell) Node() digraph.NodeIndex { return c.v[0] }

// Edge returns the endpoints (s,t) of a KindEdge cell.
func (c Cell) Edge() (s, t digraph.NodeIndex) { return c.v[0], c.v[1] }

// DoubleEdge returns the endpoints (i,j) of a KindDoubleEdge cell.
func (c Cell) DoubleEdge() (i, j digraph.NodeIndex) { return c.v[0], c.v[1] }

// Triangle returns (i,j,k) of a KindTriangle cell.
func (c Cell) Triangle() (i, j, k digraph.NodeIndex) { return c.v[0], c.v[1], c.v[2] }

// LongSquare returns (i, u, w, k) of a KindLongSquare cell; u is the base
// midpoint, w the other midpoint.
func (c Cell) LongSquare() (i, u, w, k digraph.NodeIndex) {
	return c.v[0], c.v[1], c.v[2], c.v[3]
}
