// Package cell defines the central Cell type of the regular path homology
// (RPH) chain complex: a closed, five-variant tagged union covering the
// 0-, 1- and 2-cells of a filtered directed graph, together with the
// boundary operator and the total order a produced basis is sorted by.
//
// A Cell carries:
//
//   - Kind       — which of the five variants this cell is
//   - index payload — the vertex indices the variant needs (1, 2 or 4 of them)
//   - an optional entrance time — present on basis members, absent on the
//     throwaway boundary cells Boundary returns
//
// Equality and hashing (Key) depend only on Kind and the index payload,
// never on the entrance time — two cells that differ only in when they
// entered the filtration are the same cell.
//
// Variants:
//
//	Node(v)                — dim 0
//	Edge(s, t)              — dim 1, directed: Edge(s,t) != Edge(t,s)
//	DoubleEdge(i, j)        — dim 2, the 2-cycle i->j->i
//	Triangle(i, j, k)       — dim 2, i->j->k with the chord i->k present
//	LongSquare(i, u, w, k)  — dim 2, the formal sum of i->u->k and i->w->k
//	                          when neither two-path has the chord i->k;
//	                          u is the family's distinguished base midpoint
//
// See Boundary for the canonical boundary order of each variant and
// SortByEntranceTime for how a produced basis is totally ordered.
package cell
