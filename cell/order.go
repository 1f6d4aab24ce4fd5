package cell

import "sort"

// SortByEntranceTime sorts cells ascending by entrance time. Ties (and
// +Inf-vs-+Inf ties in particular, the collapsing-triangle-never-enters
// case) are broken deterministically by Kind, then lexicographically on
// the index payload, so two runs over the same input always produce
// byte-identical order.
//
// Returns ErrMissingEntranceTime, leaving cells unsorted, if any element
// lacks an entrance time.
func SortByEntranceTime(cells []Cell) error {
	for _, c := range cells {
		if !c.hasT {
			return ErrMissingEntranceTime
		}
	}
	sort.Slice(cells, func(i, j int) bool {
		return less(cells[i], cells[j])
	})
	return nil
}

func less(a, b Cell) bool {
	if a.t != b.t {
		return a.t < b.t
	}
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	for idx := 0; idx < 4; idx++ {
		if a.v[idx] != b.v[idx] {
			return a.v[idx] < b.v[idx]
		}
	}
	return false
}
