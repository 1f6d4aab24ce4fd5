package chainmap

import "errors"

// ErrMalformedVertexMap is returned when a vertex map has no entry for a
// vertex referenced by a domain cell being pushed through it.
var ErrMalformedVertexMap = errors.New("chainmap: vertex map is not total over the domain basis")

// ErrMalformedCodomainBasis is returned when a codomain index lookup
// misses: the codomain basis does not contain a cell the domain cell's
// image requires (a collapsing triangle, a long-square member, or a bare
// edge/double-edge).
var ErrMalformedCodomainBasis = errors.New("chainmap: codomain basis does not realise the required image cell")
