package digraph

import "errors"

// ErrMalformedInput indicates a NaN filtration time was supplied to
// EdgeMap.Set. Filtration times must be finite or +Inf; NaN is a contract
// violation, not a value the RPH engine has any sane way to order.
var ErrMalformedInput = errors.New("digraph: malformed input (NaN filtration time)")

// ErrUnknownVertex indicates a vertex mapping was requested for a vertex
// that Total did not find a value for.
var ErrUnknownVertex = errors.New("digraph: vertex map is not total over the requested vertex")
