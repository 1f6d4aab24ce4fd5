package twopath

import "errors"

// ErrMalformedInput indicates a classifier invariant was broken. No
// function in this package returns it: Classify performs no such check,
// and NaN filtration times are rejected earlier by digraph.EdgeMap.Set.
var ErrMalformedInput = errors.New("twopath: malformed input")
