// Package digraph provides the minimal input model the RPH engine needs:
// a dense, uint32-indexed, directed, float-weighted edge map, and the
// vertex mapping used to push one graph's basis into another's.
//
// EdgeMap is a thread-safe, mutation-capable builder in the same
// split-lock spirit as lvlath's core.Graph, trimmed down to exactly the
// shape regular path homology needs: no multi-edges, no undirected mode,
// no metadata. Once built, callers take a read-only Snapshot for the hot
// enumeration/classification/indexing path, so that path never pays lock
// overhead.
//
// VertexMap is a plain map; Total checks it is defined on every vertex a
// caller is about to push through it, so a malformed map fails fast with
// a single clear error instead of surfacing midway through a parallel
// fan-out.
package digraph
