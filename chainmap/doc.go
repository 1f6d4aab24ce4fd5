// Package chainmap builds a lookup index over a codomain basis (Index,
// BuildIndex) and uses it to compute the chain map a vertex mapping
// induces on a domain basis (ComputeChainMap).
//
// Index answers "which codomain cell realises this image two-path?" with
// five submaps: nodes, edges, double edges, and triangles keyed directly,
// plus long squares keyed by their non-base midpoint and a bases map
// recording each endpoint pair's distinguished base midpoint.
// ComputeChainMap pushes every domain cell through a vertex map and
// resolves its image via imageOfTwoPath, applying the collapse rules
// required when the vertex map identifies endpoints.
//
// Both BuildIndex and ComputeChainMap fan out across goroutines
// (golang.org/x/sync/errgroup): BuildIndex shards the codomain basis and
// merges worker-local maps at join time under a mutex, since Go carries
// no drop-in concurrent-map equivalent to reach for (see DESIGN.md);
// ComputeChainMap runs one goroutine per domain cell, bounded by a
// semaphore, writing into a pre-sized result slice by index, so no merge
// step is needed there at all.
package chainmap
