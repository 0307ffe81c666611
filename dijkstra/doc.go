// Package dijkstra computes single-source shortest paths on a core.Graph
// with non-negative edge weights, and rebuilds explicit paths from the
// predecessor trace it produces.
//
// Overview:
//
//   - Dijkstra returns a Result holding, per node id, the predecessor on a
//     shortest path (NoPredecessor when none) and the distance from the
//     start (+Inf when unreached).
//   - WithTarget(end) stops as soon as end is settled; the default,
//     AllTargets, settles every reachable node.
//   - Result.PathTo and Reconstruct turn the trace into a Path that always
//     includes both endpoints. ShortestPath does both steps at once.
//   - Enumerate is an exhaustive reference search over all simple paths,
//     exponential in the worst case and meant for small graphs and for
//     cross-checking.
//
// Node selection:
//
//   - QueueLinear (default) scans all unsettled nodes for the minimum:
//     O(V²) time, O(V) space, and no allocation per relaxation. This suits
//     the dense backing, whose successor query is O(V) anyway.
//   - QueueHeap uses a binary heap with lazy decrease-key: O((V+E) log V)
//     time, better on large sparse graphs with the list backing.
//
// The linear scan breaks distance ties towards the lower node id; the heap
// makes no such promise. Equal-cost paths may therefore differ between the
// two strategies. Distances never do.
//
// Limitations:
//
//   - Negative weights are not detected. core.Graph cannot store them
//     (a negative SetEdge deletes), so the precondition holds by
//     construction for graphs built through that API.
//   - There is no cancellation; a run always completes.
package dijkstra
