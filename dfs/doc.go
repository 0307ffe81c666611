// Package dfs implements depth-first traversal over a core.Graph: single
// source walks with pre- and post-order hooks, DFS spanning trees, and a
// topological sort with cycle detection.
//
// Every walk is driven by an explicit frame stack rather than recursion, so
// depth is bounded by memory, not by the goroutine stack. Successors are
// expanded in ascending target id, which reproduces the visit order of the
// textbook recursive algorithm exactly.
//
// The caller owns the visited buffer for DFS and SpanningTree: reached nodes
// are marked in it and nodes already marked are skipped.
//
// Options:
//
//   - WithOnVisit(fn)     pre-order hook; a non-nil error aborts.
//   - WithOnExit(fn)      post-order hook; a non-nil error aborts.
//   - WithMaxDepth(d)     do not descend below depth d (d ≥ 0).
//   - WithFilterEdge(fn)  skip edges for which fn returns false.
//
// Complexity:
//
//   - Time:   O(V + E) with BackingList, O(V²) with BackingMatrix.
//   - Memory: O(V) for the frame stack and result slices.
package dfs
