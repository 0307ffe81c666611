// Package core provides the weighted directed Graph used by every routing
// algorithm in this module.
//
// Nodes are dense integer ids 0..Size()-1 fixed at construction. Each
// ordered pair (u, v) carries at most one edge with a finite non-negative
// float64 weight; self-loops are allowed. The same Graph contract has two
// interchangeable backings, chosen at run time with WithBacking:
//
//   - BackingList (default): per-node out-edge slices kept sorted by target.
//     Memory O(V+E). Successors O(out-degree), Predecessors O(V log d).
//   - BackingMatrix: a dense V×V weight table.
//     Memory O(V²). Weight and SetEdge O(1), Successors and Predecessors O(V).
//
// Both backings answer every query identically; only their cost differs.
// Successors and Predecessors are returned in ascending id order of the
// opposite endpoint, as freshly allocated snapshots.
//
// Editing rules (SetEdge):
//
//   - weight < 0 deletes the edge (a no-op when absent);
//   - weight ≥ 0 updates an existing edge in place or inserts a new one;
//   - NaN and ±Inf are rejected with ErrBadWeight;
//   - ids outside [0, Size()) are rejected with ErrNodeOutOfRange and the
//     graph is left untouched.
//
// Out- and in-degree counters are maintained on every insert and delete,
// so OutDegree and InDegree are O(1) on both backings.
//
// A Graph is not safe for concurrent mutation; callers serialise access.
//
// The package also reads and writes a plain-text exchange format:
//
//	<nodeCount> <edgeCount>
//	<source> <target> <weight>   (edgeCount times)
//
// See Load and Fprint.
package core
