// Package bfs provides breadth-first traversal over a core.Graph.
//
// BFS visits nodes in non-decreasing hop count from a start node. Successors
// are expanded in ascending target id, so the visit order is deterministic
// for a given graph and backing-independent.
//
// The caller owns the visited buffer: BFS marks every node it reaches and
// skips nodes already marked, so several walks can share one buffer to
// sweep a graph component by component.
//
// Hooks (functional options):
//
//   - WithOnEnqueue: called when a node is first discovered.
//   - WithOnDequeue: called immediately before a node is visited.
//   - WithOnVisit: called on visit; a non-nil error aborts the walk.
//   - WithFilterEdge: skip individual edges.
//   - WithMaxDepth: stop expanding past a hop count.
//
// Complexity: O(V + E) time with BackingList, O(V²) with BackingMatrix
// (each successor query scans a row). O(V) extra space.
package bfs
