// Package municipality assembles the French municipality routing graph.
//
// An Atlas is built in stages, mirroring how the data arrives:
//
//  1. LoadMunicipalities reads the municipality table (INSEE code, postal
//     name, coordinates), deduplicates it by INSEE code through a
//     dict.Dict, and assigns dense node ids in file order.
//  2. LoadAdjacency reads the adjacency table and creates one directed
//     edge per (municipality, neighbour) pair, with weight 0.
//  3. ApplyDistances sets every edge weight to the great-circle distance
//     between its endpoints, in kilometres.
//  4. ApplyPOIWeighting optionally shortens every edge entering a
//     municipality that has points of interest nearby, so that routes are
//     drawn through them.
//
// Route then runs dijkstra.ShortestPath between two municipalities found
// with Lookup, and Stats summarises the POIs along the way.
//
// An Atlas is not safe for concurrent use; callers serialise access.
package municipality
