// Package potoomaps finds shortest routes between French municipalities,
// nudged towards places with a bar, pub or cafe nearby.
//
// The module is organised bottom-up:
//
//	dict/         ordered string index (arena-backed AVL tree)
//	core/         directed weighted graph over dense ids, list or matrix backing
//	bfs/, dfs/    traversals, spanning trees, topological order, components
//	dijkstra/     single-source shortest paths and path reconstruction
//	builder/      deterministic synthetic graphs for tests and benchmarks
//	geo/          great-circle distance and bounding boxes
//	poi/          point-of-interest loaders (CSV, OSM PBF) and R-tree index
//	municipality/ the atlas: tables, lookup, weighting, routing
//	export/       GeoJSON rendering of routes
//	config/       viper configuration and slog logger
//	api/          HTTP server with Prometheus metrics
//	cmd/potoo/    command-line interface
//
// The algorithm packages never log and never lock; the application
// packages above them own both concerns.
package potoomaps
