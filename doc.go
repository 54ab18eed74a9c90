// Package graphen is an in-memory graph engine: a mutable graph store
// plus a library of classical graph algorithms built on top of it.
//
// What graphen brings together:
//
//   - Core primitives: directed/undirected, weighted/unweighted graphs
//     with vertex and edge properties, deep cloning, and dense exports
//   - Traversals: BFS, DFS (single tree and whole-graph forest) with
//     discovery/finish timestamps, cycle detection, topological sort
//   - Shortest paths: Dijkstra (single source), Floyd–Warshall
//     (all pairs with path reconstruction)
//   - Minimum spanning trees: Prim, Kruskal
//   - Flow: Edmonds–Karp maximum flow
//   - Connectivity: articulation points, bridges, strongly connected
//     components
//   - Centrality & community: degree, closeness, betweenness,
//     eigenvector, clustering coefficients, greedy modularity
//     communities
//   - Heuristics: MST-based 2-approximate TSP tours
//
// Everything is organized under per-algorithm subpackages:
//
//	core/          — the Graph type, mutation, queries, exports
//	bfs/, dfs/     — traversal engines
//	dijkstra/      — single-source shortest paths
//	floydwarshall/ — all-pairs shortest paths
//	mst/           — spanning-tree builders
//	flow/          — maximum flow
//	connectivity/  — cut vertices, cut edges, SCC
//	centrality/    — vertex importance measures
//	community/     — modularity-based community detection
//	tsp/           — approximate travelling-salesman tours
//	gen/           — deterministic graph fixtures for tests and benchmarks
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.New()
//	g.AddEdge("A", "B")
//	g.AddEdge("A", "C")
//	g.AddEdge("B", "D")
//	g.AddEdge("C", "D")
//	res, _ := bfs.BFS(g, "A")
//	fmt.Println(res.Order) // [A B C D]
//
// Graphs are exclusively owned by their creator: algorithms read the
// graph they are given and return independent data, never holding
// references into the store. Mutation is single-owner; callers needing
// sharing add their own synchronization.
package graphen
