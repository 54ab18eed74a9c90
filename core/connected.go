package core

// IsConnected reports whether every vertex is reachable from an arbitrary
// start by a single BFS. Directed graphs are checked for weak
// connectivity (edges followed both ways). Empty and single-vertex
// graphs are trivially connected.
// Complexity: O(V + E).
func (g *Graph) IsConnected() bool {
	n := len(g.ids)
	if n <= 1 {
		return true
	}

	seen := make([]bool, n)
	seen[0] = true
	queue := make([]int, 0, n)
	queue = append(queue, 0)
	visited := 1

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := range g.adj[u] {
			if !seen[v] {
				seen[v] = true
				visited++
				queue = append(queue, v)
			}
		}
		if g.directed {
			for v := range g.in[u] {
				if !seen[v] {
					seen[v] = true
					visited++
					queue = append(queue, v)
				}
			}
		}
	}

	return visited == n
}
