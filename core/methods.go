// Package core: mutator implementations for the Graph type.
//
// All mutators keep three invariants:
//   - undirected edges are mirrored in adj with the same weight, and both
//     directions share one edge-property record;
//   - directed graphs additionally maintain the reverse adjacency (in);
//   - vertex indices stay dense: RemoveVertex swaps the last index into
//     the freed slot and rewrites every cross-reference to it.
package core

// AddVertex inserts a vertex with the given ID.
// Adding an existing vertex is a no-op (idempotent).
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, exists := g.index[id]; exists {
		return nil
	}
	g.index[id] = len(g.ids)
	g.ids = append(g.ids, id)
	g.adj = append(g.adj, nil)
	g.vprops = append(g.vprops, nil)
	g.eprops = append(g.eprops, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return nil
}

// AddEdge inserts the edge from→to, implicitly adding missing endpoints.
// The weight defaults to DefaultEdgeWeight unless WithWeight is given.
// Re-adding an existing edge overwrites its weight and properties
// (last write wins). Undirected edges are mirrored both ways.
//
// Returns ErrEmptyVertexID, ErrSelfLoop, or ErrBadWeight.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) error {
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to {
		return ErrSelfLoop
	}

	spec := edgeSpec{weight: DefaultEdgeWeight}
	for _, opt := range opts {
		opt(&spec)
	}
	if spec.hasWeight && !g.weighted {
		return ErrBadWeight
	}

	// Endpoints are created on demand (idempotent).
	if err := g.AddVertex(from); err != nil {
		return err
	}
	if err := g.AddVertex(to); err != nil {
		return err
	}
	u, v := g.index[from], g.index[to]

	if _, exists := g.adj[u][v]; !exists {
		g.edgeCount++
	}
	g.setAdj(u, v, spec.weight)
	if g.directed {
		g.setIn(v, u, spec.weight)
	} else {
		g.setAdj(v, u, spec.weight)
	}

	// Properties: last write wins, including clearing on a prop-less re-add.
	g.deleteEdgeProps(u, v)
	if spec.props != nil {
		g.setEdgeProps(u, v, spec.props)
	}

	return nil
}

// RemoveEdge deletes the edge from→to (and its mirror when undirected),
// together with its property record.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to string) error {
	u, okU := g.index[from]
	v, okV := g.index[to]
	if !okU || !okV {
		return ErrEdgeNotFound
	}
	if _, exists := g.adj[u][v]; !exists {
		return ErrEdgeNotFound
	}
	delete(g.adj[u], v)
	if g.directed {
		delete(g.in[v], u)
	} else {
		delete(g.adj[v], u)
	}
	g.deleteEdgeProps(u, v)
	g.edgeCount--

	return nil
}

// RemoveVertex deletes the vertex, every incident edge (both directions),
// and all associated properties. The freed dense index is backfilled by
// relocating the highest index, so indices observed before a removal are
// invalidated by it.
// Returns ErrVertexNotFound if the vertex does not exist.
// Complexity: O(deg(v) + deg(moved)).
func (g *Graph) RemoveVertex(id string) error {
	i, ok := g.index[id]
	if !ok {
		return ErrVertexNotFound
	}

	// Drop edges referencing i from every neighbor's row.
	for j := range g.adj[i] {
		if g.directed {
			delete(g.in[j], i)
		} else {
			delete(g.adj[j], i)
			delete(g.eprops[j], i)
		}
		g.edgeCount--
	}
	if g.directed {
		for u := range g.in[i] {
			delete(g.adj[u], i)
			delete(g.eprops[u], i)
			g.edgeCount--
		}
	}

	last := len(g.ids) - 1
	if i != last {
		g.relocate(last, i)
	}

	delete(g.index, id)
	g.ids = g.ids[:last]
	g.adj = g.adj[:last]
	g.vprops = g.vprops[:last]
	g.eprops = g.eprops[:last]
	if g.directed {
		g.in = g.in[:last]
	}

	return nil
}

// relocate moves vertex index from → to (to's rows must already be dead)
// and rewrites every adjacency and property reference to the old index.
func (g *Graph) relocate(from, to int) {
	g.ids[to] = g.ids[from]
	g.index[g.ids[to]] = to
	g.adj[to] = g.adj[from]
	g.vprops[to] = g.vprops[from]
	g.eprops[to] = g.eprops[from]
	if g.directed {
		g.in[to] = g.in[from]
	}

	// Neighbors still key their rows by the old index; rekey them.
	for j, w := range g.adj[to] {
		if g.directed {
			delete(g.in[j], from)
			g.setIn(j, to, w)
		} else {
			delete(g.adj[j], from)
			g.setAdj(j, to, w)
			if p, ok := g.eprops[j][from]; ok {
				delete(g.eprops[j], from)
				g.setEdgeProps(j, to, p)
			}
		}
	}
	if g.directed {
		for u, w := range g.in[to] {
			delete(g.adj[u], from)
			g.setAdj(u, to, w)
			if p, ok := g.eprops[u][from]; ok {
				delete(g.eprops[u], from)
				g.setEdgeProps(u, to, p)
			}
		}
	}
}

// SetVertexProperty stores key=value on the vertex's property record.
// Returns ErrVertexNotFound if the vertex does not exist.
func (g *Graph) SetVertexProperty(id, key string, value any) error {
	i, ok := g.index[id]
	if !ok {
		return ErrVertexNotFound
	}
	if g.vprops[i] == nil {
		g.vprops[i] = make(map[string]any)
	}
	g.vprops[i][key] = value

	return nil
}

// setAdj writes adj[i][j]=w, allocating the row map lazily.
func (g *Graph) setAdj(i, j int, w float64) {
	if g.adj[i] == nil {
		g.adj[i] = make(map[int]float64)
	}
	g.adj[i][j] = w
}

// setIn writes in[i][j]=w, allocating the row map lazily.
func (g *Graph) setIn(i, j int, w float64) {
	if g.in[i] == nil {
		g.in[i] = make(map[int]float64)
	}
	g.in[i][j] = w
}

// setEdgeProps attaches props to edge i→j; undirected graphs share the
// same record under j→i.
func (g *Graph) setEdgeProps(i, j int, props map[string]any) {
	if g.eprops[i] == nil {
		g.eprops[i] = make(map[int]map[string]any)
	}
	g.eprops[i][j] = props
	if !g.directed {
		if g.eprops[j] == nil {
			g.eprops[j] = make(map[int]map[string]any)
		}
		g.eprops[j][i] = props
	}
}

// deleteEdgeProps removes the property record of edge i→j (both sides
// when undirected).
func (g *Graph) deleteEdgeProps(i, j int) {
	delete(g.eprops[i], j)
	if !g.directed {
		delete(g.eprops[j], i)
	}
}
