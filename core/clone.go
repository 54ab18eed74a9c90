package core

// Clone returns a deep copy of the Graph: configuration, vertices,
// adjacency, and both property layers. Property values themselves are
// copied shallowly (records are arbitrary user data).
// Complexity: O(V + E + P) where P is the number of property entries.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		weighted:  g.weighted,
		ids:       make([]string, len(g.ids)),
		index:     make(map[string]int, len(g.index)),
		adj:       make([]map[int]float64, len(g.adj)),
		vprops:    make([]map[string]any, len(g.vprops)),
		eprops:    make([]map[int]map[string]any, len(g.eprops)),
		edgeCount: g.edgeCount,
	}
	copy(c.ids, g.ids)
	for id, i := range g.index {
		c.index[id] = i
	}
	for i, row := range g.adj {
		c.adj[i] = cloneRow(row)
	}
	if g.directed {
		c.in = make([]map[int]float64, len(g.in))
		for i, row := range g.in {
			c.in[i] = cloneRow(row)
		}
	}
	for i, props := range g.vprops {
		c.vprops[i] = cloneProps(props)
	}
	g.cloneEdgeProps(c)

	return c
}

// CloneEmpty returns a new Graph with identical configuration and the
// same vertices, but no edges and no edge properties. Vertex properties
// are copied. The spanning-tree builders start from this shape.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	c := &Graph{
		directed: g.directed,
		weighted: g.weighted,
		ids:      make([]string, len(g.ids)),
		index:    make(map[string]int, len(g.index)),
		adj:      make([]map[int]float64, len(g.adj)),
		vprops:   make([]map[string]any, len(g.vprops)),
		eprops:   make([]map[int]map[string]any, len(g.eprops)),
	}
	copy(c.ids, g.ids)
	for id, i := range g.index {
		c.index[id] = i
	}
	if g.directed {
		c.in = make([]map[int]float64, len(g.in))
	}
	for i, props := range g.vprops {
		c.vprops[i] = cloneProps(props)
	}

	return c
}

// cloneEdgeProps copies edge property records into c, preserving the
// undirected invariant that both orientations share one record.
func (g *Graph) cloneEdgeProps(c *Graph) {
	for i, row := range g.eprops {
		for j, props := range row {
			if !g.directed && c.eprops[i] != nil && c.eprops[i][j] != nil {
				continue // mirror already written via the other endpoint
			}
			c.setEdgeProps(i, j, cloneProps(props))
		}
	}
}

func cloneRow(row map[int]float64) map[int]float64 {
	if row == nil {
		return nil
	}
	out := make(map[int]float64, len(row))
	for j, w := range row {
		out[j] = w
	}

	return out
}

func cloneProps(props map[string]any) map[string]any {
	if props == nil {
		return nil
	}
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = v
	}

	return out
}
