// Package community implements single-level Louvain community
// detection (greedy modularity local moving, no hierarchical
// coarsening) over an undirected core.Graph.
//
// Every vertex starts in its own community. Sweeps then visit vertices
// in ascending ID order; each vertex is tentatively removed from its
// community and offered to every neighboring community, scoring each
// move with the incremental gain
//
//	gain(c) = k_in(c) − Σtot(c)·k_i / 2m
//
// (the constant 1/m factor is dropped since only comparisons matter).
// The best strictly-improving move is committed by updating the two
// community strength sums; the full modularity is never recomputed
// inside the loop. Sweeps repeat until one complete pass moves nothing.
//
// Complexity: O(sweeps · (V + E)) with small constants; the sweep count
// is graph-dependent but short in practice.
package community

import (
	"github.com/graphen-io/graphen/core"
)

// Detect assigns every vertex of an undirected graph to a community by
// greedy modularity optimization and reports the achieved modularity.
// Edgeless graphs yield one singleton community per vertex and
// modularity 0.
//
// Returns ErrGraphNil on nil input and ErrDirectedGraph for directed
// graphs.
func Detect(g *core.Graph) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if g.Directed() {
		return nil, ErrDirectedGraph
	}

	n := g.Order()
	st := newState(g, n)
	if st.m > 0 {
		st.localMoving()
	}

	return st.result(), nil
}

// state carries the strength bookkeeping of one Detect run.
type state struct {
	g        *core.Graph
	order    []int     // vertex indices in ascending ID order
	m        float64   // total undirected edge weight
	strength []float64 // k_i: summed incident weight per vertex
	comm     []int     // current community of each vertex
	sumTot   []float64 // Σtot: summed strength per community
}

func newState(g *core.Graph, n int) *state {
	st := &state{
		g:        g,
		order:    make([]int, 0, n),
		strength: make([]float64, n),
		comm:     make([]int, n),
		sumTot:   make([]float64, n),
	}
	for _, id := range g.Vertices() {
		i, _ := g.IndexOf(id)
		st.order = append(st.order, i)
	}
	for i := 0; i < n; i++ {
		st.g.ForEachNeighbor(i, func(_ int, w float64) {
			st.strength[i] += w
		})
		st.comm[i] = i
		st.sumTot[i] = st.strength[i]
	}
	for _, e := range g.Edges() {
		st.m += e.Weight
	}

	return st
}

// localMoving sweeps until a full pass commits no move.
func (st *state) localMoving() {
	for moved := true; moved; {
		moved = false
		for _, i := range st.order {
			if st.moveVertex(i) {
				moved = true
			}
		}
	}
}

// moveVertex offers vertex i to its neighboring communities and commits
// the best strictly-positive incremental gain. Reports whether i moved.
func (st *state) moveVertex(i int) bool {
	current := st.comm[i]
	ki := st.strength[i]

	// weight from i into each adjacent community
	kIn := make(map[int]float64)
	st.g.ForEachNeighbor(i, func(j int, w float64) {
		kIn[st.comm[j]] += w
	})

	// take i out of its community before comparing destinations
	st.sumTot[current] -= ki

	gainOf := func(c int) float64 {
		return kIn[c] - st.sumTot[c]*ki/(2*st.m)
	}

	best := current
	bestGain := gainOf(current)
	for c := range kIn {
		if c == current {
			continue
		}
		gain := gainOf(c)
		// strict improvement, with the lower community id winning exact
		// ties so sweeps are deterministic
		if gain > bestGain || (gain == bestGain && c < best) {
			best = c
			bestGain = gain
		}
	}

	st.sumTot[best] += ki
	st.comm[i] = best

	return best != current
}

// result renumbers communities densely in first-appearance order over
// sorted vertex IDs and computes the final modularity.
func (st *state) result() *Result {
	res := &Result{Communities: make(map[string]int, len(st.comm))}

	renumber := make(map[int]int)
	for _, i := range st.order {
		c := st.comm[i]
		dense, ok := renumber[c]
		if !ok {
			dense = len(renumber)
			renumber[c] = dense
		}
		res.Communities[st.g.IDOf(i)] = dense
	}

	res.Modularity = st.modularity()

	return res
}

// modularity computes Q = Σ_ij [A_ij − k_i·k_j/2m]·δ(c_i,c_j) / 2m
// directly from the final assignment.
func (st *state) modularity() float64 {
	if st.m == 0 {
		return 0
	}

	var internal float64 // Σ A_ij over same-community ordered pairs
	for i := range st.comm {
		st.g.ForEachNeighbor(i, func(j int, w float64) {
			if st.comm[i] == st.comm[j] {
				internal += w
			}
		})
	}

	commStrength := make(map[int]float64)
	for i, c := range st.comm {
		commStrength[c] += st.strength[i]
	}
	var expected float64
	for _, s := range commStrength {
		expected += (s / (2 * st.m)) * (s / (2 * st.m))
	}

	return internal/(2*st.m) - expected
}
