// Package gen builds deterministic graph fixtures: classic topologies
// (path, cycle, star, complete) and seeded random graphs, composable
// through a single orchestrator.
//
// Design contract:
//   - One orchestrator: Build(gopts, opts, cons...). Creates the graph,
//     resolves the generator configuration, runs constructors in order.
//   - Determinism: same options, seed, and constructor order produce
//     identical graphs.
//   - No panics; constructors validate early and return sentinel errors.
package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/graphen-io/graphen/core"
)

// Sentinel errors returned by constructors.
var (
	// ErrTooFewVertices is returned when a topology needs more vertices
	// than requested.
	ErrTooFewVertices = errors.New("gen: too few vertices")

	// ErrInvalidProbability is returned when an edge probability falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("gen: probability must be in [0,1]")
)

// Constructor applies one deterministic topology to the graph under
// construction.
type Constructor func(g *core.Graph, cfg config) error

// Option configures fixture generation.
type Option func(*config)

type config struct {
	seed      int64
	prefix    string
	minWeight float64
	maxWeight float64
}

func defaultConfig() config {
	return config{prefix: "V", minWeight: 1, maxWeight: 1}
}

// WithSeed freezes the random source for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *config) { c.seed = seed }
}

// WithIDPrefix changes the vertex ID prefix (default "V").
func WithIDPrefix(prefix string) Option {
	return func(c *config) {
		if prefix != "" {
			c.prefix = prefix
		}
	}
}

// WithWeightRange draws edge weights uniformly from [min, max] instead
// of the default constant 1.
func WithWeightRange(min, max float64) Option {
	return func(c *config) {
		if min <= max {
			c.minWeight, c.maxWeight = min, max
		}
	}
}

// Build creates a graph with the given core options and applies every
// constructor in order. The first constructor error aborts the build.
func Build(gopts []core.GraphOption, opts []Option, cons ...Constructor) (*core.Graph, error) {
	g := core.New(gopts...)
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, fn := range cons {
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("gen: %w", err)
		}
	}

	return g, nil
}

// vertexID renders the i-th generated vertex name, zero-padded so
// lexicographic and numeric order agree.
func (c config) vertexID(i int) string {
	return fmt.Sprintf("%s%04d", c.prefix, i)
}

// weightFor draws the next edge weight from the configured range.
func (c config) weightFor(rng *rand.Rand) float64 {
	if c.minWeight == c.maxWeight {
		return c.minWeight
	}

	return c.minWeight + rng.Float64()*(c.maxWeight-c.minWeight)
}

// addEdge inserts one generated edge, attaching a weight only when the
// graph supports them.
func addEdge(g *core.Graph, cfg config, rng *rand.Rand, from, to string) error {
	if !g.Weighted() {
		return g.AddEdge(from, to)
	}

	return g.AddEdge(from, to, core.WithWeight(cfg.weightFor(rng)))
}

// Path chains n vertices into a line (n−1 edges).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: path needs ≥1, got %d", ErrTooFewVertices, n)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		if err := g.AddVertex(cfg.vertexID(0)); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, rng, cfg.vertexID(i-1), cfg.vertexID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle closes a ring over n ≥ 3 vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 3 {
			return fmt.Errorf("%w: cycle needs ≥3, got %d", ErrTooFewVertices, n)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		for i := 0; i < n; i++ {
			next := (i + 1) % n
			if err := addEdge(g, cfg, rng, cfg.vertexID(i), cfg.vertexID(next)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star connects one hub to n−1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: star needs ≥2, got %d", ErrTooFewVertices, n)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		for i := 1; i < n; i++ {
			if err := addEdge(g, cfg, rng, cfg.vertexID(0), cfg.vertexID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete joins every vertex pair of n ≥ 2 vertices.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 2 {
			return fmt.Errorf("%w: complete needs ≥2, got %d", ErrTooFewVertices, n)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge(g, cfg, rng, cfg.vertexID(i), cfg.vertexID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// RandomSparse lays a spanning path for connectivity, then adds each
// remaining pair independently with probability p. Seeded runs are
// reproducible.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg config) error {
		if n < 1 {
			return fmt.Errorf("%w: random graph needs ≥1, got %d", ErrTooFewVertices, n)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: got %v", ErrInvalidProbability, p)
		}
		rng := rand.New(rand.NewSource(cfg.seed))
		if err := Path(n)(g, cfg); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				if err := addEdge(g, cfg, rng, cfg.vertexID(i), cfg.vertexID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
