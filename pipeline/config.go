// SPDX-License-Identifier: MIT

package pipeline

import (
	"time"

	"github.com/pkg/errors"

	"github.com/katalvlaran/graphkit/adjacency"
	"github.com/katalvlaran/graphkit/builder"
	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/prim_kruskal"
)

// Store kinds.
const (
	StoreDense  = "dense"
	StoreSparse = "sparse"
)

// Eulerian start strategies.
const (
	// StartLowestOdd begins at the lowest odd-degree vertex (eulerian.StartVertex).
	StartLowestOdd = "lowest-odd"
	// StartZero always begins at vertex 0, which can yield a malformed trail
	// on a path graph whose odd ends exclude 0.
	StartZero = "zero"
)

// ErrInvalidConfig is wrapped by every Config.Validate failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config describes one run. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	Vertices  int    `yaml:"vertices"`
	Source    int    `yaml:"source"`
	Seed      int64  `yaml:"seed"`
	Store     string `yaml:"store"`
	Realize   string `yaml:"realize"`
	Start     string `yaml:"start"`
	MST       string `yaml:"mst"`
	WeightMin int64  `yaml:"weight_min"`
	WeightMax int64  `yaml:"weight_max"`
}

// DefaultConfig returns the settings used when nothing else is given.
// Vertices is left at 0 so callers must supply it.
func DefaultConfig() Config {
	return Config{
		Store:     StoreDense,
		Realize:   builder.RealizeTracked.String(),
		Start:     StartLowestOdd,
		MST:       prim_kruskal.MethodPrim,
		WeightMin: builder.DefaultMinWeight,
		WeightMax: builder.DefaultMaxWeight,
	}
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Vertices < 1 {
		return errors.Wrapf(ErrInvalidConfig, "vertices must be ≥ 1, got %d", c.Vertices)
	}
	if c.Source < 0 || c.Source >= c.Vertices {
		return errors.Wrapf(dijkstra.ErrSourceOutOfRange, "source %d not in [0,%d)", c.Source, c.Vertices)
	}
	switch c.Store {
	case StoreDense, StoreSparse:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown store %q", c.Store)
	}
	if _, err := builder.ParseRealizeMode(c.Realize); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	switch c.Start {
	case StartLowestOdd, StartZero:
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown start %q", c.Start)
	}
	if _, err := prim_kruskal.ParseMethod(c.MST); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}
	if c.WeightMin < 1 || c.WeightMin > c.WeightMax {
		return errors.Wrapf(ErrInvalidConfig, "weights need 1 ≤ min ≤ max, got [%d,%d]", c.WeightMin, c.WeightMax)
	}

	return nil
}

// ResolvedSeed returns Seed, or the wall clock in nanoseconds when Seed is 0.
func (c Config) ResolvedSeed(now func() time.Time) int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	if now == nil {
		now = time.Now
	}

	return now().UnixNano()
}

// newStore allocates the configured adjacency store.
func (c Config) newStore() (adjacency.Adjacency, error) {
	if c.Store == StoreSparse {
		return adjacency.NewSparse(c.Vertices)
	}

	return adjacency.NewDense(c.Vertices)
}
