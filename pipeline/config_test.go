// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphkit/dijkstra"
	"github.com/katalvlaran/graphkit/pipeline"
)

func validConfig() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Vertices = 5
	cfg.Seed = 1

	return cfg
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*pipeline.Config)
		want   error
	}{
		{"valid", func(*pipeline.Config) {}, nil},
		{"no vertices", func(c *pipeline.Config) { c.Vertices = 0 }, pipeline.ErrInvalidConfig},
		{"source too big", func(c *pipeline.Config) { c.Source = 5 }, dijkstra.ErrSourceOutOfRange},
		{"negative source", func(c *pipeline.Config) { c.Source = -1 }, dijkstra.ErrSourceOutOfRange},
		{"bad store", func(c *pipeline.Config) { c.Store = "csr" }, pipeline.ErrInvalidConfig},
		{"bad realize", func(c *pipeline.Config) { c.Realize = "greedy" }, pipeline.ErrInvalidConfig},
		{"bad start", func(c *pipeline.Config) { c.Start = "random" }, pipeline.ErrInvalidConfig},
		{"bad mst", func(c *pipeline.Config) { c.MST = "boruvka" }, pipeline.ErrInvalidConfig},
		{"zero min weight", func(c *pipeline.Config) { c.WeightMin = 0 }, pipeline.ErrInvalidConfig},
		{"min above max", func(c *pipeline.Config) { c.WeightMin, c.WeightMax = 5, 4 }, pipeline.ErrInvalidConfig},
		{"sparse kruskal positional zero", func(c *pipeline.Config) {
			c.Store, c.MST, c.Realize, c.Start = pipeline.StoreSparse, "kruskal", "positional", pipeline.StartZero
		}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestConfig_ResolvedSeed(t *testing.T) {
	cfg := validConfig()
	assert.Equal(t, int64(1), cfg.ResolvedSeed(nil))

	cfg.Seed = 0
	fixed := time.Unix(0, 12345)
	assert.Equal(t, int64(12345), cfg.ResolvedSeed(func() time.Time { return fixed }))
	assert.NotZero(t, cfg.ResolvedSeed(nil))
}
