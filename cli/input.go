// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/graphkit/pipeline"
)

// ErrMissingInput is returned when n or src is absent and no terminal is
// available to ask for it.
var ErrMissingInput = errors.New("missing input")

// ErrInvalidOutput is returned for an --output value other than text or yaml.
var ErrInvalidOutput = errors.New("invalid output format")

// Input contains the input for the root command
type Input struct {
	vertices   int
	source     int
	seed       int64
	configPath string
	store      string
	realize    string
	start      string
	mst        string
	weightMin  int64
	weightMax  int64
	output     string
	verbose    bool

	prompter Prompter
}

// resolve layers defaults, the config file, explicitly set flags and, for
// n and src still missing, the prompter.
func (i *Input) resolve(flags *pflag.FlagSet, p Prompter) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	haveVertices, haveSource := false, false

	switch i.output {
	case OutputText, OutputYAML, "":
	default:
		return cfg, errors.Wrapf(ErrInvalidOutput, "%q (want %s or %s)", i.output, OutputText, OutputYAML)
	}

	if i.configPath != "" {
		fc, err := loadConfigFile(i.configPath)
		if err != nil {
			return cfg, err
		}
		haveVertices, haveSource = fc.apply(&cfg)
	}

	if flags.Changed("vertices") {
		cfg.Vertices, haveVertices = i.vertices, true
	}
	if flags.Changed("source") {
		cfg.Source, haveSource = i.source, true
	}
	if flags.Changed("seed") {
		cfg.Seed = i.seed
	}
	if flags.Changed("store") {
		cfg.Store = i.store
	}
	if flags.Changed("realize") {
		cfg.Realize = i.realize
	}
	if flags.Changed("start") {
		cfg.Start = i.start
	}
	if flags.Changed("mst") {
		cfg.MST = i.mst
	}
	if flags.Changed("weight-min") {
		cfg.WeightMin = i.weightMin
	}
	if flags.Changed("weight-max") {
		cfg.WeightMax = i.weightMax
	}

	if !haveVertices || !haveSource {
		if p == nil || !p.Interactive() {
			return cfg, errors.Wrap(ErrMissingInput, "pass --vertices and --source or run on a terminal")
		}
	}
	if !haveVertices {
		n, err := p.AskInt("Enter the number of vertices:", func(n int) error {
			if n < 1 {
				return fmt.Errorf("need at least 1 vertex")
			}
			return nil
		})
		if err != nil {
			return cfg, errors.Wrap(err, "prompt vertices")
		}
		cfg.Vertices = n
	}
	if !haveSource {
		n := cfg.Vertices
		src, err := p.AskInt("Enter the source vertex for shortest path:", func(v int) error {
			if v < 0 || v >= n {
				return fmt.Errorf("source must be in [0,%d)", n)
			}
			return nil
		})
		if err != nil {
			return cfg, errors.Wrap(err, "prompt source")
		}
		cfg.Source = src
	}

	return cfg, cfg.Validate()
}
