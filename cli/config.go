// SPDX-License-Identifier: MIT

package cli

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphkit/pipeline"
)

// fileConfig mirrors pipeline.Config with optional fields so an omitted key
// leaves the default untouched.
type fileConfig struct {
	Vertices  *int    `yaml:"vertices"`
	Source    *int    `yaml:"source"`
	Seed      *int64  `yaml:"seed"`
	Store     *string `yaml:"store"`
	Realize   *string `yaml:"realize"`
	Start     *string `yaml:"start"`
	MST       *string `yaml:"mst"`
	WeightMin *int64  `yaml:"weight_min"`
	WeightMax *int64  `yaml:"weight_max"`
}

func loadConfigFile(path string) (fileConfig, error) {
	var fc fileConfig
	f, err := os.Open(path)
	if err != nil {
		return fc, errors.Wrap(err, "open config")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&fc); err != nil {
		return fc, errors.Wrapf(err, "parse config %s", path)
	}

	return fc, nil
}

// apply copies every present field onto cfg and reports whether vertices
// and source were given.
func (fc fileConfig) apply(cfg *pipeline.Config) (haveVertices, haveSource bool) {
	if fc.Vertices != nil {
		cfg.Vertices, haveVertices = *fc.Vertices, true
	}
	if fc.Source != nil {
		cfg.Source, haveSource = *fc.Source, true
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.Store != nil {
		cfg.Store = *fc.Store
	}
	if fc.Realize != nil {
		cfg.Realize = *fc.Realize
	}
	if fc.Start != nil {
		cfg.Start = *fc.Start
	}
	if fc.MST != nil {
		cfg.MST = *fc.MST
	}
	if fc.WeightMin != nil {
		cfg.WeightMin = *fc.WeightMin
	}
	if fc.WeightMax != nil {
		cfg.WeightMax = *fc.WeightMax
	}

	return haveVertices, haveSource
}
