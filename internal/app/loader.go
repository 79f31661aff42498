// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"fmt"

	"github.com/vk/statespace/internal/config"
	"github.com/vk/statespace/internal/hcl"
	"github.com/vk/statespace/internal/yamlcfg"
)

// sweepLoader runs every format loader over the same paths and merges the
// results, HCL first.
type sweepLoader struct {
	loaders []namedLoader
}

type namedLoader struct {
	name   string
	loader config.Loader
}

func newSweepLoader() *sweepLoader {
	return &sweepLoader{loaders: []namedLoader{
		{name: "hcl", loader: hcl.NewLoader()},
		{name: "yaml", loader: yamlcfg.NewLoader()},
	}}
}

// Load implements config.Loader.
func (l *sweepLoader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	merged := config.NewModel()
	for _, nl := range l.loaders {
		model, err := nl.loader.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(model, nl.name+" sweep files"); err != nil {
			return nil, err
		}
	}
	if len(merged.Files) == 0 {
		return nil, fmt.Errorf("no sweep files (.hcl, .yaml, .yml) found in %v", paths)
	}
	return merged, nil
}
