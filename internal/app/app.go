// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/statespace/internal/config"
	"github.com/vk/statespace/internal/ctxlog"
	"github.com/vk/statespace/internal/fsstore"
	"github.com/vk/statespace/internal/inmemorystore"
	"github.com/vk/statespace/internal/materialize"
	"github.com/vk/statespace/internal/paramspace"
	"github.com/vk/statespace/internal/project"
	"github.com/vk/statespace/internal/workspace"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	store  workspace.Store
}

// NewApp is the constructor for the main application. outW receives the
// final report line, logW receives logs.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg, logW)
	logger.Debug("Logger configured successfully.")

	var store workspace.Store
	switch cfg.Store {
	case StoreMemory:
		store = inmemorystore.New()
	default:
		store = fsstore.New(cfg.ProjectRoot)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: newSweepLoader(),
		store:  store,
	}
}

// Store returns the application's project store. This is primarily for testing.
func (a *App) Store() workspace.Store {
	return a.store
}

// Run loads the sweep, enumerates its state points, materializes one job
// per state point and prints the report.
func (a *App) Run(ctx context.Context) (materialize.Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "sweep", a.config.SweepPath, "root", a.config.ProjectRoot, "store", a.config.Store)

	model, err := a.loader.Load(ctx, a.config.SweepPath)
	if err != nil {
		return materialize.Report{}, fmt.Errorf("failed to load sweep: %w", err)
	}
	count, err := model.Space.Count()
	if err != nil {
		return materialize.Report{}, fmt.Errorf("failed to enumerate sweep: %w", err)
	}
	a.logger.Info("Sweep loaded.", "files", len(model.Files), "parameters", model.Space.Len(), "combinations", count)

	if empty := model.Space.EmptyParameters(); len(empty) > 0 {
		if a.config.Strict {
			return materialize.Report{}, model.Space.Validate()
		}
		a.logger.Warn("Parameters without candidate values, no jobs will be created.", "parameters", empty)
	}

	points, err := paramspace.StatePoints(model.Space)
	if err != nil {
		return materialize.Report{}, err
	}

	name := model.Name()
	if a.config.ProjectName != "" {
		name = a.config.ProjectName
	}
	proj, err := a.openProject(ctx, name)
	if err != nil {
		return materialize.Report{}, err
	}

	report, err := materialize.Run(ctx, proj, points, materialize.Options{DryRun: a.config.DryRun})
	if err != nil {
		return report, err
	}

	fmt.Fprintln(a.outW, report.String())
	a.logger.Debug("App.Run method finished.")
	return report, nil
}

// openProject initializes the project. A dry run against a store that holds
// no project yet runs against a throwaway in-memory store instead, so that
// nothing is written.
func (a *App) openProject(ctx context.Context, name string) (*project.Project, error) {
	if a.config.DryRun {
		if _, err := a.store.ProjectName(ctx); errors.Is(err, workspace.ErrNotFound) {
			return project.Init(ctx, name, inmemorystore.New())
		}
	}
	return project.Init(ctx, name, a.store)
}
