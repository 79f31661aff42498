// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package project is the umbrella over a workspace.Store: it owns the project
// name, hands out job handles keyed by state point identity and writes the
// consolidated state point index.
package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/vk/statespace/internal/ctxlog"
	"github.com/vk/statespace/internal/paramspace"
	"github.com/vk/statespace/internal/workspace"
)

var (
	// ErrNameMismatch is returned when a store already belongs to another project.
	ErrNameMismatch = errors.New("project name mismatch")
	// ErrStatePointConflict is returned when a workspace holds a state point
	// that does not match its identity.
	ErrStatePointConflict = errors.New("state point conflict")
)

// jobCacheSize bounds the number of job handles kept by OpenJob.
const jobCacheSize = 1024

// Project is a named collection of job workspaces.
type Project struct {
	name  string
	store workspace.Store
	jobs  *lru.Cache[string, *Job]
}

// Init opens the project stored in store, creating it if absent. It fails
// with ErrNameMismatch if the store was initialized under a different name.
func Init(ctx context.Context, name string, store workspace.Store) (*Project, error) {
	if name == "" {
		return nil, errors.New("project name must not be empty")
	}

	existing, err := store.ProjectName(ctx)
	switch {
	case err == nil && existing != name:
		return nil, fmt.Errorf("%w: store belongs to %q, not %q", ErrNameMismatch, existing, name)
	case err != nil && !errors.Is(err, workspace.ErrNotFound):
		return nil, fmt.Errorf("failed to read project name: %w", err)
	}

	if err := store.InitProject(ctx, name); err != nil {
		return nil, fmt.Errorf("failed to initialize project %q: %w", name, err)
	}
	ctxlog.FromContext(ctx).Debug("Project initialized.", "project", name, "existing", err == nil)

	return newProject(name, store)
}

// Open opens an already initialized project.
func Open(ctx context.Context, store workspace.Store) (*Project, error) {
	name, err := store.ProjectName(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open project: %w", err)
	}
	return newProject(name, store)
}

func newProject(name string, store workspace.Store) (*Project, error) {
	cache, err := lru.New[string, *Job](jobCacheSize)
	if err != nil {
		return nil, err
	}
	return &Project{name: name, store: store, jobs: cache}, nil
}

// Name returns the project name.
func (p *Project) Name() string {
	return p.name
}

// OpenJob returns the job handle for sp. Nothing is written until Init is
// called on the handle. Opening the same state point twice returns the same
// handle while it is cached.
func (p *Project) OpenJob(sp paramspace.StatePoint) *Job {
	if job, ok := p.jobs.Get(sp.ID()); ok {
		return job
	}
	job := &Job{project: p, statePoint: sp}
	p.jobs.Add(sp.ID(), job)
	return job
}

// Jobs returns a handle for every workspace in the store, sorted by ID.
func (p *Project) Jobs(ctx context.Context) ([]*Job, error) {
	ids, err := p.store.IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	jobs := make([]*Job, 0, len(ids))
	for _, id := range ids {
		sp, err := p.loadStatePoint(ctx, id)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, p.OpenJob(sp))
	}
	return jobs, nil
}

// WriteStatePoints merges the existing index with the state points of every
// workspace in the store and writes it back. It returns the number of
// entries in the written index.
func (p *Project) WriteStatePoints(ctx context.Context) (int, error) {
	index := make(map[string]json.RawMessage)

	existing, err := p.store.ReadIndex(ctx)
	switch {
	case err == nil:
		if err := json.Unmarshal(existing, &index); err != nil {
			return 0, fmt.Errorf("failed to decode existing state point index: %w", err)
		}
	case !errors.Is(err, workspace.ErrNotFound):
		return 0, fmt.Errorf("failed to read state point index: %w", err)
	}

	ids, err := p.store.IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list workspaces: %w", err)
	}
	for _, id := range ids {
		sp, err := p.loadStatePoint(ctx, id)
		if err != nil {
			return 0, err
		}
		index[id] = sp.Canonical()
	}

	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("failed to encode state point index: %w", err)
	}
	if err := p.store.WriteIndex(ctx, data); err != nil {
		return 0, fmt.Errorf("failed to write state point index: %w", err)
	}

	ctxlog.FromContext(ctx).Debug("State point index written.", "project", p.name, "entries", len(index))
	return len(index), nil
}

// loadStatePoint decodes the state point stored for id and checks that it
// hashes back to id.
func (p *Project) loadStatePoint(ctx context.Context, id string) (paramspace.StatePoint, error) {
	data, err := p.store.StatePoint(ctx, id)
	if err != nil {
		return paramspace.StatePoint{}, fmt.Errorf("failed to read state point of %s: %w", id, err)
	}
	sp, err := paramspace.StatePointFromJSON(data)
	if err != nil {
		return paramspace.StatePoint{}, fmt.Errorf("workspace %s: %w", id, err)
	}
	if sp.ID() != id {
		return paramspace.StatePoint{}, fmt.Errorf("%w: workspace %s holds state point %s", ErrStatePointConflict, id, sp.ID())
	}
	return sp, nil
}
