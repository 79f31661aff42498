// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package materialize creates one job workspace per state point and writes
// the project's state point index.
//
// Jobs are initialized sequentially in the given order. The first failure
// aborts the run; because job initialization is idempotent the whole run can
// simply be repeated.
package materialize

import (
	"context"
	"fmt"

	"github.com/vk/statespace/internal/ctxlog"
	"github.com/vk/statespace/internal/paramspace"
	"github.com/vk/statespace/internal/project"
)

// Project is the part of project.Project used by the materializer.
type Project interface {
	OpenJob(sp paramspace.StatePoint) *project.Job
	WriteStatePoints(ctx context.Context) (int, error)
}

// Options tunes a materialization run.
type Options struct {
	// DryRun computes the report without writing anything.
	DryRun bool
}

// Report summarizes a materialization run.
type Report struct {
	// Total is the number of state points processed, duplicates included.
	Total int
	// Created is the number of workspaces created by this run.
	Created int
	// Existing is the number of state points whose workspace already existed.
	Existing int
	// Indexed is the number of entries in the written index.
	Indexed int
	DryRun  bool
}

// String renders the one-line summary printed at the end of a run.
func (r Report) String() string {
	if r.DryRun {
		return fmt.Sprintf("Dry run. (%d total jobs, %d new)", r.Total, r.Created)
	}
	return fmt.Sprintf("Initialized. (%d total jobs)", r.Total)
}

// Run opens and initializes the job of every state point, then writes the
// state point index.
func Run(ctx context.Context, p Project, points []paramspace.StatePoint, opts Options) (Report, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Materialization started.", "state_points", len(points), "dry_run", opts.DryRun)

	report := Report{DryRun: opts.DryRun}
	// Ids a dry run has already counted, since nothing is written to the store.
	seen := make(map[string]struct{})
	for _, sp := range points {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		job := p.OpenJob(sp)
		var created bool
		var err error
		if opts.DryRun {
			if _, dup := seen[job.ID()]; !dup {
				var exists bool
				exists, err = job.Exists(ctx)
				created = !exists
				seen[job.ID()] = struct{}{}
			}
		} else {
			created, err = job.Init(ctx)
		}
		if err != nil {
			return report, fmt.Errorf("failed to initialize job %s: %w", job.ID(), err)
		}

		report.Total++
		if created {
			report.Created++
		} else {
			report.Existing++
		}
		logger.Debug("Job initialized.", "id", job.ID(), "created", created, "state_point", sp.String())
	}

	if opts.DryRun {
		return report, nil
	}

	n, err := p.WriteStatePoints(ctx)
	if err != nil {
		return report, err
	}
	report.Indexed = n

	logger.Info("Materialization finished.", "total", report.Total, "created", report.Created, "existing", report.Existing, "indexed", report.Indexed)
	return report, nil
}
