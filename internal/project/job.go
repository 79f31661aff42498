// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/statespace/internal/paramspace"
	"github.com/vk/statespace/internal/workspace"
)

// Job is a handle on the workspace of one state point.
type Job struct {
	project    *Project
	statePoint paramspace.StatePoint
}

// ID returns the state point identity.
func (j *Job) ID() string {
	return j.statePoint.ID()
}

// StatePoint returns the state point of the job.
func (j *Job) StatePoint() paramspace.StatePoint {
	return j.statePoint
}

// Init creates the workspace if it does not exist yet and reports whether it
// did. An existing workspace is verified against the handle's state point.
func (j *Job) Init(ctx context.Context) (bool, error) {
	created, err := j.project.store.InitJob(ctx, j.ID(), j.statePoint.Canonical())
	if err != nil {
		return false, err
	}
	if created {
		return true, nil
	}

	stored, err := j.project.loadStatePoint(ctx, j.ID())
	if err != nil {
		return false, err
	}
	if !stored.Equal(j.statePoint) {
		return false, fmt.Errorf("%w: workspace %s", ErrStatePointConflict, j.ID())
	}
	return false, nil
}

// Exists reports whether the workspace has been initialized.
func (j *Job) Exists(ctx context.Context) (bool, error) {
	_, err := j.project.store.StatePoint(ctx, j.ID())
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, workspace.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
