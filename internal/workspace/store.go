// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package workspace defines the interface for persisting a project, its job
// workspaces and the consolidated state point index.
//
// # Lifecycle
//
// A job workspace has exactly one transition:
//
//	uninitialized -> (InitJob) -> initialized
//
// InitJob is idempotent. Calling it again for an existing workspace leaves
// the stored state point untouched and reports created=false, which makes a
// whole materialization run safe to repeat after a partial failure.
//
// Stores deal in canonical state point bytes and identifiers only; hashing
// and decoding belong to the paramspace package.
package workspace

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a workspace or index does not exist.
var ErrNotFound = errors.New("not found")

// Store is the interface for a persistent project store.
//
// Implementations are used by a single writer per run and are not required
// to guard against concurrent writers from other processes.
type Store interface {
	// ProjectName returns the name recorded for the project, or ErrNotFound
	// if the project has not been initialized.
	ProjectName(ctx context.Context) (string, error)

	// InitProject records the project name. Recording the same name again is
	// a no-op. Callers are responsible for rejecting a different name.
	InitProject(ctx context.Context, name string) error

	// InitJob creates the workspace for id holding statePoint unless it
	// already exists. It returns whether the workspace was created.
	InitJob(ctx context.Context, id string, statePoint []byte) (bool, error)

	// StatePoint returns the stored state point of id, or ErrNotFound.
	StatePoint(ctx context.Context, id string) ([]byte, error)

	// IDs returns the identifiers of all workspaces, sorted.
	IDs(ctx context.Context) ([]string, error)

	// ReadIndex returns the last written index, or ErrNotFound.
	ReadIndex(ctx context.Context) ([]byte, error)

	// WriteIndex replaces the consolidated state point index.
	WriteIndex(ctx context.Context, index []byte) error
}
