// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package fsstore provides a directory-backed implementation of
// workspace.Store.
//
// Layout under the project root:
//
//	statespace.hcl                    project file (project = "<name>")
//	statepoints.json                  consolidated state point index
//	workspace/<id>/statepoint.json    one directory per job
//
// Every file is written to a temporary sibling and renamed into place, so an
// interrupted run never leaves a truncated state point behind.
package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vk/statespace/internal/fsutil"
	"github.com/vk/statespace/internal/hcl"
	"github.com/vk/statespace/internal/workspace"
)

const (
	ProjectFileName    = "statespace.hcl"
	IndexFileName      = "statepoints.json"
	WorkspaceDirName   = "workspace"
	StatePointFileName = "statepoint.json"
)

// Store is a workspace.Store rooted at a directory.
type Store struct {
	root string
}

var _ workspace.Store = (*Store)(nil)

// New creates a store rooted at root. Nothing is created on disk until the
// project or a job is initialized.
func New(root string) *Store {
	return &Store{root: root}
}

// Root returns the project root directory.
func (s *Store) Root() string {
	return s.root
}

// JobDir returns the workspace directory of id.
func (s *Store) JobDir(id string) string {
	return filepath.Join(s.root, WorkspaceDirName, id)
}

// ProjectName reads the project file.
func (s *Store) ProjectName(ctx context.Context) (string, error) {
	path := filepath.Join(s.root, ProjectFileName)
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", workspace.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return hcl.DecodeProjectFile(path, src)
}

// InitProject creates the root directory and writes the project file.
func (s *Store) InitProject(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	existing, err := s.ProjectName(ctx)
	if err == nil && existing == name {
		return nil
	}
	if err != nil && !errors.Is(err, workspace.ErrNotFound) {
		return err
	}

	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create project root: %w", err)
	}
	return fsutil.WriteFileAtomic(filepath.Join(s.root, ProjectFileName), hcl.EncodeProjectFile(name), 0o644)
}

// InitJob creates the workspace directory of id and writes its state point.
func (s *Store) InitJob(ctx context.Context, id string, statePoint []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if err := validateID(id); err != nil {
		return false, err
	}

	dir := s.JobDir(id)
	path := filepath.Join(dir, StatePointFileName)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("failed to create workspace %s: %w", id, err)
	}
	if err := fsutil.WriteFileAtomic(path, statePoint, 0o644); err != nil {
		return false, fmt.Errorf("failed to write state point of %s: %w", id, err)
	}
	return true, nil
}

// StatePoint reads the stored state point of id.
func (s *Store) StatePoint(ctx context.Context, id string) ([]byte, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.JobDir(id), StatePointFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, workspace.ErrNotFound
	}
	return data, err
}

// IDs lists every workspace directory holding a state point.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(s.root, WorkspaceDirName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		_, err := os.Stat(filepath.Join(s.JobDir(e.Name()), StatePointFileName))
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to inspect workspace %s: %w", e.Name(), err)
		}
		ids = append(ids, e.Name())
	}
	sort.Strings(ids)
	return ids, nil
}

// ReadIndex reads the state point index.
func (s *Store) ReadIndex(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, IndexFileName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, workspace.ErrNotFound
	}
	return data, err
}

// WriteIndex replaces the state point index.
func (s *Store) WriteIndex(ctx context.Context, index []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create project root: %w", err)
	}
	return fsutil.WriteFileAtomic(filepath.Join(s.root, IndexFileName), index, 0o644)
}

func validateID(id string) error {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return fmt.Errorf("invalid job id %q", id)
	}
	return nil
}
