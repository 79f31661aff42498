// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package inmemorystore

import (
	"context"
	"sort"
	"sync"

	"github.com/vk/statespace/internal/workspace"
)

// Store is an in-memory implementation of workspace.Store.
//
// Job state points live in a sync.Map keyed by job ID; LoadOrStore gives
// InitJob its create-once semantics without a global lock. The project name
// and index are guarded by mu.
type Store struct {
	jobs sync.Map // Key: job ID string, Value: []byte state point

	mu      sync.RWMutex
	project string
	index   []byte
}

var _ workspace.Store = (*Store)(nil)

// New creates a new, empty in-memory project store.
func New() *Store {
	return &Store{}
}

// ProjectName returns the recorded project name.
func (s *Store) ProjectName(ctx context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.project == "" {
		return "", workspace.ErrNotFound
	}
	return s.project, nil
}

// InitProject records the project name.
func (s *Store) InitProject(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.project = name
	return nil
}

// InitJob stores statePoint under id unless id is already present.
func (s *Store) InitJob(ctx context.Context, id string, statePoint []byte) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, loaded := s.jobs.LoadOrStore(id, clone(statePoint))
	return !loaded, nil
}

// StatePoint retrieves the state point stored under id.
func (s *Store) StatePoint(ctx context.Context, id string) ([]byte, error) {
	v, ok := s.jobs.Load(id)
	if !ok {
		return nil, workspace.ErrNotFound
	}
	return clone(v.([]byte)), nil
}

// IDs returns all job IDs, sorted.
func (s *Store) IDs(ctx context.Context) ([]string, error) {
	var ids []string
	s.jobs.Range(func(key, _ any) bool {
		ids = append(ids, key.(string))
		return true
	})
	sort.Strings(ids)
	return ids, nil
}

// ReadIndex returns the last written index.
func (s *Store) ReadIndex(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, workspace.ErrNotFound
	}
	return clone(s.index), nil
}

// WriteIndex replaces the index.
func (s *Store) WriteIndex(ctx context.Context, index []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.index = clone(index)
	return nil
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
