// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"fmt"

	"github.com/vk/statespace/internal/paramspace"
)

// DefaultProjectName is used when no sweep file declares a project.
const DefaultProjectName = "statespace"

// Model is the unified, format-agnostic representation of a sweep.
type Model struct {
	ProjectName string
	Space       *paramspace.Space
	// Files lists the sweep files the model was loaded from.
	Files []string
}

// NewModel creates an empty model with an empty parameter space.
func NewModel() *Model {
	return &Model{Space: paramspace.NewSpace()}
}

// SetProjectName records the project name declared in file. Two files
// declaring different names is an error.
func (m *Model) SetProjectName(name, file string) error {
	if name == "" {
		return nil
	}
	if m.ProjectName != "" && m.ProjectName != name {
		return fmt.Errorf("%s: project %q conflicts with previously declared project %q", file, name, m.ProjectName)
	}
	m.ProjectName = name
	return nil
}

// Name returns the declared project name, or DefaultProjectName.
func (m *Model) Name() string {
	if m.ProjectName == "" {
		return DefaultProjectName
	}
	return m.ProjectName
}

// Merge appends the parameters of other after those already in m. source
// names other in error messages.
func (m *Model) Merge(other *Model, source string) error {
	if err := m.SetProjectName(other.ProjectName, source); err != nil {
		return err
	}
	for _, p := range other.Space.Parameters() {
		if err := m.Space.Add(p); err != nil {
			return fmt.Errorf("%s: %w", source, err)
		}
	}
	m.Files = append(m.Files, other.Files...)
	return nil
}
