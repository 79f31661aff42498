// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"errors"
	"fmt"
)

// Store backends selectable through Config.Store.
const (
	StoreFS     = "fs"
	StoreMemory = "memory"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	SweepPath   string // hcl/yaml file or directory
	ProjectRoot string
	ProjectName string // overrides the name declared in the sweep
	Store       string

	Strict bool
	DryRun bool

	LogFormat string
	LogLevel  string
}

// NewConfig applies defaults to cfg and validates it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.SweepPath == "" {
		return nil, errors.New("SweepPath is a required configuration field and cannot be empty")
	}
	if cfg.ProjectRoot == "" {
		cfg.ProjectRoot = "."
	}
	if cfg.Store == "" {
		cfg.Store = StoreFS
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelInfo
	}

	switch cfg.Store {
	case StoreFS, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid store %q: must be %q or %q", cfg.Store, StoreFS, StoreMemory)
	}
	switch cfg.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, LogFormatText, LogFormatJSON)
	}
	if _, ok := logLevels[cfg.LogLevel]; !ok {
		return nil, fmt.Errorf("invalid log level %q: must be %q, %q, %q or %q",
			cfg.LogLevel, LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError)
	}

	return &cfg, nil
}
