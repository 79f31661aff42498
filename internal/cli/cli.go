// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/statespace/internal/app"
)

// Environment variables consulted for flag defaults.
const (
	EnvRoot      = "STATESPACE_ROOT"
	EnvStore     = "STATESPACE_STORE"
	EnvLogLevel  = "STATESPACE_LOG_LEVEL"
	EnvLogFormat = "STATESPACE_LOG_FORMAT"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. getenv supplies defaults for the
// options that have an environment variable; it may be nil. It returns a
// populated Config, a boolean indicating if the program should exit cleanly,
// or an ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	envOr := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	flagSet := flag.NewFlagSet("statespace", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
statespace - Initialize the job workspaces of a parameter sweep.

Usage:
  statespace [options] [SWEEP_PATH]

Arguments:
  SWEEP_PATH
    Path to a single .hcl/.yaml file or a directory containing sweep files.

Options:
`)
		flagSet.PrintDefaults()
	}

	sweepFlag := flagSet.String("sweep", "", "Path to the sweep file or directory.")
	sFlag := flagSet.String("s", "", "Path to the sweep file or directory (shorthand).")
	rootFlag := flagSet.String("root", envOr(EnvRoot, "."), "Project root directory. Env: "+EnvRoot)
	nameFlag := flagSet.String("name", "", "Project name, overriding the one declared in the sweep.")
	storeFlag := flagSet.String("store", envOr(EnvStore, app.StoreFS), "Project store backend. Options: 'fs' or 'memory'. Env: "+EnvStore)
	strictFlag := flagSet.Bool("strict", false, "Fail when a parameter has no candidate values instead of creating zero jobs.")
	dryRunFlag := flagSet.Bool("dry-run", false, "Enumerate state points and report without writing anything.")
	logFormatFlag := flagSet.String("log-format", envOr(EnvLogFormat, app.LogFormatText), "Log output format. Options: 'text' or 'json'. Env: "+EnvLogFormat)
	logLevelFlag := flagSet.String("log-level", envOr(EnvLogLevel, app.LogLevelInfo), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Env: "+EnvLogLevel)

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *sweepFlag != "" {
		path = *sweepFlag
	} else if *sFlag != "" {
		path = *sFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Sweep path determined.", "path", path)

	if path == "" {
		slog.Debug("No sweep path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := app.NewConfig(app.Config{
		SweepPath:   path,
		ProjectRoot: *rootFlag,
		ProjectName: *nameFlag,
		Store:       strings.ToLower(*storeFlag),
		Strict:      *strictFlag,
		DryRun:      *dryRunFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
