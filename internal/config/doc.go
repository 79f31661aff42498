// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config defines the format-agnostic sweep model, along with the
// Loader interface implemented by the concrete sweep file formats.
//
// The `config.Model` is the single source of truth for the enumerator and
// the materializer. Concrete loaders for HCL and YAML live in separate
// packages.
package config
