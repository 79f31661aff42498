// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import "context"

// Loader is the interface for a format-specific sweep loader.
type Loader interface {
	// Load reads every sweep file found under the given paths and merges
	// them, in lexical file order, into a single Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
