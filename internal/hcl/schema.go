// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import "github.com/hashicorp/hcl/v2"

// sweepFile is the top-level structure of a sweep file.
type sweepFile struct {
	Project    *string           `hcl:"project,optional"`
	Parameters []*parameterBlock `hcl:"parameter,block"`
}

// parameterBlock represents a `parameter` block.
type parameterBlock struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Values      hcl.Expression `hcl:"values"`
}

// projectFile is the structure of the project file of a directory store.
type projectFile struct {
	Project string `hcl:"project"`
}
