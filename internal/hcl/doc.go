// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package hcl provides the HCL implementation of config.Loader and the
// reader/writer for the project file kept at the root of a directory store.
//
// A sweep file declares an optional project name and any number of
// parameter blocks:
//
//	project = "morphct"
//
//	parameter "temperature" {
//	  description = "Temperature in Kelvin"
//	  values      = range(280, 320, 10)
//	}
//
// The values expression must evaluate to a list, tuple or set. A small set of
// collection functions (range, concat, flatten, distinct) is available.
package hcl
