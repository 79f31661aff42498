// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package paramspace models the parameter space of a sweep and enumerates
// the state points it spans.
//
// # Core Concepts
//
//   - Space: an ordered list of parameters, each with a list of candidate
//     values. Declaration order decides the order of the enumerated
//     combinations, never their content.
//
//   - StatePoint: one assignment of a single value to every parameter. A state
//     point is immutable and is identified by the MD5 of its canonical JSON
//     form (object keys sorted, compact), so equal assignments always map to
//     the same workspace regardless of declaration order.
//
// Candidate values are cty.Value so that numbers, strings, nulls and nested
// lists coming from HCL or YAML sweep files share one representation.
//
// Enumeration follows nested-loop order: the last declared parameter varies
// fastest. A parameter with no candidates collapses the whole product to zero
// combinations; Validate reports that case for callers that want to reject it.
package paramspace
