// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package inmemorystore provides an ephemeral, thread-safe, in-memory
// implementation of the workspace.Store interface. It backs dry runs and
// tests, or any scenario where workspaces do not need to outlive the process.
package inmemorystore
