// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides utility functions shared across memoex packages.
//
// This package contains path expansion and display-width-aware string
// helpers used by the table renderer and configuration loading.
package util
