// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package version holds the version of yamlpad (set at build time).
package version

// Version is overridden via -ldflags "-X carvel.dev/yamlpad/pkg/version.Version=..."
var Version = "0.1.0"
