// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package settings persists small user preferences (eg last used file paths)
between runs in a TOML file.

Store is loaded explicitly at startup and saved explicitly after changes.
A file written by a newer major version of yamlpad is loaded read-only so
that its contents are not clobbered.
*/
package settings
