// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package editor holds editing state independent of any particular terminal
or windowing toolkit.

A Buffer owns text contents, the file it is associated with and whether it
has unsaved changes. Formatting a Buffer never loses text: contents are only
replaced when source parses successfully.

A Registry keeps track of open editor sessions so that the same file is not
opened twice and closed sessions are released.
*/
package editor
