// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading YAML from
files or file-like Source's and for writing results back to disk.

Writes go through WriteFileAtomic so that a failed save never leaves a
partially written file behind. Filesystem failures are reported as *IOError.
*/
package files
