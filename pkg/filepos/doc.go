// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package filepos provides the concept of Position: a source name (usually a file),
line number and (when the parser reports one) column within that source.

File positions are crucial when reporting errors to the user. It is often
even more useful to share the actual source line as well. For this reason
Position also contains a cached copy of the source line at the Position.

The zero-value of Position (can be created using NewUnknownPosition())
represents a location that the parser could not determine.
*/
package filepos
