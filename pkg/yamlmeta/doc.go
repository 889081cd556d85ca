// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package yamlmeta parses YAML streams into a data structure (tree of
yamlmeta.Node's) on which comments are attached.

Parsing is delegated to gopkg.in/yaml.v3 which already associates head, line
and foot comments with nodes; this package flattens that into Comment values
and keeps mapping key order, anchors, aliases and explicit tags so that the
tree can be printed back without losing information.
*/
package yamlmeta
