// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of yamlpad.

This codebase is organized into layers. Each package has a concise
responsibility and depends on other packages only as much as required.

In the inventory, below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

yamlpad is built into a single command-line tool:

	./cmd/yamlpad

# Commands

Commands format files (fmt), check connection files (check), open the
editor directly (edit) and manage saved settings (settings). Without a
subcommand the launcher is shown.

	(1) => pkg/cmd => (9)

# Terminal UI

The launcher picks the Qualtrics token file and the project config file.
Editors show a line-numbered text area with format and save actions.

	(1) => pkg/tui => (4)

# Editing

Buffers hold text being edited, the registry tracks open editors.

	(2) => pkg/editor => (3)

# Connection

Validation of the token and project config files. No network access
is made.

	(3) => pkg/connection => (0)

# Formatting

Reformatting YAML with consistent indentation while keeping comments,
key order and scalar styles.

	(4) => pkg/yamlfmt => (2)

# YAML Structures

yamlpad delegates parsing YAML to gopkg.in/yaml.v3 and converts the
result into a composite tree of its own yamlmeta.Node structure that
keeps comments and presentation details next to values.

	(2) => pkg/yamlmeta => (1)
	(3) => pkg/filepos => (0)

# Configuration

Application configuration (defaults, config file, environment, flags)
and persisted settings remembered between runs.

	(1) => pkg/config => (3)
	(3) => pkg/settings => (2)

# Utilities

	(3) => pkg/files => (0)
	(2) => pkg/cmd/ui => (0)
	(3) => pkg/version => (0)

# Dependencies

Each package's dependencies on other packages within this module are as follows
(if a package is not listed, it has no dependencies on other packages within
this module):

	pkg/cmd:
	- pkg/cmd/ui
	- pkg/config
	- pkg/connection
	- pkg/editor
	- pkg/files
	- pkg/settings
	- pkg/tui
	- pkg/version
	- pkg/yamlfmt
	pkg/tui:
	- pkg/connection
	- pkg/editor
	- pkg/settings
	- pkg/yamlfmt
	pkg/editor:
	- pkg/files
	- pkg/filepos
	- pkg/yamlfmt
	pkg/config:
	- pkg/connection
	- pkg/version
	- pkg/yamlfmt
	pkg/settings:
	- pkg/files
	- pkg/version
	pkg/yamlfmt:
	- pkg/yamlmeta
	- pkg/filepos
	pkg/yamlmeta:
	- pkg/filepos
*/
package pkg
