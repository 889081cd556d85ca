// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package tui is the terminal front end: a Launcher for picking the token and
project files, checking them and opening editors, and an Editor with a line
numbered text area bound to an editor.Buffer.

Models only translate key presses into calls on editor, settings and
connection packages; all state that matters lives there.
*/
package tui
