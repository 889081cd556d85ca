// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// RunLauncher shows launcher until user quits.
func RunLauncher(deps LauncherDeps) error {
	_, err := tea.NewProgram(NewLauncher(deps), tea.WithAltScreen()).Run()
	return err
}

// RunEditor shows standalone editor until user closes it.
func RunEditor(m *Editor) error {
	m.opts.Standalone = true
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
