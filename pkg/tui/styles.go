// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)

	labelStyle        = lipgloss.NewStyle().Width(22)
	focusedLabelStyle = labelStyle.Foreground(lipgloss.Color("205")).Bold(true)
	pathStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	focusedPathStyle  = pathStyle.BorderForeground(lipgloss.Color("205"))
	emptyPathStyle    = lipgloss.NewStyle().Faint(true)

	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	statusErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func renderStatus(status string, isErr bool) string {
	if len(status) == 0 {
		return ""
	}
	if isErr {
		return statusErrorStyle.Render(status)
	}
	return statusStyle.Render(status)
}
