// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"

	"carvel.dev/yamlpad/pkg/connection"
	"carvel.dev/yamlpad/pkg/editor"
	"carvel.dev/yamlpad/pkg/settings"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

type LauncherDeps struct {
	Store     *settings.Store
	Registry  *editor.Registry
	Validator connection.Validator
	Format    yamlfmt.FormatOptions
	Logger    zerolog.Logger
}

type pathField struct {
	label       string
	settingsKey string
	value       string
}

type Launcher struct {
	deps LauncherDeps

	fields  []*pathField
	focus   int
	input   textinput.Model
	editing bool

	status    string
	statusErr bool

	active     *Editor
	lastWindow tea.WindowSizeMsg

	keys LauncherKeyMap
	help help.Model
}

var _ tea.Model = &Launcher{}

func NewLauncher(deps LauncherDeps) *Launcher {
	fields := []*pathField{
		{label: "Qualtrics Token File", settingsKey: settings.TokenPathKey},
		{label: "Project Config File", settingsKey: settings.ProjectConfigPathKey},
	}
	for _, field := range fields {
		field.value = deps.Store.Get(field.settingsKey)
	}

	input := textinput.New()
	input.Prompt = "Path: "

	return &Launcher{
		deps:   deps,
		fields: fields,
		input:  input,
		keys:   DefaultLauncherKeyMap,
		help:   help.New(),
	}
}

// Status returns last status message and whether it describes an error.
func (m *Launcher) Status() (string, bool) { return m.status, m.statusErr }

// ActiveEditor returns editor currently shown, if any.
func (m *Launcher) ActiveEditor() *Editor { return m.active }

func (m *Launcher) Init() tea.Cmd { return nil }

func (m *Launcher) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.lastWindow = msg
		m.help.Width = msg.Width
		if m.active != nil {
			m.active.Update(msg)
		}
		return m, nil

	case EditorClosedMsg:
		m.deps.Registry.Close(msg.SessionID)
		m.active = nil
		return m, nil
	}

	if m.active != nil {
		if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyCtrlC {
			return m, m.quit()
		}
		_, cmd := m.active.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.editing {
		return m, m.updateInput(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, m.quit()
	case key.Matches(keyMsg, m.keys.EditToken):
		return m, m.openEditor(m.fields[0].value)
	case key.Matches(keyMsg, m.keys.EditProject):
		return m, m.openEditor(m.fields[1].value)
	case key.Matches(keyMsg, m.keys.Check):
		m.check()
	case key.Matches(keyMsg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.fields)
	case key.Matches(keyMsg, m.keys.SetPath):
		m.editing = true
		m.input.SetValue(m.fields[m.focus].value)
		return m, m.input.Focus()
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *Launcher) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.endInput()
		return nil

	case tea.KeyEnter:
		m.setPath(m.focus, strings.TrimSpace(m.input.Value()))
		m.endInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Launcher) endInput() {
	m.editing = false
	m.input.Blur()
	m.input.Reset()
}

func (m *Launcher) setPath(idx int, path string) {
	field := m.fields[idx]
	field.value = path

	if m.deps.Store.Set(field.settingsKey, path) {
		m.saveSettings()
	}
}

func (m *Launcher) saveSettings() {
	for _, field := range m.fields {
		m.deps.Store.Set(field.settingsKey, field.value)
	}

	if m.deps.Store.IsReadOnly() {
		return
	}

	err := m.deps.Store.Save()
	if err != nil {
		m.deps.Logger.Warn().Err(err).Str("path", m.deps.Store.Path()).Msg("saving settings failed")
		m.setStatus(fmt.Sprintf("Could not save settings: %s", err), true)
	}
}

func (m *Launcher) openEditor(path string) tea.Cmd {
	session, err := m.deps.Registry.Open(path)
	if err != nil {
		if errors.Is(err, editor.ErrNoFileSelected) {
			m.setStatus("No File: "+err.Error(), true)
		} else {
			m.setStatus(fmt.Sprintf("Error Opening File: Could not read file: %s", err), true)
		}
		return nil
	}

	m.active = NewEditor(session, EditorOpts{Format: m.deps.Format, Logger: m.deps.Logger})
	if m.lastWindow.Width > 0 {
		m.active.Update(m.lastWindow)
	}
	return m.active.Init()
}

func (m *Launcher) check() {
	ok, msg := m.deps.Validator.Check(m.fields[0].value, m.fields[1].value)
	if ok {
		m.setStatus("Connection Success: "+msg, false)
	} else {
		m.setStatus("Connection Failed: "+msg, true)
	}
}

func (m *Launcher) quit() tea.Cmd {
	m.saveSettings()
	return tea.Quit
}

func (m *Launcher) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Launcher) View() string {
	if m.active != nil {
		return m.active.View()
	}

	sections := []string{titleStyle.Render("Qualtrics Utility Launcher"), ""}

	for i, field := range m.fields {
		label, box := labelStyle, pathStyle
		if i == m.focus {
			label, box = focusedLabelStyle, focusedPathStyle
		}

		value := field.value
		switch {
		case m.editing && i == m.focus:
			value = m.input.View()
		case len(value) == 0:
			value = emptyPathStyle.Render("(not set)")
		}

		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, label.Render(field.label), box.Render(value)))
	}

	sections = append(sections, "", renderStatus(m.status, m.statusErr), m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
