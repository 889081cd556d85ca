// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlpad/pkg/editor"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ctrlF = tea.KeyMsg{Type: tea.KeyCtrlF}
	ctrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	altS  = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s"), Alt: true}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestEditor(t *testing.T, contents string, standalone bool) *Editor {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))

	session, err := editor.NewRegistry(zerolog.Nop()).Open(path)
	require.NoError(t, err)

	return NewEditor(session, EditorOpts{
		Format:     yamlfmt.DefaultFormatOptions(),
		Standalone: standalone,
		Logger:     zerolog.Nop(),
	})
}

func TestEditorFormat(t *testing.T) {
	m := newTestEditor(t, "a:\n    b: 1\n", false)

	m.Update(ctrlF)

	assert.Equal(t, "a:\n  b: 1\n", m.Buffer().Text())
	assert.Equal(t, "a:\n  b: 1\n", m.textarea.Value())

	status, isErr := m.Status()
	assert.Equal(t, "Formatted", status)
	assert.False(t, isErr)
	assert.True(t, m.Buffer().IsDirty())
}

func TestEditorFormatInvalidKeepsText(t *testing.T) {
	m := newTestEditor(t, "a: [1, 2\n", false)

	m.Update(ctrlF)

	assert.Equal(t, "a: [1, 2\n", m.Buffer().Text())
	assert.Equal(t, "a: [1, 2\n", m.textarea.Value())

	status, isErr := m.Status()
	assert.Contains(t, status, "YAML Formatting Error: Could not parse YAML.")
	assert.True(t, isErr)
}

func TestEditorTypingMarksDirty(t *testing.T) {
	m := newTestEditor(t, "", false)
	require.False(t, m.Buffer().IsDirty())

	m.Update(runes("a: 1"))

	assert.Equal(t, "a: 1", m.Buffer().Text())
	assert.True(t, m.Buffer().IsDirty())
	assert.Contains(t, m.View(), "doc.yaml *")
}

func TestEditorSaveWithoutPathAsksForPath(t *testing.T) {
	session := editor.NewRegistry(zerolog.Nop()).New()
	m := NewEditor(session, EditorOpts{Format: yamlfmt.DefaultFormatOptions(), Logger: zerolog.Nop()})

	m.Update(runes("a: 1"))
	m.Update(ctrlS)
	require.Equal(t, promptSaveAs, m.asking)

	path := filepath.Join(t.TempDir(), "saved")
	m.Update(runes(path))
	m.Update(enter)

	assert.Equal(t, promptNone, m.asking)
	assert.Equal(t, path+".yaml", m.Buffer().Path())

	contents, err := os.ReadFile(path + ".yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1", string(contents))

	status, isErr := m.Status()
	assert.Equal(t, "Saved "+path+".yaml", status)
	assert.False(t, isErr)
}

func TestEditorSaveAsCancel(t *testing.T) {
	m := newTestEditor(t, "a: 1\n", false)
	origPath := m.Buffer().Path()

	m.Update(altS)
	require.Equal(t, promptSaveAs, m.asking)
	m.Update(esc)

	assert.Equal(t, promptNone, m.asking)
	assert.Equal(t, origPath, m.Buffer().Path())
}

func TestEditorSaveFailure(t *testing.T) {
	m := newTestEditor(t, "a: 1\n", false)
	blocker := filepath.Join(t.TempDir(), "file.yaml")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0600))

	m.Update(altS)
	m.prompt.SetValue(filepath.Join(blocker, "inner.yaml"))
	m.Update(enter)

	status, isErr := m.Status()
	assert.Contains(t, status, "Error Saving File: Could not save file:")
	assert.True(t, isErr)
}

func TestEditorCloseEmbedded(t *testing.T) {
	m := newTestEditor(t, "a: 1\n", false)

	_, cmd := m.Update(esc)
	require.NotNil(t, cmd)
	assert.Equal(t, EditorClosedMsg{SessionID: m.session.ID}, cmd())
}

func TestEditorCloseStandalone(t *testing.T) {
	m := newTestEditor(t, "a: 1\n", true)

	_, cmd := m.Update(esc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestEditorResize(t *testing.T) {
	m := newTestEditor(t, "a: 1\n", false)

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	assert.Equal(t, 20, m.textarea.Height())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 2})
	assert.Equal(t, 3, m.textarea.Height())
}
