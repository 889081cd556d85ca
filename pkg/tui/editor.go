// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"errors"
	"fmt"
	"strings"

	"carvel.dev/yamlpad/pkg/editor"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// EditorClosedMsg is emitted when editor is closed while embedded in Launcher.
type EditorClosedMsg struct {
	SessionID int
}

type promptKind int

const (
	promptNone promptKind = iota
	promptSaveAs
	promptOpen
)

type EditorOpts struct {
	Format yamlfmt.FormatOptions
	// Standalone editor quits the program when closed.
	Standalone bool
	Logger     zerolog.Logger
}

type Editor struct {
	session *editor.Session
	opts    EditorOpts

	textarea textarea.Model
	prompt   textinput.Model
	asking   promptKind

	status    string
	statusErr bool

	keys   EditorKeyMap
	help   help.Model
	width  int
	height int
}

var _ tea.Model = &Editor{}

func NewEditor(session *editor.Session, opts EditorOpts) *Editor {
	ta := textarea.New()
	ta.ShowLineNumbers = true
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.Placeholder = "# YAML goes here"
	ta.SetValue(session.Buffer.Text())
	ta.Focus()

	prompt := textinput.New()
	prompt.Prompt = "Path: "

	return &Editor{
		session:  session,
		opts:     opts,
		textarea: ta,
		prompt:   prompt,
		keys:     DefaultEditorKeyMap,
		help:     help.New(),
	}
}

func (m *Editor) Buffer() *editor.Buffer { return m.session.Buffer }

// Status returns last status message and whether it describes an error.
func (m *Editor) Status() (string, bool) { return m.status, m.statusErr }

func (m *Editor) Init() tea.Cmd {
	return textarea.Blink
}

func (m *Editor) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.asking != promptNone {
			return m, m.updatePrompt(msg)
		}

		switch {
		case key.Matches(msg, m.keys.Format):
			m.format()
			return m, nil
		case key.Matches(msg, m.keys.Save):
			return m, m.save()
		case key.Matches(msg, m.keys.SaveAs):
			return m, m.ask(promptSaveAs, m.Buffer().Path())
		case key.Matches(msg, m.keys.New):
			m.Buffer().Reset()
			m.textarea.Reset()
			m.setStatus("New file", false)
			return m, nil
		case key.Matches(msg, m.keys.Open):
			return m, m.ask(promptOpen, "")
		case key.Matches(msg, m.keys.Close):
			return m, m.close()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}

		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(msg)
		m.Buffer().SetText(m.textarea.Value())
		return m, cmd
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *Editor) format() {
	outcome := m.Buffer().Format(m.opts.Format)

	switch outcome.Kind {
	case yamlfmt.ResultFormatted:
		m.textarea.SetValue(m.Buffer().Text())
		m.setStatus(outcome.Message, false)
	default:
		m.setStatus(outcome.Title+": "+outcome.Message, outcome.IsError())
	}

	m.opts.Logger.Debug().Int("session", m.session.ID).Str("result", outcome.Kind.String()).Msg("formatted")
}

func (m *Editor) save() tea.Cmd {
	err := m.Buffer().Save()
	if errors.Is(err, editor.ErrNoPath) {
		return m.ask(promptSaveAs, "")
	}
	m.reportSave(err)
	return nil
}

func (m *Editor) reportSave(err error) {
	if err != nil {
		m.opts.Logger.Warn().Err(err).Int("session", m.session.ID).Msg("saving failed")
		m.setStatus(fmt.Sprintf("Error Saving File: Could not save file: %s", err), true)
		return
	}
	m.setStatus(fmt.Sprintf("Saved %s", m.Buffer().Path()), false)
}

func (m *Editor) close() tea.Cmd {
	if m.opts.Standalone {
		return tea.Quit
	}
	id := m.session.ID
	return func() tea.Msg { return EditorClosedMsg{SessionID: id} }
}

func (m *Editor) ask(kind promptKind, initial string) tea.Cmd {
	m.asking = kind
	m.prompt.SetValue(initial)
	m.textarea.Blur()
	return m.prompt.Focus()
}

func (m *Editor) updatePrompt(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.endPrompt()
		return nil

	case tea.KeyEnter:
		kind := m.asking
		path := strings.TrimSpace(m.prompt.Value())
		m.endPrompt()

		if len(path) == 0 {
			return nil
		}

		switch kind {
		case promptSaveAs:
			m.reportSave(m.Buffer().SaveAs(path))
		case promptOpen:
			err := m.Buffer().Load(path)
			if err != nil {
				m.setStatus(fmt.Sprintf("Error Opening File: Could not read file: %s", err), true)
				return nil
			}
			m.textarea.SetValue(m.Buffer().Text())
			m.setStatus(fmt.Sprintf("Opened %s", path), false)
		}
		return nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return cmd
}

func (m *Editor) endPrompt() {
	m.asking = promptNone
	m.prompt.Blur()
	m.prompt.Reset()
	m.textarea.Focus()
}

func (m *Editor) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

func (m *Editor) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// title, status and help lines
	m.textarea.SetWidth(width)
	m.textarea.SetHeight(max(height-4, 3))
}

func (m *Editor) View() string {
	buf := m.Buffer()

	title := titleStyle.Render("YAML Editor - " + buf.Title())

	sections := []string{title, m.textarea.View()}
	if m.asking != promptNone {
		sections = append(sections, m.prompt.View())
	} else {
		sections = append(sections, renderStatus(m.status, m.statusErr))
	}
	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
