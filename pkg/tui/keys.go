// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package tui

import "github.com/charmbracelet/bubbles/key"

type EditorKeyMap struct {
	Format key.Binding
	Save   key.Binding
	SaveAs key.Binding
	New    key.Binding
	Open   key.Binding
	Close  key.Binding
	Help   key.Binding
}

var DefaultEditorKeyMap = EditorKeyMap{
	Format: key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "format")),
	Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	SaveAs: key.NewBinding(key.WithKeys("alt+s"), key.WithHelp("alt+s", "save as")),
	New:    key.NewBinding(key.WithKeys("ctrl+n"), key.WithHelp("ctrl+n", "new")),
	Open:   key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open")),
	Close:  key.NewBinding(key.WithKeys("esc", "ctrl+q"), key.WithHelp("esc", "close")),
	Help:   key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
}

func (k EditorKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Format, k.Save, k.Close, k.Help}
}

func (k EditorKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Format, k.Save, k.SaveAs},
		{k.New, k.Open, k.Close, k.Help},
	}
}

type LauncherKeyMap struct {
	EditToken   key.Binding
	EditProject key.Binding
	SetPath     key.Binding
	Next        key.Binding
	Check       key.Binding
	Quit        key.Binding
	Help        key.Binding
}

var DefaultLauncherKeyMap = LauncherKeyMap{
	EditToken:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "edit token file")),
	EditProject: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "edit project file")),
	SetPath:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set path")),
	Next:        key.NewBinding(key.WithKeys("tab", "down", "up"), key.WithHelp("tab", "next field")),
	Check:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "check connection")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

func (k LauncherKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.EditToken, k.EditProject, k.Check, k.Quit, k.Help}
}

func (k LauncherKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.EditToken, k.EditProject, k.Check},
		{k.SetPath, k.Next, k.Quit, k.Help},
	}
}
