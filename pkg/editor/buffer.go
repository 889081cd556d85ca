// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package editor

import (
	"errors"
	"fmt"
	"path/filepath"

	"carvel.dev/yamlpad/pkg/filepos"
	"carvel.dev/yamlpad/pkg/files"
	"carvel.dev/yamlpad/pkg/yamlfmt"
)

// ErrNoPath is returned by Save when buffer has never been associated
// with a file. Callers are expected to ask for a path and use SaveAs.
var ErrNoPath = errors.New("Expected buffer to have a file path (use Save As)")

const (
	untitledName = "New File"
	filePerm     = 0644
)

type Buffer struct {
	text  string
	path  string
	dirty bool
}

// New returns an empty buffer not associated with any file.
func New() *Buffer {
	return &Buffer{}
}

// Open loads file at path into a new buffer.
func Open(path string) (*Buffer, error) {
	b := New()
	err := b.Load(path)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Buffer) Text() string  { return b.text }
func (b *Buffer) Path() string  { return b.path }
func (b *Buffer) IsDirty() bool { return b.dirty }

// Title is a short description of buffer suitable for a window title.
func (b *Buffer) Title() string {
	name := untitledName
	if len(b.path) > 0 {
		name = b.path
	}
	if b.dirty {
		name += " *"
	}
	return name
}

// SetText replaces contents marking buffer dirty when they differ.
func (b *Buffer) SetText(text string) {
	if text != b.text {
		b.text = text
		b.dirty = true
	}
}

// Reset clears contents and forgets associated file.
func (b *Buffer) Reset() {
	b.text = ""
	b.path = ""
	b.dirty = false
}

// Load replaces contents with file at path. Buffer is left untouched on failure.
func (b *Buffer) Load(path string) error {
	data, err := files.ReadFile(path)
	if err != nil {
		return err
	}

	b.text = string(data)
	b.path = path
	b.dirty = false
	return nil
}

// Save writes contents to the associated file.
func (b *Buffer) Save() error {
	if len(b.path) == 0 {
		return ErrNoPath
	}

	err := files.WriteFileAtomic(b.path, []byte(b.text), filePerm)
	if err != nil {
		return err
	}

	b.dirty = false
	return nil
}

// SaveAs associates buffer with path (adding .yaml extension if missing)
// and saves it. Association is kept only if write succeeds.
func (b *Buffer) SaveAs(path string) error {
	if len(path) == 0 {
		return ErrNoPath
	}

	path = files.EnsureYAMLExt(path)

	err := files.WriteFileAtomic(path, []byte(b.text), filePerm)
	if err != nil {
		return err
	}

	b.path = path
	b.dirty = false
	return nil
}

// Outcome describes what Format did to the buffer.
type Outcome struct {
	Kind    yamlfmt.ResultKind
	Changed bool
	Title   string
	Message string
	// Position of the syntax error, if known.
	Position *filepos.Position
}

// IsError reports whether outcome should be presented as an error.
func (o Outcome) IsError() bool { return o.Kind == yamlfmt.ResultParseFailed }

// name is used in error positions; untitled buffers have none.
func (b *Buffer) name() string {
	if len(b.path) == 0 {
		return ""
	}
	return filepath.Base(b.path)
}

// Format reformats contents. Contents are replaced only on success.
func (b *Buffer) Format(opts yamlfmt.FormatOptions) Outcome {
	result := yamlfmt.FormatWithName(b.text, b.name(), opts)

	switch result.Kind {
	case yamlfmt.ResultEmpty:
		return Outcome{
			Kind:    result.Kind,
			Title:   "Nothing to Format",
			Message: "The editor is empty.",
		}

	case yamlfmt.ResultParseFailed:
		msg := fmt.Sprintf("Could not parse YAML. Please check your syntax.\n\nError: %s", result.Err.Error())
		if len(result.Err.Excerpt) > 0 {
			msg += "\n\n" + result.Err.Excerpt
		}
		return Outcome{
			Kind:     result.Kind,
			Title:    "YAML Formatting Error",
			Message:  msg,
			Position: result.Err.Position,
		}

	default:
		b.SetText(result.Text)
		return Outcome{
			Kind:    result.Kind,
			Changed: result.Changed,
			Title:   "Formatted",
			Message: result.Message(),
		}
	}
}
