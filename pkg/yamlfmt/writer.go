// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package yamlfmt

import (
	"io"
	"strings"
)

type writer struct {
	writer io.Writer
	chunks []writerChunk
}

// writerChunk is a single output line.
type writerChunk struct {
	Indent  int
	Content string
	Comment bool
}

func newWriter(w io.Writer) *writer {
	return &writer{writer: w}
}

func (w *writer) AddContent(chunks ...writerChunk) {
	w.chunks = append(w.chunks, chunks...)
}

func (w *writer) String() string {
	var sb strings.Builder
	for _, chunk := range w.chunks {
		// blank lines (eg inside block scalars) carry no indentation
		if len(chunk.Content) > 0 {
			sb.WriteString(strings.Repeat(" ", chunk.Indent))
			sb.WriteString(chunk.Content)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (w *writer) Flush() error {
	if w.writer == nil {
		return nil
	}
	_, err := io.WriteString(w.writer, w.String())
	return err
}

// inlineAfterDash folds first content line of chunks into a sequence dash
// placed at dashCol. Comments preceding that line are moved above the dash.
func inlineAfterDash(chunks []writerChunk, dashCol int) []writerChunk {
	var leading []writerChunk
	idx := 0
	for idx < len(chunks) && chunks[idx].Comment {
		comment := chunks[idx]
		comment.Indent = dashCol
		leading = append(leading, comment)
		idx++
	}

	if idx == len(chunks) {
		return append(leading, writerChunk{Indent: dashCol, Content: "-"})
	}

	first := chunks[idx]
	gap := first.Indent - dashCol - 1
	if gap < 1 {
		gap = 1
	}

	result := append(leading, writerChunk{
		Indent:  dashCol,
		Content: "-" + strings.Repeat(" ", gap) + first.Content,
	})
	return append(result, chunks[idx+1:]...)
}
