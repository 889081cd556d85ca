// Copyright 2020 VMware, Inc.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

type TTY struct {
	debug  bool
	stdout io.Writer
	stderr io.Writer

	colorStdout bool
	colorStderr bool
}

var _ UI = TTY{}

func NewTTY(debug bool) TTY {
	return TTY{debug, os.Stdout, os.Stderr, IsTerminal(os.Stdout), IsTerminal(os.Stderr)}
}

func (t TTY) Printf(str string, args ...interface{}) {
	fmt.Fprintf(t.stdout, str, args...)
}

func (t TTY) Warnf(str string, args ...interface{}) {
	msg := fmt.Sprintf(str, args...)
	if t.colorStderr {
		msg = color.YellowString("%s", msg)
	}
	fmt.Fprint(t.stderr, msg)
}

func (t TTY) Errorf(str string, args ...interface{}) {
	msg := fmt.Sprintf(str, args...)
	if t.colorStderr {
		msg = color.RedString("%s", msg)
	}
	fmt.Fprint(t.stderr, msg)
}

func (t TTY) Debugf(str string, args ...interface{}) {
	if t.debug {
		fmt.Fprintf(t.stderr, str, args...)
	}
}

func (t TTY) DebugWriter() io.Writer {
	if t.debug {
		return t.stderr
	}
	return noopWriter{}
}

// PrintDiff writes line diff (as produced by difflib) to stdout
// coloring added and removed lines when stdout is a terminal.
func (t TTY) PrintDiff(diff string) {
	if !t.colorStdout {
		fmt.Fprint(t.stdout, diff)
		return
	}
	lines := strings.SplitAfter(diff, "\n")
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			line = color.GreenString("%s", line)
		case strings.HasPrefix(line, "-"):
			line = color.RedString("%s", line)
		}
		fmt.Fprint(t.stdout, line)
	}
}

type noopWriter struct{}

var _ io.Writer = noopWriter{}

func (w noopWriter) Write(data []byte) (int, error) { return len(data), nil }

// Used for testing whether TTY writes correct output to stdout/stderr
func NewCustomWriterTTY(debug bool, stdout, stderr io.Writer) TTY {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	return TTY{debug, stdout, stderr, IsTerminal(stdout), IsTerminal(stderr)}
}

// IsTerminal reports whether w is a terminal (color and TUI capable).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
