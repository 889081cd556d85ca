// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// NewLogger builds structured logger writing to w at given level
// (debug, info, warn, error; empty means info). Terminals get human
// readable output, everything else gets JSON lines.
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}

	if IsTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Str("app", "yamlpad").Logger(), nil
}

// NewFileLogger is like NewLogger but appends to file at path. It is used
// while terminal UI owns the screen. Returned closer releases the file.
func NewFileLogger(path, level string) (zerolog.Logger, io.Closer, error) {
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("Creating log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("Opening log file: %w", err)
	}

	logger, err := NewLogger(file, level)
	if err != nil {
		file.Close()
		return zerolog.Nop(), nil, err
	}
	return logger, file, nil
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "":
		return zerolog.InfoLevel, nil
	case "disabled", "off":
		return zerolog.Disabled, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("Unknown log level '%s' (expected one of debug, info, warn, error)", level)
	}
	return lvl, nil
}
