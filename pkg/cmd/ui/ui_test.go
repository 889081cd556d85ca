// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package ui_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"carvel.dev/yamlpad/pkg/cmd/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTYWritesToCustomWriters(t *testing.T) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tty := ui.NewCustomWriterTTY(false, stdout, stderr)
	tty.Printf("out %d\n", 1)
	tty.Warnf("warn\n")
	tty.Errorf("err\n")
	tty.Debugf("hidden\n")
	tty.PrintDiff("+ a\n- b\n")

	assert.Equal(t, "out 1\n+ a\n- b\n", stdout.String())
	assert.Equal(t, "warn\nerr\n", stderr.String())
}

func TestTTYDebug(t *testing.T) {
	stderr := &bytes.Buffer{}

	tty := ui.NewCustomWriterTTY(true, &bytes.Buffer{}, stderr)
	tty.Debugf("shown\n")
	tty.DebugWriter().Write([]byte("raw\n"))

	assert.Equal(t, "shown\nraw\n", stderr.String())
}

func TestNewLoggerWritesJSON(t *testing.T) {
	buf := &bytes.Buffer{}

	logger, err := ui.NewLogger(buf, "warn")
	require.NoError(t, err)

	logger.Info().Msg("skipped")
	logger.Warn().Str("path", "a.yml").Msg("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), `"path":"a.yml"`)
	assert.Contains(t, buf.String(), `"message":"kept"`)
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	_, err := ui.NewLogger(&bytes.Buffer{}, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown log level 'loud'")
}

func TestNewFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "yamlpad.log")

	logger, closer, err := ui.NewFileLogger(path, "debug")
	require.NoError(t, err)
	logger.Debug().Msg("to file")
	require.NoError(t, closer.Close())

	assert.FileExists(t, path)
}
