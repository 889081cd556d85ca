// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package editor_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlpad/pkg/editor"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOpenAndClose(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.yaml")
	projectPath := filepath.Join(dir, "project.yaml")
	require.NoError(t, os.WriteFile(tokenPath, []byte("QUALTRICS_APITOKEN: x\n"), 0600))
	require.NoError(t, os.WriteFile(projectPath, []byte("project_id: p\n"), 0600))

	logs := &bytes.Buffer{}
	registry := editor.NewRegistry(zerolog.New(logs))

	first, err := registry.Open(tokenPath)
	require.NoError(t, err)
	second, err := registry.Open(projectPath)
	require.NoError(t, err)
	assert.Equal(t, 2, registry.Len())

	again, err := registry.Open(filepath.Join(dir, ".", "token.yaml"))
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 2, registry.Len())

	sessions := registry.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, first.ID, sessions[0].ID)
	assert.Equal(t, second.ID, sessions[1].ID)

	assert.True(t, registry.Close(first.ID))
	assert.False(t, registry.Close(first.ID))
	assert.Equal(t, 1, registry.Len())

	_, found := registry.Get(second.ID)
	assert.True(t, found)

	assert.Contains(t, logs.String(), `"message":"editor opened"`)
	assert.Contains(t, logs.String(), `"message":"editor closed"`)
}

func TestRegistryRequiresPath(t *testing.T) {
	registry := editor.NewRegistry(zerolog.Nop())

	_, err := registry.Open("")
	assert.True(t, errors.Is(err, editor.ErrNoFileSelected))
	assert.Equal(t, "Please select a file first.", err.Error())
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryOpenFailure(t *testing.T) {
	registry := editor.NewRegistry(zerolog.Nop())

	_, err := registry.Open(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryNewSessions(t *testing.T) {
	registry := editor.NewRegistry(zerolog.Nop())

	first := registry.New()
	second := registry.New()
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, registry.Len())
	assert.Equal(t, "", first.Buffer.Path())
}
