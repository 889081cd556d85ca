// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlpad/pkg/config"
	"carvel.dev/yamlpad/pkg/connection"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("HOME", dir)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load("", nil)
	require.NoError(t, err)

	opts, err := cfg.FormatOptions()
	require.NoError(t, err)
	assert.Equal(t, yamlfmt.DefaultFormatOptions(), opts)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "config", "yamlpad", "settings.toml"), cfg.Settings.Path)
	assert.Equal(t, filepath.Join(dir, "cache", "yamlpad", "yamlpad.log"), cfg.Log.File)
	assert.Equal(t, connection.DefaultTokenKey, cfg.Connection.TokenKey)
	assert.Equal(t, connection.DefaultConfigKey, cfg.Connection.ConfigKey)
	assert.Equal(t, "", cfg.File)
}

func TestLoadUserConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "yamlpad", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0700))
	require.NoError(t, os.WriteFile(path, []byte("format:\n  mapping_indent: 4\nlog:\n  level: debug\n"), 0600))

	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Format.MappingIndent)
	assert.Equal(t, 4, cfg.Format.SequenceIndent)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.File)
}

func TestLoadPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format:\n  mapping_indent: 4\n  sequence_indent: 6\n"), 0600))

	t.Setenv("YAMLPAD_FORMAT_SEQUENCE_INDENT", "8")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("mapping-indent", 2, "")
	flags.Int("sequence-indent", 4, "")
	require.NoError(t, flags.Set("mapping-indent", "3"))

	cfg, err := config.Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Format.MappingIndent, "flag wins over file")
	assert.Equal(t, 8, cfg.Format.SequenceIndent, "env wins over file")
	assert.Equal(t, 2, cfg.Format.SequenceOffset, "default")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "missing.yaml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Reading config file")
}

func TestLoadInvalidFormatOptions(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format:\n  sequence_indent: 1\n"), 0600))

	cfg, err := config.Load(path, nil)
	require.NoError(t, err)

	_, err = cfg.FormatOptions()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Validating format config")
}

func TestLoadRequiresVersion(t *testing.T) {
	dir := isolate(t)

	satisfied := filepath.Join(dir, "ok.yaml")
	require.NoError(t, os.WriteFile(satisfied, []byte("requires_version: \">= 0.0.1\"\n"), 0600))
	_, err := config.Load(satisfied, nil)
	require.NoError(t, err)

	unsatisfied := filepath.Join(dir, "newer.yaml")
	require.NoError(t, os.WriteFile(unsatisfied, []byte("requires_version: \">= 999.0.0\"\n"), 0600))
	_, err = config.Load(unsatisfied, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not satisfy requires_version")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("requires_version: \"not a constraint\"\n"), 0600))
	_, err = config.Load(invalid, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing requires_version")
}
