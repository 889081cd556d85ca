// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package connection_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"carvel.dev/yamlpad/pkg/connection"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorSuccess(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.yaml", "QUALTRICS_APITOKEN: abc\n")
	config := writeFile(t, dir, "project.yaml", "project_id: SV_123\nname: survey\n")

	logs := &bytes.Buffer{}
	validator := connection.NewValidator(zerolog.New(logs).Level(zerolog.DebugLevel))

	ok, msg := validator.Check(token, config)
	assert.True(t, ok)
	assert.Equal(t, "Successfully connected to Qualtrics and validated configuration.", msg)
	assert.Contains(t, logs.String(), "attempting to read token")
	assert.Contains(t, logs.String(), "attempting to read config")
}

func TestValidatorNotFound(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.yaml", "QUALTRICS_APITOKEN: abc\n")
	validator := connection.NewValidator(zerolog.Nop())

	cases := []struct {
		desc   string
		token  string
		config string
		msg    string
	}{
		{"empty token path", "", token, "Qualtrics token file not found or path is not set."},
		{"missing token", filepath.Join(dir, "nope.yaml"), token, "Qualtrics token file not found or path is not set."},
		{"token is dir", dir, token, "Qualtrics token file not found or path is not set."},
		{"empty config path", token, "", "Project config file not found or path is not set."},
		{"missing config", token, filepath.Join(dir, "nope.yaml"), "Project config file not found or path is not set."},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := validator.Validate(tc.token, tc.config)
			require.Error(t, err)

			connErr, ok := connection.AsError(err)
			require.True(t, ok)
			assert.Equal(t, connection.NotFound, connErr.Kind)
			assert.Equal(t, tc.msg, connErr.Message)

			ok, msg := validator.Check(tc.token, tc.config)
			assert.False(t, ok)
			assert.Equal(t, tc.msg, msg)
		})
	}
}

func TestValidatorParseError(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.yaml", "QUALTRICS_APITOKEN: [abc\n")
	config := writeFile(t, dir, "project.yaml", "project_id: SV_123\n")

	err := connection.NewValidator(zerolog.Nop()).Validate(token, config)
	require.Error(t, err)

	connErr, ok := connection.AsError(err)
	require.True(t, ok)
	assert.Equal(t, connection.ParseError, connErr.Kind)
	assert.Equal(t, token, connErr.Path)
	assert.Contains(t, connErr.Message, "Failed to parse a YAML file. Please check its syntax.\nError: ")
}

func TestValidatorMultipleDocuments(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.yaml", "QUALTRICS_APITOKEN: abc\n")
	config := writeFile(t, dir, "project.yaml", "project_id: SV_123\n---\nproject_id: SV_456\n")

	err := connection.NewValidator(zerolog.Nop()).Validate(token, config)
	require.Error(t, err)

	connErr, ok := connection.AsError(err)
	require.True(t, ok)
	assert.Equal(t, connection.ParseError, connErr.Kind)
	assert.Equal(t, config, connErr.Path)
	assert.Contains(t, connErr.Message, "expected a single document in the stream")
}

func TestValidatorMissingKey(t *testing.T) {
	dir := t.TempDir()
	goodToken := writeFile(t, dir, "token.yaml", "QUALTRICS_APITOKEN: abc\n")
	goodConfig := writeFile(t, dir, "project.yaml", "project_id: SV_123\n")

	cases := []struct {
		desc   string
		token  string
		config string
		msg    string
	}{
		{"token lacks key", writeFile(t, dir, "t1.yaml", "OTHER: abc\n"), goodConfig,
			"YAML is valid, but QUALTRICS_APITOKEN key is missing in the token file."},
		{"empty token doc", writeFile(t, dir, "t2.yaml", "# nothing\n"), goodConfig,
			"YAML is valid, but QUALTRICS_APITOKEN key is missing in the token file."},
		{"token is a list", writeFile(t, dir, "t3.yaml", "- QUALTRICS_APITOKEN\n"), goodConfig,
			"YAML is valid, but QUALTRICS_APITOKEN key is missing in the token file."},
		{"nested key does not count", goodToken, writeFile(t, dir, "c1.yaml", "project:\n  project_id: x\n"),
			"YAML is valid, but 'project_id' key is missing in the config file."},
	}

	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			err := connection.NewValidator(zerolog.Nop()).Validate(tc.token, tc.config)
			require.Error(t, err)

			connErr, ok := connection.AsError(err)
			require.True(t, ok)
			assert.Equal(t, connection.MissingKey, connErr.Kind)
			assert.Equal(t, tc.msg, err.Error())
		})
	}
}

func TestValidatorCustomKeys(t *testing.T) {
	dir := t.TempDir()
	token := writeFile(t, dir, "token.yaml", "API: abc\n")
	config := writeFile(t, dir, "project.yaml", "survey: SV_123\n")

	validator := connection.Validator{TokenKey: "API", ConfigKey: "survey", Logger: zerolog.Nop()}
	assert.NoError(t, validator.Validate(token, config))
}

func writeFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}
