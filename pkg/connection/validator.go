// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTokenKey  = "QUALTRICS_APITOKEN"
	DefaultConfigKey = "project_id"

	SuccessMessage = "Successfully connected to Qualtrics and validated configuration."
)

var errMultipleDocuments = errors.New("expected a single document in the stream, but found another document")

type Validator struct {
	TokenKey  string
	ConfigKey string
	Logger    zerolog.Logger
}

func NewValidator(logger zerolog.Logger) Validator {
	return Validator{
		TokenKey:  DefaultTokenKey,
		ConfigKey: DefaultConfigKey,
		Logger:    logger.With().Str("component", "connection").Logger(),
	}
}

// Check validates both files and returns outcome suitable for display.
func (v Validator) Check(tokenFilePath, configFilePath string) (bool, string) {
	err := v.Validate(tokenFilePath, configFilePath)
	if err != nil {
		return false, err.Error()
	}
	return true, SuccessMessage
}

// Validate makes sure both files exist and hold expected keys.
// Returned error is always *Error.
func (v Validator) Validate(tokenFilePath, configFilePath string) error {
	if !isRegularFile(tokenFilePath) {
		return &Error{Kind: NotFound, Path: tokenFilePath,
			Message: "Qualtrics token file not found or path is not set."}
	}
	if !isRegularFile(configFilePath) {
		return &Error{Kind: NotFound, Path: configFilePath,
			Message: "Project config file not found or path is not set."}
	}

	v.Logger.Debug().Str("path", tokenFilePath).Msg("attempting to read token")

	err := v.requireKey(tokenFilePath, v.tokenKey(),
		fmt.Sprintf("YAML is valid, but %s key is missing in the token file.", v.tokenKey()))
	if err != nil {
		return err
	}

	v.Logger.Debug().Str("path", configFilePath).Msg("attempting to read config")

	err = v.requireKey(configFilePath, v.configKey(),
		fmt.Sprintf("YAML is valid, but '%s' key is missing in the config file.", v.configKey()))
	if err != nil {
		return err
	}

	v.Logger.Info().Str("token", tokenFilePath).Str("config", configFilePath).Msg("configuration validated")
	return nil
}

func (v Validator) requireKey(path, key, missingMsg string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Error{Kind: Unexpected, Path: path, Err: err,
			Message: fmt.Sprintf("An unexpected error occurred: %s", err)}
	}

	doc, err := decodeSingleDocument(data)
	if err != nil {
		v.Logger.Debug().Err(err).Str("path", path).Msg("parsing failed")
		return &Error{Kind: ParseError, Path: path, Err: err,
			Message: fmt.Sprintf("Failed to parse a YAML file. Please check its syntax.\nError: %s", err)}
	}

	if !hasTopLevelKey(doc, key) {
		return &Error{Kind: MissingKey, Path: path, Message: missingMsg}
	}
	return nil
}

// decodeSingleDocument rejects streams with more than one document.
// Empty input results in an empty node.
func decodeSingleDocument(data []byte) (*yaml.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node

	err := dec.Decode(&doc)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, err
	}

	var next yaml.Node

	err = dec.Decode(&next)
	switch {
	case err == nil:
		return nil, errMultipleDocuments
	case errors.Is(err, io.EOF):
		return &doc, nil
	default:
		return nil, err
	}
}

func (v Validator) tokenKey() string {
	if len(v.TokenKey) == 0 {
		return DefaultTokenKey
	}
	return v.TokenKey
}

func (v Validator) configKey() string {
	if len(v.ConfigKey) == 0 {
		return DefaultConfigKey
	}
	return v.ConfigKey
}

func hasTopLevelKey(doc *yaml.Node, key string) bool {
	node := doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return false
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Kind == yaml.ScalarNode && node.Content[i].Value == key {
			return true
		}
	}
	return false
}

func isRegularFile(path string) bool {
	if len(path) == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && !fi.IsDir()
}
