// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"sync"

	"carvel.dev/yamlpad/pkg/files"
	"carvel.dev/yamlpad/pkg/version"
	"github.com/BurntSushi/toml"
	semver "github.com/hashicorp/go-version"
	"github.com/rs/zerolog"
)

const (
	TokenPathKey         = "qualtrics_token_path"
	ProjectConfigPathKey = "project_config_path"
)

// ErrReadOnly is returned when saving a store loaded from a newer version's file.
var ErrReadOnly = errors.New("Settings were written by a newer version of yamlpad and are read-only")

type storeFile struct {
	Version string            `toml:"version"`
	Values  map[string]string `toml:"values"`
}

type Store struct {
	mu       sync.Mutex
	path     string
	values   map[string]string
	readOnly bool
	logger   zerolog.Logger
}

// NewStore returns an empty store that will be saved to path.
func NewStore(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		values: map[string]string{},
		logger: logger.With().Str("component", "settings").Logger(),
	}
}

// Load reads store from path. Missing file results in an empty store.
func Load(path string, logger zerolog.Logger) (*Store, error) {
	s := NewStore(path, logger)

	data, err := files.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("path", path).Msg("no settings file, starting empty")
			return s, nil
		}
		return nil, err
	}

	var contents storeFile

	err = toml.Unmarshal(data, &contents)
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling settings '%s': %w", path, err)
	}

	for key, val := range contents.Values {
		s.values[key] = val
	}

	if newerMajorVersion(contents.Version) {
		s.readOnly = true
		s.logger.Warn().Str("path", path).Str("written_by", contents.Version).
			Str("running", version.Version).Msg("settings written by newer version; not saving changes")
	}

	s.logger.Debug().Str("path", path).Int("keys", len(s.values)).Msg("settings loaded")
	return s, nil
}

func (s *Store) Path() string { return s.path }

func (s *Store) IsReadOnly() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readOnly
}

func (s *Store) Get(key string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.values[key]
}

// Set updates key reporting whether value changed.
// Empty value removes the key.
func (s *Store) Set(key, value string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values[key] == value {
		return false
	}
	if len(value) == 0 {
		delete(s.values, key)
	} else {
		s.values[key] = value
	}
	return true
}

// Keys lists keys with values in sorted order.
func (s *Store) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var keys []string
	for key := range s.values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Save writes store atomically to its path.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.readOnly {
		return ErrReadOnly
	}

	var buf bytes.Buffer

	err := toml.NewEncoder(&buf).Encode(storeFile{Version: version.Version, Values: s.values})
	if err != nil {
		return fmt.Errorf("Marshaling settings: %w", err)
	}

	err = files.WriteFileAtomic(s.path, buf.Bytes(), 0600)
	if err != nil {
		return err
	}

	s.logger.Debug().Str("path", s.path).Int("keys", len(s.values)).Msg("settings saved")
	return nil
}

func newerMajorVersion(writtenBy string) bool {
	if len(writtenBy) == 0 {
		return false
	}

	written, err := semver.NewVersion(writtenBy)
	if err != nil {
		return false
	}

	running, err := semver.NewVersion(version.Version)
	if err != nil {
		return false
	}

	return written.Segments()[0] > running.Segments()[0]
}
