// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

// Package config loads application configuration from defaults,
// an optional YAML file, YAMLPAD_* environment variables and flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"carvel.dev/yamlpad/pkg/connection"
	"carvel.dev/yamlpad/pkg/version"
	"carvel.dev/yamlpad/pkg/yamlfmt"
	semver "github.com/hashicorp/go-version"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	appName   = "yamlpad"
	envPrefix = "YAMLPAD"
)

type Config struct {
	Format     FormatConfig     `mapstructure:"format"`
	Settings   SettingsConfig   `mapstructure:"settings"`
	Log        LogConfig        `mapstructure:"log"`
	Connection ConnectionConfig `mapstructure:"connection"`
	// RequiresVersion is a version constraint (eg ">= 0.2.0") for running binary.
	RequiresVersion string `mapstructure:"requires_version"`

	// File is the config file that was read, if any.
	File string `mapstructure:"-"`
}

type FormatConfig struct {
	MappingIndent  int `mapstructure:"mapping_indent"`
	SequenceIndent int `mapstructure:"sequence_indent"`
	SequenceOffset int `mapstructure:"sequence_offset"`
}

type SettingsConfig struct {
	Path string `mapstructure:"path"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type ConnectionConfig struct {
	TokenKey  string `mapstructure:"token_key"`
	ConfigKey string `mapstructure:"config_key"`
}

// flag name -> config key
var flagKeys = map[string]string{
	"mapping-indent":  "format.mapping_indent",
	"sequence-indent": "format.sequence_indent",
	"sequence-offset": "format.sequence_offset",
	"settings-file":   "settings.path",
	"log-level":       "log.level",
	"log-file":        "log.file",
}

// Load builds configuration. Explicit path has to exist; otherwise
// config.yaml in user config directory is read when present.
// Flags (may be nil) override everything else when set.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if flag := flags.Lookup(name); flag != nil {
				err := v.BindPFlag(key, flag)
				if err != nil {
					return nil, fmt.Errorf("Binding flag '--%s': %w", name, err)
				}
			}
		}
	}

	if len(path) > 0 {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appName))
		}
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if len(path) > 0 || !errors.As(err, &notFoundErr) {
			return nil, fmt.Errorf("Reading config file: %w", err)
		}
	}

	var cfg Config

	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, fmt.Errorf("Unmarshaling config: %w", err)
	}

	cfg.File = v.ConfigFileUsed()

	err = cfg.checkRequiredVersion()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	defaults := yamlfmt.DefaultFormatOptions()

	v.SetDefault("format.mapping_indent", defaults.MappingIndent)
	v.SetDefault("format.sequence_indent", defaults.SequenceIndent)
	v.SetDefault("format.sequence_offset", defaults.SequenceOffset)
	v.SetDefault("settings.path", defaultPath(os.UserConfigDir, "settings.toml"))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", defaultPath(os.UserCacheDir, appName+".log"))
	v.SetDefault("connection.token_key", connection.DefaultTokenKey)
	v.SetDefault("connection.config_key", connection.DefaultConfigKey)
	v.SetDefault("requires_version", "")
}

func defaultPath(baseDir func() (string, error), name string) string {
	dir, err := baseDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, appName, name)
}

// FormatOptions returns validated formatting options.
func (c *Config) FormatOptions() (yamlfmt.FormatOptions, error) {
	opts := yamlfmt.FormatOptions{
		MappingIndent:  c.Format.MappingIndent,
		SequenceIndent: c.Format.SequenceIndent,
		SequenceOffset: c.Format.SequenceOffset,
	}
	err := opts.Validate()
	if err != nil {
		return yamlfmt.FormatOptions{}, fmt.Errorf("Validating format config: %w", err)
	}
	return opts, nil
}

func (c *Config) checkRequiredVersion() error {
	if len(strings.TrimSpace(c.RequiresVersion)) == 0 {
		return nil
	}

	constraints, err := semver.NewConstraint(c.RequiresVersion)
	if err != nil {
		return fmt.Errorf("Parsing requires_version '%s': %w", c.RequiresVersion, err)
	}

	running, err := semver.NewVersion(version.Version)
	if err != nil {
		return fmt.Errorf("Parsing yamlpad version '%s': %w", version.Version, err)
	}

	if !constraints.Check(running) {
		return fmt.Errorf("yamlpad version %s does not satisfy requires_version '%s'", version.Version, c.RequiresVersion)
	}
	return nil
}
