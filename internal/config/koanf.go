// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"cinesynth.yaml",
	"cinesynth.yml",
	"config.yaml",
	"config.yml",
	"/etc/cinesynth/config.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Load loads configuration with layered sources:
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML file (CONFIG_PATH or DefaultConfigPaths)
//  3. Environment Variables: override any setting
//
// Precedence is ENV > File > Defaults.
func Load() (*Config, error) {
	return LoadFile(findConfigFile())
}

// LoadFile is Load with an explicit config file. An empty path skips the
// file layer; a non-empty path that does not exist is an error.
func LoadFile(configPath string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: defaults
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load defaults: %w", ErrConfiguration, err)
	}

	// Layer 2: config file
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: failed to load config file %s: %w", ErrConfiguration, configPath, err)
		}
	}

	// Layer 3: environment variables
	// NUM_USERS -> generation.num_users
	// MOVIE_DATA_FILE -> paths.movies
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("%w: failed to load environment variables: %w", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal configuration: %w", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// envMappings maps environment variable names (lowercased) to koanf paths.
// The names follow the flags of the original generator scripts.
var envMappings = map[string]string{
	// Generation
	"num_users":  "generation.num_users",
	"num_days":   "generation.num_days",
	"start_date": "generation.start_date",
	"seed":       "generation.seed",
	"workers":    "generation.workers",

	// Paths
	"movie_data_file":    "paths.movies",
	"user_data_file":     "paths.users",
	"preferences_file":   "paths.preferences",
	"behavior_data_file": "paths.behaviors",
	"user_probabilities": "paths.user_probabilities",
	"metrics_textfile":   "paths.metrics_textfile",

	// Catalog
	"case_insensitive_genre_filter": "catalog.case_insensitive_genre_filter",
	"long_movie_minutes":            "catalog.long_movie_minutes",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config
// paths. Variables that are not in envMappings are ignored, so unrelated
// process environment never leaks into the config tree.
//
// Examples:
//   - NUM_USERS -> generation.num_users
//   - MOVIE_DATA_FILE -> paths.movies
//   - LOG_LEVEL -> logging.level
func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	if mapped, ok := envMappings[key]; ok {
		return mapped
	}
	if strings.HasPrefix(key, "cinesynth_") {
		return strings.Replace(strings.TrimPrefix(key, "cinesynth_"), "__", ".", 1)
	}
	return ""
}
