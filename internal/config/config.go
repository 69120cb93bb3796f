// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package config

import (
	"errors"
	"os"
	"time"

	"github.com/tomtom215/cinesynth/internal/behavior"
	"github.com/tomtom215/cinesynth/internal/calendar"
	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/logging"
)

// ErrConfiguration wraps every configuration failure. It is always fatal.
var ErrConfiguration = errors.New("configuration error")

// Config holds all generator configuration.
type Config struct {
	Generation GenerationConfig `koanf:"generation"`
	Paths      PathsConfig      `koanf:"paths"`
	Catalog    CatalogConfig    `koanf:"catalog"`
	Logging    LoggingConfig    `koanf:"logging"`
}

// GenerationConfig controls how much data is produced and from which seed.
type GenerationConfig struct {
	// NumUsers is the roster size for the users stage.
	// Default: 100
	NumUsers int `koanf:"num_users" validate:"min=1"`

	// NumDays is the number of simulated days.
	// Default: 30
	NumDays int `koanf:"num_days" validate:"min=0"`

	// StartDate is the first simulated day (YYYY-MM-DD).
	// Default: 2025-01-01
	StartDate string `koanf:"start_date" validate:"required,isodate"`

	// Seed drives every random stream. Same seed, same output.
	// Default: 42
	Seed uint64 `koanf:"seed"`

	// Workers bounds the number of days simulated concurrently.
	// 0 means GOMAXPROCS.
	Workers int `koanf:"workers" validate:"min=0,max=1024"`
}

// PathsConfig lists input and output files.
type PathsConfig struct {
	// Movies is the |-separated movie catalog.
	Movies string `koanf:"movies" validate:"required"`

	// Users is the |-separated user table (written by users, read by later stages).
	Users string `koanf:"users" validate:"required"`

	// Preferences is the preference bundle JSON file.
	Preferences string `koanf:"preferences" validate:"required"`

	// Behaviors is the |-separated behavior output.
	Behaviors string `koanf:"behaviors" validate:"required"`

	// UserProbabilities optionally overrides the demographic tables.
	// Empty means built-in tables.
	UserProbabilities string `koanf:"user_probabilities"`

	// MetricsTextfile, when set, receives a Prometheus textfile after each run.
	MetricsTextfile string `koanf:"metrics_textfile"`
}

// CatalogConfig mirrors catalog.Options.
type CatalogConfig struct {
	// CaseInsensitiveGenreFilter matches Thriller/Horror regardless of case.
	// Default: false
	CaseInsensitiveGenreFilter bool `koanf:"case_insensitive_genre_filter"`

	// LongMovieMinutes is the exclusive upper bound for the no-long-movie subset.
	// Default: 120
	LongMovieMinutes int `koanf:"long_movie_minutes" validate:"min=1"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error, disabled.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// defaultConfig returns a Config with the defaults of the original command
// line tools. These are applied first, then overridden by file and env.
func defaultConfig() *Config {
	opts := catalog.DefaultOptions()
	return &Config{
		Generation: GenerationConfig{
			NumUsers:  100,
			NumDays:   30,
			StartDate: "2025-01-01",
			Seed:      behavior.DefaultSeed,
			Workers:   0,
		},
		Paths: PathsConfig{
			Movies:            "data/movie_data.csv",
			Users:             "outputs/users/user_data.csv",
			Preferences:       "outputs/users/preferences.json",
			Behaviors:         "outputs/behaviors/behavior_data.csv",
			UserProbabilities: "",
			MetricsTextfile:   "",
		},
		Catalog: CatalogConfig{
			CaseInsensitiveGenreFilter: opts.CaseInsensitiveGenreFilter,
			LongMovieMinutes:           opts.LongMovieMinutes,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Caller: false,
		},
	}
}

// Default returns a fresh copy of the default configuration.
func Default() *Config {
	return defaultConfig()
}

// StartDate returns the parsed start date.
func (c *Config) StartDate() (time.Time, error) {
	return calendar.ParseDate(c.Generation.StartDate)
}

// BehaviorConfig returns the simulator settings.
func (c *Config) BehaviorConfig() *behavior.Config {
	return &behavior.Config{
		Seed:    c.Generation.Seed,
		Workers: c.Generation.Workers,
	}
}

// CatalogOptions returns the catalog build options.
func (c *Config) CatalogOptions() catalog.Options {
	return catalog.Options{
		CaseInsensitiveGenreFilter: c.Catalog.CaseInsensitiveGenreFilter,
		LongMovieMinutes:           c.Catalog.LongMovieMinutes,
	}
}

// LoggerConfig returns the zerolog settings. Logs go to stderr so stdout
// stays usable for piping.
func (c *Config) LoggerConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Logging.Level
	cfg.Format = c.Logging.Format
	cfg.Caller = c.Logging.Caller
	cfg.Output = os.Stderr
	return cfg
}
