// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

/*
Package config loads and validates the generator configuration.

# Configuration Sources

Configuration is layered with Koanf v2, highest priority last:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, or the first of DefaultConfigPaths
 3. Environment variables

Command line flags are applied on top by cmd/cinesynth.

# Configuration Structure

  - GenerationConfig: roster size, day count, start date, seed, workers
  - PathsConfig: movie catalog, user table, preferences, behaviors, overrides
  - CatalogConfig: genre filter case handling, long movie threshold
  - LoggingConfig: zerolog level, format, caller

# Environment Variables

Generation:
  - NUM_USERS: roster size (default: 100)
  - NUM_DAYS: simulated days (default: 30)
  - START_DATE: first day, YYYY-MM-DD (default: 2025-01-01)
  - SEED: random seed (default: 42)
  - WORKERS: concurrent days, 0 = GOMAXPROCS (default: 0)

Paths:
  - MOVIE_DATA_FILE, USER_DATA_FILE, PREFERENCES_FILE, BEHAVIOR_DATA_FILE
  - USER_PROBABILITIES: demographic table overrides (JSON)
  - METRICS_TEXTFILE: Prometheus textfile output

Catalog:
  - CASE_INSENSITIVE_GENRE_FILTER (default: false)
  - LONG_MOVIE_MINUTES (default: 120)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Any key can also be set as CINESYNTH_<SECTION>__<KEY>, for example
CINESYNTH_GENERATION__NUM_DAYS=90.

# Example YAML

	generation:
	  num_users: 500
	  num_days: 365
	  start_date: "2024-01-01"
	  seed: 7
	paths:
	  movies: data/movie_data.csv
	logging:
	  level: debug

# Errors

Every failure returned by Load wraps ErrConfiguration. Configuration
errors are fatal: no generation stage runs with an invalid config.
*/
package config
