// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Command cinesynth generates synthetic movie-watching data: a user roster,
// per-user preference bundles and a day-by-day viewing log.
//
// # Commands
//
//	cinesynth users        [flags]
//	cinesynth preferences  [flags]
//	cinesynth behaviors    [flags]
//	cinesynth all          [flags]
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Command line flags
//   - Environment variables (NUM_USERS, NUM_DAYS, START_DATE, SEED, ...)
//   - Config file (cinesynth.yaml, or -config / $CONFIG_PATH)
//   - Built-in defaults
//
// # Example Usage
//
//	cinesynth all -num_users 500 -num_days 90 -start_date 2025-03-01 \
//	  -movie_data_file data/movie_data.csv -seed 7
//
// The same seed and inputs always produce byte-identical output files,
// regardless of -workers.
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the running stage. Files of a canceled stage
// are not written.
package main
