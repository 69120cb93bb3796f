// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package pipeline runs the generation stages against files:
//
//	users        demographics -> user table
//	preferences  preference synthesizer -> preference JSON
//	behaviors    user table + preferences + movies -> behavior table
//	all          the three above, passing data in memory
//
// Every stage is timed in metrics. When a metrics textfile path is
// configured it is rewritten after each successful run.
package pipeline
