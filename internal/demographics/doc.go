// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package demographics generates the synthetic user roster: names, profile
// attributes, genre tastes, spoken languages and hard constraints.
//
// Every user is drawn from its own random stream derived from the run seed
// and the user index, so the same seed always yields the same roster.
// Lookup tables can be overridden from a JSON file whose top-level keys
// name the tables (see TableNames); a bad override is a ConfigurationError.
package demographics
