// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package dataio reads and writes the generator's files.
//
// User, movie and behavior tables are '|'-separated CSV with a header row.
// List cells (genres, languages) are joined with ", ". Preferences are a
// single JSON object keyed by user ID whose tables keep category order.
//
// Input rows are validated as they are read. A bad row is reported as a
// RowError carrying the line number; the whole file is rejected. An
// unparsable IMDb rating is not an error: the movie keeps a nil rating.
package dataio
