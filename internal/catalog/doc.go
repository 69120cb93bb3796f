// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package catalog partitions the movie catalog into eligibility subsets and
// selects movies for a user's hard constraint.
//
// Build walks the catalog once and precomputes eight subsets:
//
//	under_13                   excludes PG-13, NC-17 and R
//	under_13_with_parent       excludes NC-17 and R
//	13_17                      excludes NC-17 and R
//	13_17_with_parent          excludes NC-17
//	no_morning_thriller_horror excludes genres containing Thriller or Horror
//	no_long_movie              duration <= 120 minutes
//	strict_award_hunter        award winners only
//	no_constraint              the full catalog
//
// A user's hard constraint is a closed Constraint enum. Constraint.Resolve
// maps it plus the day's companions and time of day to exactly one Subset:
// age constraints pick the parent variant when companions is Family, and the
// morning restriction applies only in the Morning. Selection inside the
// subset is uniform. An empty subset yields a *NoEligibleMovieError.
//
// The Thriller/Horror filter matches case-sensitively by default.
// Options.CaseInsensitiveGenreFilter switches it to a case-insensitive match.
//
// A Catalog is read-only after Build and safe for concurrent use.
package catalog
