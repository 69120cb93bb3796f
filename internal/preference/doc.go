// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package preference synthesizes per-user preference bundles.
//
// A Bundle holds a watch tendency, five context probability tables and a
// signed satisfaction-weight vector. Bundles are immutable once built and are
// shared read-only by the behavior simulator's workers.
//
// Table construction:
//
//   - Companion, time-of-day and location tables are dominant tables: one
//     category drawn uniformly gets base weight 1.0, the others draw from
//     [0.1, 0.5), and the result is normalized with probability.Normalize.
//   - Season and day-of-week tables gate the daily watch decision. Each
//     category is an independent draw from [0, 1) rounded to two decimals,
//     and the table is not normalized.
//
// Satisfaction weights draw each component from a fixed range, negate the
// disliked-genre component and rescale by absolute value so that the
// absolute values sum to exactly 1.00.
//
// Randomness comes from the caller's *rand.Rand. GenerateMultipleUserPreferences
// derives one stream per user from the run seed so that bundles do not depend
// on how many users precede them.
package preference
