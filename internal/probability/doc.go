// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package probability provides discrete probability tables and the weighted
// categorical sampler used by every generator stage.
//
// # Tables
//
// A Table is an ordered mapping from category label to non-negative weight.
// Order is part of the value: sampling walks entries in order, so two tables
// with the same weights in a different order produce different draws for the
// same random stream. JSON encoding preserves order in both directions.
//
// # Normalization
//
// Normalize divides each weight by the table total, truncates every quotient
// to two decimals (round toward zero) and adds the whole shortfall to the
// category holding the largest truncated value. The result sums to exactly
// 1.00 at two-decimal granularity. Truncation is done in decimal arithmetic
// (cockroachdb/apd) so binary float artifacts such as 0.29999999 never
// truncate to 0.28.
//
// # Errors
//
// Pick and Normalize return ErrEmptyDistribution for empty or all-zero
// tables, and ErrNegativeWeight when any weight is negative or NaN. Neither
// condition is defaulted silently.
package probability
