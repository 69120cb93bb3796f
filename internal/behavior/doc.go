// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

/*
Package behavior runs the day-by-day viewing simulation.

For every simulated day and every user in roster order, the Simulator:

 1. Computes the watch probability as the user's season weight times the
    user's weekday weight. Labels missing from either table count as 0.
 2. Runs up to WatchTendency Bernoulli trials against that probability and
    stops at the first success. No success means no record for the day.
 3. On success, draws companions, location and time of day from the user's
    tables, draws a mood uniformly, selects a movie for the user's hard
    constraint and scores it.

# Ordering and Determinism

Output is ordered by day ascending, then roster order. Each user-day unit
draws from its own PCG stream derived from (seed, day index, user index), so
the output for a given seed is identical for any worker count and any
scheduling of days across goroutines.

# Errors

An empty eligibility subset for a unit is recoverable: the unit is skipped,
logged at warn level, counted in metrics and returned in Result.Failures.
An empty or invalid probability table is fatal and aborts the run. Missing
preference bundles are rejected before any day is simulated.

# Concurrency

Days are fanned out to an errgroup bounded by Config.Workers. Users, bundles
and the catalog are shared read-only. Each day writes only to its own slot of
the result buffer; slots are concatenated in day order after Wait.
*/
package behavior
