// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

/*
Package metrics provides Prometheus instrumentation for generation runs.

Collectors are registered on the package Registry rather than the global
default registry. A batch run has no scrape endpoint, so the CLI writes the
registry to a node-exporter textfile when a metrics path is configured:

	cinesynth all -metrics_textfile /var/lib/node_exporter/cinesynth.prom

# Available Metrics

Generation:
  - cinesynth_users_generated_total: synthetic users produced (counter)
  - cinesynth_preferences_generated_total: preference bundles produced (counter)
  - cinesynth_catalog_subset_size: movies per eligibility subset (gauge)
    Labels: subset

Simulation:
  - cinesynth_watch_trials_total: Bernoulli watch trials (counter)
    Labels: outcome (success, failure)
  - cinesynth_behavior_records_total: behavior records emitted (counter)
  - cinesynth_skipped_units_total: user-days skipped (counter)
    Labels: reason
  - cinesynth_satisfaction_score: emitted satisfaction scores (histogram)
    Buckets: 0.1 .. 1.0 step 0.1

Timing:
  - cinesynth_stage_duration_seconds: wall time per pipeline stage (histogram)
    Labels: stage (users, preferences, behaviors)

# Usage

	metrics.RecordWatchTrials(successes, failures)
	metrics.RecordBehavior(0.66)
	defer metrics.TimeStage("behaviors")()

All helpers are safe for concurrent use.
*/
package metrics
