// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds every collector in this package.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Generation Metrics
	UsersGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "cinesynth_users_generated_total",
			Help: "Total number of synthetic users generated",
		},
	)

	PreferencesGenerated = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "cinesynth_preferences_generated_total",
			Help: "Total number of preference bundles generated",
		},
	)

	CatalogSubsetSize = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "cinesynth_catalog_subset_size",
			Help: "Number of movies in each eligibility subset",
		},
		[]string{"subset"},
	)

	// Simulation Metrics
	WatchTrials = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinesynth_watch_trials_total",
			Help: "Total number of Bernoulli watch trials by outcome",
		},
		[]string{"outcome"},
	)

	BehaviorRecords = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "cinesynth_behavior_records_total",
			Help: "Total number of behavior records emitted",
		},
	)

	SkippedUnits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cinesynth_skipped_units_total",
			Help: "Total number of user-days skipped after a recoverable error",
		},
		[]string{"reason"},
	)

	SatisfactionScore = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cinesynth_satisfaction_score",
			Help:    "Distribution of emitted satisfaction scores",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		},
	)

	// Timing Metrics
	StageDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cinesynth_stage_duration_seconds",
			Help:    "Wall time of each pipeline stage in seconds",
			Buckets: []float64{.001, .01, .1, .5, 1, 5, 10, 30, 60, 300},
		},
		[]string{"stage"},
	)
)

// Trial outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// RecordWatchTrials records a batch of trial outcomes.
func RecordWatchTrials(successes, failures int) {
	if successes > 0 {
		WatchTrials.WithLabelValues(OutcomeSuccess).Add(float64(successes))
	}
	if failures > 0 {
		WatchTrials.WithLabelValues(OutcomeFailure).Add(float64(failures))
	}
}

// RecordBehavior records an emitted behavior record and its score.
func RecordBehavior(score float64) {
	BehaviorRecords.Inc()
	SatisfactionScore.Observe(score)
}

// RecordSkippedUnit records a user-day skipped for reason.
func RecordSkippedUnit(reason string) {
	SkippedUnits.WithLabelValues(reason).Inc()
}

// RecordUsersGenerated adds n generated users.
func RecordUsersGenerated(n int) {
	UsersGenerated.Add(float64(n))
}

// RecordPreferencesGenerated adds n generated preference bundles.
func RecordPreferencesGenerated(n int) {
	PreferencesGenerated.Add(float64(n))
}

// SetCatalogSubsetSizes publishes subset sizes keyed by subset name.
func SetCatalogSubsetSizes(sizes map[string]int) {
	for subset, n := range sizes {
		CatalogSubsetSize.WithLabelValues(subset).Set(float64(n))
	}
}

// RecordStageDuration records how long a pipeline stage took.
func RecordStageDuration(stage string, d time.Duration) {
	StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// TimeStage starts a stage timer and returns the function that stops it.
func TimeStage(stage string) func() {
	start := time.Now()
	return func() {
		RecordStageDuration(stage, time.Since(start))
	}
}

// WriteTextfile writes the registry in Prometheus text format to path,
// replacing the file atomically.
func WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, Registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
