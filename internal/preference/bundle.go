// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package preference

import (
	"errors"
	"fmt"

	"github.com/tomtom215/cinesynth/internal/probability"
)

// Watch tendency bounds.
const (
	MinWatchTendency = 1
	MaxWatchTendency = 5
)

// Bundle is one user's preference set.
type Bundle struct {
	// UserID is the key of the bundle. It is carried by the enclosing JSON
	// object rather than inside the bundle itself.
	UserID string `json:"-"`

	// WatchTendency is the number of Bernoulli watch trials per day.
	WatchTendency int `json:"WATCH_TENDENCY" validate:"min=1,max=5"`

	// Companion is a dominant table sampled for every watch event.
	Companion probability.Table `json:"COMPANION_PROBS"`

	// Season gates watching by season. Missing labels count as 0.
	Season probability.Table `json:"SEASON_PROBS"`

	// DayOfWeek gates watching by weekday. Missing labels count as 0.
	DayOfWeek probability.Table `json:"DAY_OF_WEEK_PROBS"`

	// TimeOfDay is a dominant table sampled for every watch event.
	TimeOfDay probability.Table `json:"TIME_OF_DAY_PROBS"`

	// Location is a dominant table sampled for every watch event.
	Location probability.Table `json:"LOCATION_PROBS"`

	// Satisfaction is the signed weight vector used by the scorer.
	Satisfaction Weights `json:"SATISFACTION_WEIGHTS"`
}

// WatchProbability returns the chance of watching on a day with the given
// season and weekday labels.
func (b *Bundle) WatchProbability(season, dayOfWeek string) float64 {
	return b.Season.Weight(season) * b.DayOfWeek.Weight(dayOfWeek)
}

// Validate checks a bundle loaded from an external source.
func (b *Bundle) Validate() error {
	if b.WatchTendency < MinWatchTendency || b.WatchTendency > MaxWatchTendency {
		return fmt.Errorf("user %s: watch tendency %d outside [%d, %d]",
			b.UserID, b.WatchTendency, MinWatchTendency, MaxWatchTendency)
	}

	sampled := []struct {
		name  string
		table probability.Table
	}{
		{"companion", b.Companion},
		{"time of day", b.TimeOfDay},
		{"location", b.Location},
	}
	for _, s := range sampled {
		if err := s.table.Validate(); err != nil {
			return fmt.Errorf("user %s: %s table: %w", b.UserID, s.name, err)
		}
	}

	// Gate tables may be empty or all zero; only negative weights are invalid.
	gates := []struct {
		name  string
		table probability.Table
	}{
		{"season", b.Season},
		{"day of week", b.DayOfWeek},
	}
	for _, g := range gates {
		if err := g.table.Validate(); errors.Is(err, probability.ErrNegativeWeight) {
			return fmt.Errorf("user %s: %s table: %w", b.UserID, g.name, err)
		}
	}

	if err := b.Satisfaction.Validate(); err != nil {
		return fmt.Errorf("user %s: %w", b.UserID, err)
	}
	return nil
}

// Index maps bundles by user ID. Later bundles win on duplicate IDs.
func Index(bundles []Bundle) map[string]*Bundle {
	idx := make(map[string]*Bundle, len(bundles))
	for i := range bundles {
		idx[bundles[i].UserID] = &bundles[i]
	}
	return idx
}
