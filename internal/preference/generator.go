// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package preference

import (
	"fmt"
	"math/rand/v2"

	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/probability"
)

// Draw bounds for non-dominant categories of a dominant table.
const (
	minMinorWeight = 0.1
	maxMinorWeight = 0.5
)

// GenerateDominantProbabilities builds a normalized table favoring one
// uniformly chosen category.
func GenerateDominantProbabilities(rng *rand.Rand, categories []string) (probability.Table, error) {
	if len(categories) == 0 {
		return probability.Table{}, fmt.Errorf("dominant table: %w", probability.ErrEmptyDistribution)
	}

	dominant := rng.IntN(len(categories))
	weights := make([]float64, len(categories))
	for i := range categories {
		if i == dominant {
			weights[i] = 1.0
			continue
		}
		weights[i] = probability.UniformRange(rng, minMinorWeight, maxMinorWeight)
	}
	return probability.Normalize(probability.NewTable(categories, weights))
}

// GenerateIndependentProbabilities gives every category its own draw from
// [0, 1) rounded to two decimals. The result is not normalized.
func GenerateIndependentProbabilities(rng *rand.Rand, categories []string) probability.Table {
	weights := make([]float64, len(categories))
	for i := range categories {
		weights[i] = probability.Round(rng.Float64())
	}
	return probability.NewTable(categories, weights)
}

// GenerateSingleUserPreferences draws one bundle for userID.
func GenerateSingleUserPreferences(rng *rand.Rand, userID string) (Bundle, error) {
	b := Bundle{
		UserID:        userID,
		WatchTendency: MinWatchTendency + rng.IntN(MaxWatchTendency-MinWatchTendency+1),
	}

	var err error
	if b.Companion, err = GenerateDominantProbabilities(rng, models.Companions()); err != nil {
		return Bundle{}, fmt.Errorf("user %s companion table: %w", userID, err)
	}
	b.Season = GenerateIndependentProbabilities(rng, models.Seasons())
	b.DayOfWeek = GenerateIndependentProbabilities(rng, models.DaysOfWeek())
	if b.TimeOfDay, err = GenerateDominantProbabilities(rng, models.TimesOfDay()); err != nil {
		return Bundle{}, fmt.Errorf("user %s time of day table: %w", userID, err)
	}
	if b.Location, err = GenerateDominantProbabilities(rng, models.Locations()); err != nil {
		return Bundle{}, fmt.Errorf("user %s location table: %w", userID, err)
	}
	if b.Satisfaction, err = GenerateSatisfactionWeights(rng); err != nil {
		return Bundle{}, fmt.Errorf("user %s: %w", userID, err)
	}
	return b, nil
}

// GenerateMultipleUserPreferences draws one bundle per user ID, in input
// order. User i draws from the stream (seed, StreamPreferences, i), so
// bundles are independent across users.
func GenerateMultipleUserPreferences(seed uint64, userIDs []string) ([]Bundle, error) {
	bundles := make([]Bundle, 0, len(userIDs))
	for i, id := range userIDs {
		rng := probability.NewRand(seed, probability.StreamPreferences, uint64(i))
		b, err := GenerateSingleUserPreferences(rng, id)
		if err != nil {
			return nil, err
		}
		bundles = append(bundles, b)
	}
	return bundles, nil
}
