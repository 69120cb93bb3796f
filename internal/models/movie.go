// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package models

// Movie is a catalog entry with typed fields.
type Movie struct {
	// ID is the catalog identifier (movieId column).
	ID string `json:"movieId" validate:"required"`

	// Title is informational only.
	Title string `json:"title,omitempty"`

	// Genres holds the genre tokens in source order.
	Genres []string `json:"genres"`

	// Languages holds the language tokens in source order.
	Languages []string `json:"language"`

	// Duration is the running time in minutes.
	Duration int `json:"duration" validate:"gte=0"`

	// IMDbRating is nil when the source value is absent or unparsable.
	IMDbRating *float64 `json:"imdbRating,omitempty" validate:"omitempty,gte=0,lte=10"`

	// HavingAward marks award-winning titles.
	HavingAward bool `json:"havingAward"`

	// NumberOfRewatches defaults to 0 when absent.
	NumberOfRewatches int `json:"numberOfRewatches" validate:"gte=0"`

	// MaturityRating is the MPAA-style rating (G, PG, PG-13, R, NC-17, ...).
	MaturityRating string `json:"maturityRating"`
}

// Rating returns the IMDb rating and whether it is present.
func (m *Movie) Rating() (float64, bool) {
	if m.IMDbRating == nil {
		return 0, false
	}
	return *m.IMDbRating, true
}
