// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package models

import "time"

// BehaviorRecord is one watch event. Records are created once per successful
// watch trial and never mutated afterwards.
type BehaviorRecord struct {
	DayNumber    int       `json:"day_number"`
	Date         time.Time `json:"date"`
	Season       string    `json:"season"`
	DayOfWeek    string    `json:"day_of_week"`
	TimeOfDay    string    `json:"time_of_movie_watch"`
	UserID       string    `json:"userId"`
	MovieID      string    `json:"movieId"`
	Location     string    `json:"location"`
	Companions   string    `json:"companions"`
	Mood         string    `json:"user_mood"`
	Satisfaction float64   `json:"satisfaction_score"`
}
