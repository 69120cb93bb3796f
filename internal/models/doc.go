// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

/*
Package models defines the data structures shared by every cinesynth component.

Key Components:

  - User: A synthetic viewer with taste lists, spoken languages and a hard
    constraint tag. Read-only to the simulator.
  - Movie: A catalog entry with typed genres, languages, duration, optional
    IMDb rating, award flag, rewatch count and maturity rating.
  - BehaviorRecord: One watch event emitted by the simulator. Never mutated
    after creation.
  - Label vocabularies: companions, seasons, weekdays, times of day,
    locations and moods.

List-valued CSV fields are parsed exactly once, at the data-model boundary,
through SplitList and ParseRating. Components downstream of that boundary only
ever see typed slices and optional numbers.
*/
package models
