// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package catalog

import (
	"errors"
	"fmt"
)

// ErrNoEligibleMovie matches every *NoEligibleMovieError via errors.Is.
var ErrNoEligibleMovie = errors.New("no eligible movie")

// NoEligibleMovieError reports an empty eligibility subset for a user-day.
type NoEligibleMovieError struct {
	UserID     string
	Constraint Constraint
	Subset     Subset
	Companions string
	TimeOfDay  string
}

func (e *NoEligibleMovieError) Error() string {
	if e.UserID == "" {
		return fmt.Sprintf("no eligible movie: constraint %s resolved to empty subset %s", e.Constraint, e.Subset)
	}
	return fmt.Sprintf("no eligible movie for user %s: constraint %s resolved to empty subset %s",
		e.UserID, e.Constraint, e.Subset)
}

// Is reports whether target is ErrNoEligibleMovie.
func (e *NoEligibleMovieError) Is(target error) bool {
	return target == ErrNoEligibleMovie
}
