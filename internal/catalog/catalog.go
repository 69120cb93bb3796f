// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package catalog

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/tomtom215/cinesynth/internal/models"
)

// Options tunes subset construction.
type Options struct {
	// CaseInsensitiveGenreFilter makes the Thriller/Horror filter ignore case.
	CaseInsensitiveGenreFilter bool `koanf:"case_insensitive_genre_filter"`

	// LongMovieMinutes is the longest duration kept by no_long_movie.
	LongMovieMinutes int `koanf:"long_movie_minutes" validate:"min=1"`
}

// DefaultOptions returns the options matching the reference data set.
func DefaultOptions() Options {
	return Options{
		CaseInsensitiveGenreFilter: false,
		LongMovieMinutes:           120,
	}
}

// restrictedGenres are excluded from no_morning_thriller_horror.
var restrictedGenres = []string{"Thriller", "Horror"}

var (
	under13Excluded        = ratingSet("PG-13", "NC-17", "R")
	parentalExcluded       = ratingSet("NC-17", "R")
	teenWithParentExcluded = ratingSet("NC-17")
)

func ratingSet(ratings ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ratings))
	for _, r := range ratings {
		set[r] = struct{}{}
	}
	return set
}

// Catalog holds the movie list and its precomputed subsets.
type Catalog struct {
	movies  []models.Movie
	subsets [subsetCount][]*models.Movie
	opts    Options
}

// Build precomputes every subset in one pass over movies. The slice is
// copied; later changes by the caller are not observed.
func Build(movies []models.Movie, opts Options) *Catalog {
	c := &Catalog{
		movies: make([]models.Movie, len(movies)),
		opts:   opts,
	}
	copy(c.movies, movies)

	for i := range c.movies {
		m := &c.movies[i]
		rating := strings.TrimSpace(m.MaturityRating)

		if !contains(under13Excluded, rating) {
			c.add(SubsetUnder13, m)
		}
		if !contains(parentalExcluded, rating) {
			c.add(SubsetUnder13WithParent, m)
			c.add(SubsetTeen, m)
		}
		if !contains(teenWithParentExcluded, rating) {
			c.add(SubsetTeenWithParent, m)
		}
		if !c.hasRestrictedGenre(m) {
			c.add(SubsetNoMorningThrillerHorror, m)
		}
		if m.Duration <= opts.LongMovieMinutes {
			c.add(SubsetNoLongMovie, m)
		}
		if m.HavingAward {
			c.add(SubsetStrictAwardHunter, m)
		}
		c.add(SubsetNoConstraint, m)
	}
	return c
}

func (c *Catalog) add(s Subset, m *models.Movie) {
	c.subsets[s] = append(c.subsets[s], m)
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func (c *Catalog) hasRestrictedGenre(m *models.Movie) bool {
	for _, g := range m.Genres {
		for _, r := range restrictedGenres {
			if c.opts.CaseInsensitiveGenreFilter {
				if strings.Contains(strings.ToLower(g), strings.ToLower(r)) {
					return true
				}
			} else if strings.Contains(g, r) {
				return true
			}
		}
	}
	return false
}

// Len returns the size of the full catalog.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// Subset returns the movies eligible under s. The returned slice must not be
// modified.
func (c *Catalog) Subset(s Subset) []*models.Movie {
	if s >= subsetCount {
		return nil
	}
	return c.subsets[s]
}

// Sizes reports the size of every subset keyed by subset name.
func (c *Catalog) Sizes() map[string]int {
	sizes := make(map[string]int, subsetCount)
	for _, s := range Subsets() {
		sizes[s.String()] = len(c.subsets[s])
	}
	return sizes
}

// PickMovie selects a movie for user given today's companions and time of
// day. An unrecognized hard constraint tag falls through to no_constraint.
// The simulator parses each user's tag once per run and calls
// PickForConstraint directly; PickMovie serves callers holding only a User.
func (c *Catalog) PickMovie(rng *rand.Rand, user *models.User, companions, timeOfDay string) (*models.Movie, error) {
	constraint, _ := ParseConstraint(user.HardConstraint)
	m, err := c.PickForConstraint(rng, constraint, companions, timeOfDay)
	if err != nil {
		var nem *NoEligibleMovieError
		if errors.As(err, &nem) {
			nem.UserID = user.ID
		}
		return nil, err
	}
	return m, nil
}

// PickForConstraint selects uniformly from the subset that constraint
// resolves to. Exactly one value is drawn from rng when the subset is
// non-empty and none otherwise.
func (c *Catalog) PickForConstraint(rng *rand.Rand, constraint Constraint, companions, timeOfDay string) (*models.Movie, error) {
	subset := constraint.Resolve(companions, timeOfDay)
	eligible := c.subsets[subset]
	if len(eligible) == 0 {
		return nil, &NoEligibleMovieError{
			Constraint: constraint,
			Subset:     subset,
			Companions: companions,
			TimeOfDay:  timeOfDay,
		}
	}
	return eligible[rng.IntN(len(eligible))], nil
}

// String summarizes subset sizes for logs.
func (c *Catalog) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "catalog(%d movies", len(c.movies))
	for _, s := range Subsets() {
		fmt.Fprintf(&b, ", %s=%d", s, len(c.subsets[s]))
	}
	b.WriteByte(')')
	return b.String()
}
