// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package satisfaction scores how well a watched movie fit the viewer.
//
// Score is a pure function of the movie, the viewer's taste, the day's mood
// and the viewer's signed weight vector. The result is clamped to [0, 1] and
// rounded to two decimals.
package satisfaction

import (
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/preference"
	"github.com/tomtom215/cinesynth/internal/probability"
)

// Scoring constants.
const (
	// LowRatingThreshold is the rating below which a present rating is
	// replaced by LowRatingPenalty.
	LowRatingThreshold = 5.5
	LowRatingPenalty   = -0.4

	// MaxRewatches caps the rewatch term. The term is not normalized.
	MaxRewatches = 3

	// AwardBonus is the award term for an award hunter watching an awarded movie.
	AwardBonus = 0.1

	defaultMoodScore = 0.7
)

var moodScores = map[string]float64{
	models.MoodHappy:   1.0,
	models.MoodNeutral: 0.7,
	models.MoodSad:     0.4,
}

// Input gathers everything the scorer reads.
type Input struct {
	MovieGenres    []string
	LikedGenres    []string
	DislikedGenres []string
	MovieLanguages []string
	UserLanguages  []string
	IMDbRating     *float64
	Mood           string
	Rewatches      int
	AwardHunter    bool
	MovieHasAward  bool
}

// InputFor assembles the scorer input for user watching movie in mood.
func InputFor(user *models.User, movie *models.Movie, mood string) Input {
	return Input{
		MovieGenres:    movie.Genres,
		LikedGenres:    user.LikedGenres,
		DislikedGenres: user.DislikedGenres,
		MovieLanguages: movie.Languages,
		UserLanguages:  user.LanguageSpoken,
		IMDbRating:     movie.IMDbRating,
		Mood:           mood,
		Rewatches:      movie.NumberOfRewatches,
		AwardHunter:    user.AwardHunter,
		MovieHasAward:  movie.HavingAward,
	}
}

// Terms are the unweighted components of a score.
type Terms struct {
	LikedMatch    float64
	DislikedMatch float64
	Language      float64
	IMDb          float64
	Mood          float64
	Rewatch       float64
	Award         float64
}

// ComputeTerms evaluates each component of in.
func ComputeTerms(in Input) Terms {
	return Terms{
		LikedMatch:    GenreMatch(in.MovieGenres, in.LikedGenres),
		DislikedMatch: GenreMatch(in.MovieGenres, in.DislikedGenres),
		Language:      languageMatch(in.MovieLanguages, in.UserLanguages),
		IMDb:          imdbTerm(in.IMDbRating),
		Mood:          MoodScore(in.Mood),
		Rewatch:       float64(min(max(in.Rewatches, 0), MaxRewatches)),
		Award:         awardTerm(in.AwardHunter, in.MovieHasAward),
	}
}

// Weighted returns the unclamped weighted sum of t under w. The disliked
// weight is signed, so disliked matches subtract.
func (t Terms) Weighted(w preference.Weights) float64 {
	return t.LikedMatch*w.Liked +
		t.DislikedMatch*w.Disliked +
		t.Language*w.Language +
		t.IMDb*w.IMDb +
		t.Mood*w.Mood +
		t.Rewatch*w.Rewatch +
		t.Award*w.Award
}

// Score returns the satisfaction score in [0, 1] at two decimals.
func Score(in Input, w preference.Weights) float64 {
	raw := ComputeTerms(in).Weighted(w)
	return probability.Round(min(max(raw, 0), 1))
}

// GenreMatch is the fraction of movieGenres found in target. Either list
// being empty yields 0.
func GenreMatch(movieGenres, target []string) float64 {
	if len(movieGenres) == 0 || len(target) == 0 {
		return 0
	}
	want := make(map[string]struct{}, len(target))
	for _, g := range target {
		want[g] = struct{}{}
	}
	matched := make(map[string]struct{}, len(movieGenres))
	for _, g := range movieGenres {
		if _, ok := want[g]; ok {
			matched[g] = struct{}{}
		}
	}
	return float64(len(matched)) / float64(len(movieGenres))
}

// MoodScore maps a mood label to its score. Unknown labels score as Neutral.
func MoodScore(mood string) float64 {
	if s, ok := moodScores[mood]; ok {
		return s
	}
	return defaultMoodScore
}

func languageMatch(movieLanguages, userLanguages []string) float64 {
	for _, ml := range movieLanguages {
		for _, ul := range userLanguages {
			if ml == ul {
				return 1
			}
		}
	}
	return 0
}

func imdbTerm(rating *float64) float64 {
	if rating == nil {
		return 0
	}
	if *rating < LowRatingThreshold {
		return LowRatingPenalty
	}
	return *rating / 10
}

func awardTerm(hunter, hasAward bool) float64 {
	if hunter && hasAward {
		return AwardBonus
	}
	return 0
}
