// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package demographics

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/probability"
)

// Rule constants.
const (
	// StayInOriginProbability is the chance a user lives in their country of origin.
	StayInOriginProbability = 0.8

	// YoungAdultStudentProbability applies to the 18-24 and 25-34 ranges.
	YoungAdultStudentProbability = 0.5

	// OfficialLanguageBoost multiplies the base probability of official languages.
	OfficialLanguageBoost = 2.0

	// AwardHunterProbability is the share of award hunters.
	AwardHunterProbability = 0.1
)

// Hard constraint derivation odds.
const (
	under13Probability         = 0.5
	strictAwardProbability     = 0.5
	busyNoLongMovieProbability = 0.5
	morningRestrictProbability = 0.1
)

// UserID formats the identifier of the index-th generated user (0-based).
func UserID(index int) string {
	return fmt.Sprintf("U%04d", index+1)
}

// Generator produces synthetic user rosters.
type Generator struct {
	tables *Tables
	seed   uint64
	logger zerolog.Logger
}

// NewGenerator creates a generator. A nil tables value uses DefaultTables.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewGenerator(tables *Tables, seed uint64, logger zerolog.Logger) *Generator {
	if tables == nil {
		tables = DefaultTables()
	}
	return &Generator{
		tables: tables,
		seed:   seed,
		logger: logger.With().Str("component", "demographics").Logger(),
	}
}

// Generate returns n users with IDs U0001..Un. User i is a pure function of
// (seed, i), so a roster prefix does not depend on n.
func (g *Generator) Generate(ctx context.Context, n int) ([]models.User, error) {
	if n < 0 {
		return nil, fmt.Errorf("user count must be non-negative, got %d", n)
	}
	start := time.Now()

	users := make([]models.User, n)
	for i := range users {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		u, err := g.GenerateUser(i)
		if err != nil {
			return nil, fmt.Errorf("user %s: %w", UserID(i), err)
		}
		users[i] = u
	}

	g.logger.Info().
		Int("users", n).
		Dur("duration", time.Since(start)).
		Msg("generated users")
	return users, nil
}

// GenerateUser builds the index-th user.
func (g *Generator) GenerateUser(index int) (models.User, error) {
	rng := probability.NewRand(g.seed, probability.StreamUsers, uint64(index))
	faker := gofakeit.NewFaker(rng, false)
	t := g.tables

	u := models.User{
		ID:      UserID(index),
		Name:    faker.FirstName(),
		Surname: faker.LastName(),
	}

	var err error
	if u.ClinicalGender, err = probability.Pick(rng, t.gender); err != nil {
		return u, fmt.Errorf("%s: %w", TableGender, err)
	}
	if u.AgeRange, err = probability.Pick(rng, t.ageRange); err != nil {
		return u, fmt.Errorf("%s: %w", TableAgeRange, err)
	}
	if u.Lifestyle, err = probability.Pick(rng, t.lifestyle); err != nil {
		return u, fmt.Errorf("%s: %w", TableLifestyle, err)
	}
	if u.Ethnicity, err = probability.Pick(rng, t.ethnicity); err != nil {
		return u, fmt.Errorf("%s: %w", TableEthnicity, err)
	}
	if u.CurrentWorkingStatus, err = g.workingStatus(rng, u.AgeRange); err != nil {
		return u, err
	}
	if u.MaritalStatus, err = g.maritalStatus(rng, u.AgeRange); err != nil {
		return u, err
	}
	if u.CountryOfOrigin, err = probability.Pick(rng, t.country); err != nil {
		return u, fmt.Errorf("%s: %w", TableCountry, err)
	}
	u.LivingCountry = g.livingCountry(rng, u.CountryOfOrigin)
	u.CurrentLocation = g.city(rng, u.LivingCountry)

	u.DislikedGenres = bernoulliSubset(rng, t.genreDislike, nil, models.MaxGenreTaste)
	u.LikedGenres = bernoulliSubset(rng, t.genreLike, u.DislikedGenres, models.MaxGenreTaste)
	if u.LanguageSpoken, err = g.languages(rng, u.LivingCountry); err != nil {
		return u, err
	}

	u.AwardHunter = probability.Bernoulli(rng, AwardHunterProbability)
	u.HardConstraint = DeriveHardConstraint(rng, u.AgeRange, u.Lifestyle, u.AwardHunter).String()

	return u, nil
}

func (g *Generator) workingStatus(rng *rand.Rand, ageRange string) (string, error) {
	switch ageRange {
	case AgeUnder18:
		return StatusStudent, nil
	case Age65Plus:
		return StatusRetired, nil
	case Age18To24, Age25To34:
		if probability.Bernoulli(rng, YoungAdultStudentProbability) {
			return StatusStudent, nil
		}
	}
	s, err := probability.Pick(rng, g.tables.workingStatus)
	if err != nil {
		return "", fmt.Errorf("%s: %w", TableWorkingStatus, err)
	}
	return s, nil
}

func (g *Generator) maritalStatus(rng *rand.Rand, ageRange string) (string, error) {
	if ageRange == AgeUnder18 {
		return StatusSingle, nil
	}
	s, err := probability.Pick(rng, g.tables.maritalStatus)
	if err != nil {
		return "", fmt.Errorf("%s: %w", TableMaritalStatus, err)
	}
	return s, nil
}

// livingCountry keeps the origin with StayInOriginProbability, otherwise
// moves to a uniformly chosen different country.
func (g *Generator) livingCountry(rng *rand.Rand, origin string) string {
	if probability.Bernoulli(rng, StayInOriginProbability) {
		return origin
	}
	others := make([]string, 0, len(g.tables.countries))
	for _, c := range g.tables.countries {
		if c != origin {
			others = append(others, c)
		}
	}
	moved, err := probability.Choice(rng, others)
	if err != nil {
		return origin
	}
	return moved
}

func (g *Generator) city(rng *rand.Rand, country string) string {
	city, err := probability.Choice(rng, g.tables.citiesByCountry[country])
	if err != nil {
		return UnknownCity
	}
	return city
}

// languages draws each language independently, boosting the official
// languages of country, and guarantees at least one official language.
func (g *Generator) languages(rng *rand.Rand, country string) ([]string, error) {
	official := g.tables.OfficialLanguages(country)
	spoken := make([]string, 0, 4)
	hasOfficial := false

	for _, e := range g.tables.language.Entries() {
		p := e.Weight
		isOfficial := slices.Contains(official, e.Label)
		if isOfficial {
			p = min(1, p*OfficialLanguageBoost)
		}
		if probability.Bernoulli(rng, p) {
			spoken = append(spoken, e.Label)
			hasOfficial = hasOfficial || isOfficial
		}
	}

	if !hasOfficial {
		lang, err := probability.Choice(rng, official)
		if err != nil {
			return nil, fmt.Errorf("official language of %s: %w", country, err)
		}
		spoken = append(spoken, lang)
	}
	return spoken, nil
}

// bernoulliSubset keeps each label of t with its own probability, skipping
// excluded labels, then caps the result at limit by random sampling.
func bernoulliSubset(rng *rand.Rand, t probability.Table, exclude []string, limit int) []string {
	picked := make([]string, 0, limit)
	for _, e := range t.Entries() {
		if slices.Contains(exclude, e.Label) {
			continue
		}
		if probability.Bernoulli(rng, e.Weight) {
			picked = append(picked, e.Label)
		}
	}
	if len(picked) > limit {
		rng.Shuffle(len(picked), func(i, j int) {
			picked[i], picked[j] = picked[j], picked[i]
		})
		picked = picked[:limit]
	}
	return picked
}

// DeriveHardConstraint assigns a hard constraint from the user's profile:
// minors get an age constraint, award hunters may be strict, busy users may
// avoid long movies, and a small share of everyone else avoids morning
// thrillers.
func DeriveHardConstraint(rng *rand.Rand, ageRange, lifestyle string, awardHunter bool) catalog.Constraint {
	switch {
	case ageRange == AgeUnder18:
		if probability.Bernoulli(rng, under13Probability) {
			return catalog.ConstraintUnder13
		}
		return catalog.ConstraintTeen
	case awardHunter && probability.Bernoulli(rng, strictAwardProbability):
		return catalog.ConstraintStrictAwardHunter
	case lifestyle == LifestyleBusy && probability.Bernoulli(rng, busyNoLongMovieProbability):
		return catalog.ConstraintNoLongMovie
	case probability.Bernoulli(rng, morningRestrictProbability):
		return catalog.ConstraintNoMorningThrillerHorror
	default:
		return catalog.ConstraintNone
	}
}
