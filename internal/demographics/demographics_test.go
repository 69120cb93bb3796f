// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package demographics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/probability"
	"github.com/tomtom215/cinesynth/internal/validation"
)

func generate(t *testing.T, tables *Tables, seed uint64, n int) []models.User {
	t.Helper()
	users, err := NewGenerator(tables, seed, zerolog.Nop()).Generate(context.Background(), n)
	require.NoError(t, err)
	require.Len(t, users, n)
	return users
}

func TestUserID(t *testing.T) {
	assert.Equal(t, "U0001", UserID(0))
	assert.Equal(t, "U0042", UserID(41))
	assert.Equal(t, "U10000", UserID(9999))
}

func TestGenerate_Deterministic(t *testing.T) {
	a := generate(t, nil, 7, 25)
	b := generate(t, nil, 7, 25)
	assert.Equal(t, a, b)

	c := generate(t, nil, 8, 25)
	assert.NotEqual(t, a, c)
}

func TestGenerate_PrefixStable(t *testing.T) {
	short := generate(t, nil, 3, 10)
	long := generate(t, nil, 3, 40)
	assert.Equal(t, short, long[:10])
}

func TestGenerate_Invariants(t *testing.T) {
	tables := DefaultTables()
	users := generate(t, tables, 11, 500)

	for _, u := range users {
		require.Nil(t, validation.ValidateStruct(&u), "user %s", u.ID)

		assert.NotEmpty(t, u.Name, u.ID)
		assert.NotEmpty(t, u.Surname, u.ID)
		assert.LessOrEqual(t, len(u.LikedGenres), 3, u.ID)
		assert.LessOrEqual(t, len(u.DislikedGenres), 3, u.ID)
		assert.Empty(t, u.TasteOverlap(), "liked and disliked overlap for %s", u.ID)

		official := tables.OfficialLanguages(u.LivingCountry)
		assert.True(t, slices.ContainsFunc(u.LanguageSpoken, func(l string) bool {
			return slices.Contains(official, l)
		}), "%s speaks no official language of %s: %v", u.ID, u.LivingCountry, u.LanguageSpoken)

		assert.Contains(t, tables.Cities(u.LivingCountry), u.CurrentLocation, u.ID)

		switch u.AgeRange {
		case AgeUnder18:
			assert.Equal(t, StatusStudent, u.CurrentWorkingStatus, u.ID)
			assert.Equal(t, StatusSingle, u.MaritalStatus, u.ID)
			assert.Contains(t, []string{"under_13", "13_17"}, u.HardConstraint, u.ID)
		case Age65Plus:
			assert.Equal(t, StatusRetired, u.CurrentWorkingStatus, u.ID)
		}

		c, err := catalog.ParseConstraint(u.HardConstraint)
		require.NoError(t, err, u.ID)
		if c == catalog.ConstraintStrictAwardHunter {
			assert.True(t, u.AwardHunter, u.ID)
		}
		if c == catalog.ConstraintNoLongMovie {
			assert.Equal(t, LifestyleBusy, u.Lifestyle, u.ID)
		}
	}
}

func TestGenerate_MostUsersStayHome(t *testing.T) {
	users := generate(t, nil, 5, 2000)
	stayed := 0
	for _, u := range users {
		if u.LivingCountry == u.CountryOfOrigin {
			stayed++
		}
	}
	share := float64(stayed) / float64(len(users))
	assert.InDelta(t, StayInOriginProbability, share, 0.05)
}

func TestGenerate_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewGenerator(nil, 1, zerolog.Nop()).Generate(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_NegativeCount(t *testing.T) {
	_, err := NewGenerator(nil, 1, zerolog.Nop()).Generate(context.Background(), -1)
	assert.Error(t, err)
}

func TestBernoulliSubset_Cap(t *testing.T) {
	rng := probability.NewRand(1)
	all := probability.Uniform([]string{"A", "B", "C", "D", "E"})

	got := bernoulliSubset(rng, all, []string{"B"}, 3)
	assert.Len(t, got, 3)
	assert.NotContains(t, got, "B")
}

func TestDeriveHardConstraint(t *testing.T) {
	rng := probability.NewRand(9)
	for range 200 {
		c := DeriveHardConstraint(rng, AgeUnder18, "Active", true)
		assert.Contains(t, []catalog.Constraint{catalog.ConstraintUnder13, catalog.ConstraintTeen}, c)

		c = DeriveHardConstraint(rng, "35-44", "Active", false)
		assert.Contains(t, []catalog.Constraint{catalog.ConstraintNone, catalog.ConstraintNoMorningThrillerHorror}, c)
	}
}

func TestWithOverrides(t *testing.T) {
	doc := `{
		"GENDER_PROBS": {"Female": 1, "Male": 0},
		"COUNTRY_PROBS": {"Japan": 1},
		"GENRE_DISLIKE_PROBS": {"Horror": 1}
	}`
	tables, err := DefaultTables().WithOverrides(strings.NewReader(doc))
	require.NoError(t, err)

	gender, ok := tables.Table(TableGender)
	require.True(t, ok)
	assert.Equal(t, []string{"Female", "Male"}, gender.Labels())

	users := generate(t, tables, 2, 50)
	for _, u := range users {
		assert.Equal(t, "Female", u.ClinicalGender)
		assert.Equal(t, "Japan", u.CountryOfOrigin)
		assert.Equal(t, []string{"Horror"}, u.DislikedGenres)
		assert.NotContains(t, u.LikedGenres, "Horror")
	}

	// the receiver is untouched
	def, _ := DefaultTables().Table(TableGender)
	assert.Equal(t, 3, def.Len())
}

func TestWithOverrides_Errors(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		table string
	}{
		{"unknown table", `{"SHOE_SIZE_PROBS": {"42": 1}}`, "SHOE_SIZE_PROBS"},
		{"unknown country", `{"COUNTRY_PROBS": {"Atlantis": 1}}`, TableCountry},
		{"negative weight", `{"AGE_RANGE_PROBS": {"18-24": -0.1, "25-34": 1}}`, TableAgeRange},
		{"all zero", `{"LIFESTYLE_PROBS": {"Busy": 0}}`, TableLifestyle},
		{"bernoulli above one", `{"LANGUAGE_PROBS": {"English": 1.5}}`, TableLanguage},
		{"not an object", `{"GENDER_PROBS": [1, 2]}`, TableGender},
		{"malformed", `{"GENDER_PROBS": `, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DefaultTables().WithOverrides(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConfiguration)

			var ce *ConfigurationError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, tt.table, ce.Table)
		})
	}
}

func TestLoadTables(t *testing.T) {
	tables, err := LoadTables("")
	require.NoError(t, err)
	assert.Len(t, tables.Countries(), 37)

	path := filepath.Join(t.TempDir(), "probs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ETHNICITY_PROBS": {"Mixed": 1}}`), 0o600))
	tables, err = LoadTables(path)
	require.NoError(t, err)
	eth, _ := tables.Table(TableEthnicity)
	assert.Equal(t, []string{"Mixed"}, eth.Labels())

	_, err = LoadTables(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestTables_Lookups(t *testing.T) {
	tables := DefaultTables()
	assert.Equal(t, []string{"English"}, tables.OfficialLanguages("Atlantis"))
	assert.Equal(t, []string{"English", "French"}, tables.OfficialLanguages("Canada"))
	assert.Empty(t, tables.Cities("Atlantis"))
	assert.Len(t, TableNames(), 10)

	_, ok := tables.Table("NOPE")
	assert.False(t, ok)
}

func TestLanguages_FallsBackToOfficial(t *testing.T) {
	tables := DefaultTables()
	tables.language = probability.NewTable([]string{"Esperanto"}, []float64{0})
	g := NewGenerator(tables, 7, zerolog.Nop())

	for _, country := range append(tables.Countries(), "Atlantis") {
		rng := probability.NewRand(7, probability.StreamUsers, 0)
		spoken, err := g.languages(rng, country)
		require.NoError(t, err, country)
		require.Len(t, spoken, 1, country)
		assert.Contains(t, tables.OfficialLanguages(country), spoken[0], country)
	}
}
