// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package behavior

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesynth/internal/calendar"
	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/logging"
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/preference"
	"github.com/tomtom215/cinesynth/internal/probability"
)

func rating(v float64) *float64 { return &v }

func testCatalog() *catalog.Catalog {
	return catalog.Build([]models.Movie{
		{ID: "m1", Genres: []string{"Drama"}, Languages: []string{"English"}, Duration: 100, IMDbRating: rating(8.1), MaturityRating: "PG"},
		{ID: "m2", Genres: []string{"Comedy"}, Languages: []string{"French"}, Duration: 95, IMDbRating: rating(6.4), MaturityRating: "PG-13"},
		{ID: "m3", Genres: []string{"Horror"}, Languages: []string{"English"}, Duration: 140, MaturityRating: "R"},
		{ID: "m4", Genres: []string{"Animation"}, Languages: []string{"English"}, Duration: 85, IMDbRating: rating(7.2), MaturityRating: "G"},
	}, catalog.DefaultOptions())
}

func testUsers(n int) []models.User {
	users := make([]models.User, n)
	constraints := []string{"no_constraint", "under_13", "13_17", "no_morning_thriller_horror", "no_long_movie"}
	for i := range users {
		users[i] = models.User{
			ID:             "U" + string(rune('A'+i)),
			LikedGenres:    []string{"Drama"},
			DislikedGenres: []string{"Horror"},
			LanguageSpoken: []string{"English"},
			HardConstraint: constraints[i%len(constraints)],
		}
	}
	return users
}

func generatedPreferences(t *testing.T, users []models.User) map[string]*preference.Bundle {
	t.Helper()
	ids := make([]string, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	bundles, err := preference.GenerateMultipleUserPreferences(1234, ids)
	if err != nil {
		t.Fatalf("GenerateMultipleUserPreferences() error = %v", err)
	}
	return preference.Index(bundles)
}

// alwaysWatch returns a bundle whose gate tables give probability 1 every day.
func alwaysWatch(t *testing.T, userID string) *preference.Bundle {
	t.Helper()
	b, err := preference.GenerateSingleUserPreferences(probability.NewRand(5), userID)
	if err != nil {
		t.Fatalf("GenerateSingleUserPreferences() error = %v", err)
	}
	b.Season = probability.Uniform(models.Seasons())
	b.DayOfWeek = probability.Uniform(models.DaysOfWeek())
	return &b
}

func testDays(t *testing.T, n int) []calendar.DayContext {
	t.Helper()
	days, err := calendar.BuildDayMapping(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), n)
	if err != nil {
		t.Fatalf("BuildDayMapping() error = %v", err)
	}
	return days
}

func newTestSimulator(t *testing.T, seed uint64, workers int) *Simulator {
	t.Helper()
	sim, err := NewSimulator(&Config{Seed: seed, Workers: workers}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewSimulator() error = %v", err)
	}
	return sim
}

func TestRun_DeterministicForSeed(t *testing.T) {
	users := testUsers(12)
	in := Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: generatedPreferences(t, users),
		Days:        testDays(t, 60),
	}

	first, err := newTestSimulator(t, 99, 4).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	second, err := newTestSimulator(t, 99, 4).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(first.Records) == 0 {
		t.Fatal("expected some records over 60 days")
	}
	if !reflect.DeepEqual(first.Records, second.Records) {
		t.Error("identical inputs and seed produced different streams")
	}

	other, err := newTestSimulator(t, 100, 4).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if reflect.DeepEqual(first.Records, other.Records) {
		t.Error("different seeds produced identical streams")
	}
}

func TestRun_WorkerCountDoesNotChangeOutput(t *testing.T) {
	users := testUsers(8)
	in := Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: generatedPreferences(t, users),
		Days:        testDays(t, 45),
	}

	serial, err := newTestSimulator(t, 7, 1).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	parallel, err := newTestSimulator(t, 7, 16).Run(context.Background(), in)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !reflect.DeepEqual(serial.Records, parallel.Records) {
		t.Error("output depends on worker count")
	}
	if serial.Trials != parallel.Trials {
		t.Errorf("trials = %d vs %d", serial.Trials, parallel.Trials)
	}
}

func TestRun_OrderedByDayThenRoster(t *testing.T) {
	users := testUsers(4)
	prefs := make(map[string]*preference.Bundle, len(users))
	for _, u := range users {
		prefs[u.ID] = alwaysWatch(t, u.ID)
	}
	res, err := newTestSimulator(t, 3, 8).Run(context.Background(), Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: prefs,
		Days:        testDays(t, 10),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// Every user watches every day and every constraint has eligible movies.
	if len(res.Records) != 40 {
		t.Fatalf("records = %d, want 40 (failures %v)", len(res.Records), res.Failures)
	}
	for i, rec := range res.Records {
		wantDay, wantUser := i/len(users), users[i%len(users)].ID
		if rec.DayNumber != wantDay || rec.UserID != wantUser {
			t.Fatalf("record %d = day %d user %s, want day %d user %s", i, rec.DayNumber, rec.UserID, wantDay, wantUser)
		}
		if rec.Satisfaction < 0 || rec.Satisfaction > 1 {
			t.Errorf("record %d satisfaction = %v", i, rec.Satisfaction)
		}
	}
	if res.Trials != 40 || res.Successes != 40 {
		t.Errorf("trials = %d successes = %d, want 40/40", res.Trials, res.Successes)
	}
}

func TestRun_ZeroProbabilityNeverWatches(t *testing.T) {
	users := testUsers(3)
	prefs := make(map[string]*preference.Bundle, len(users))
	for _, u := range users {
		prefs[u.ID] = alwaysWatch(t, u.ID)
	}

	never := alwaysWatch(t, users[1].ID)
	never.WatchTendency = preference.MaxWatchTendency
	never.Season = probability.NewTable(models.Seasons(), []float64{0, 0, 0, 0})
	prefs[users[1].ID] = never

	res, err := newTestSimulator(t, 11, 2).Run(context.Background(), Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: prefs,
		Days:        testDays(t, 90),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, rec := range res.Records {
		if rec.UserID == users[1].ID {
			t.Fatalf("user %s with watch probability 0 appeared on day %d", rec.UserID, rec.DayNumber)
		}
	}
	// Three users, 90 days; the zero-probability user burns all five trials daily.
	if want := 90*2 + 90*5; res.Trials != want {
		t.Errorf("trials = %d, want %d", res.Trials, want)
	}
}

func TestRun_NoEligibleMovieIsSkippedAndReported(t *testing.T) {
	users := testUsers(2)
	users[0].HardConstraint = "strict_award_hunter"
	prefs := map[string]*preference.Bundle{
		users[0].ID: alwaysWatch(t, users[0].ID),
		users[1].ID: alwaysWatch(t, users[1].ID),
	}

	res, err := newTestSimulator(t, 1, 2).Run(context.Background(), Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: prefs,
		Days:        testDays(t, 5),
	})
	if err != nil {
		t.Fatalf("Run() error = %v, want run to continue", err)
	}

	if len(res.Failures) != 5 {
		t.Fatalf("failures = %d, want 5", len(res.Failures))
	}
	for i, f := range res.Failures {
		if f.UserID != users[0].ID || f.DayNumber != i {
			t.Errorf("failure %d = %+v", i, f)
		}
		if !errors.Is(f.Err, catalog.ErrNoEligibleMovie) {
			t.Errorf("failure %d error = %v, want ErrNoEligibleMovie", i, f.Err)
		}
	}
	if len(res.Records) != 5 {
		t.Errorf("records = %d, want 5 from the unconstrained user", len(res.Records))
	}
}

func TestRun_EmptyTableIsFatal(t *testing.T) {
	users := testUsers(1)
	b := alwaysWatch(t, users[0].ID)
	b.Companion = probability.Table{}

	_, err := newTestSimulator(t, 1, 1).Run(context.Background(), Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: map[string]*preference.Bundle{users[0].ID: b},
		Days:        testDays(t, 3),
	})
	if !errors.Is(err, probability.ErrEmptyDistribution) {
		t.Errorf("Run() error = %v, want ErrEmptyDistribution", err)
	}
}

func TestRun_MissingPreferences(t *testing.T) {
	_, err := newTestSimulator(t, 1, 1).Run(context.Background(), Input{
		Users:       testUsers(2),
		Catalog:     testCatalog(),
		Preferences: map[string]*preference.Bundle{},
		Days:        testDays(t, 1),
	})
	if !errors.Is(err, ErrMissingPreferences) {
		t.Errorf("Run() error = %v, want ErrMissingPreferences", err)
	}
}

func TestRun_CanceledContext(t *testing.T) {
	users := testUsers(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestSimulator(t, 1, 1).Run(ctx, Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: generatedPreferences(t, users),
		Days:        testDays(t, 3),
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

func TestRun_CarriesRunID(t *testing.T) {
	users := testUsers(1)
	ctx := logging.ContextWithRunID(context.Background(), "run-123")
	res, err := newTestSimulator(t, 1, 1).Run(ctx, Input{
		Users:       users,
		Catalog:     testCatalog(),
		Preferences: generatedPreferences(t, users),
		Days:        testDays(t, 1),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res.RunID != "run-123" {
		t.Errorf("RunID = %q, want run-123", res.RunID)
	}
}

func TestWatchTrials(t *testing.T) {
	rng := probability.NewRand(1)
	if trials, watched := watchTrials(rng, 0, 5); watched || trials != 5 {
		t.Errorf("p=0: trials=%d watched=%v, want 5/false", trials, watched)
	}
	if trials, watched := watchTrials(rng, 1, 5); !watched || trials != 1 {
		t.Errorf("p=1: trials=%d watched=%v, want 1/true", trials, watched)
	}
}

func TestConfig(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
	if err := (&Config{Workers: -1}).Validate(); err == nil {
		t.Error("negative workers accepted")
	}
	if _, err := NewSimulator(&Config{Workers: -1}, zerolog.Nop()); err == nil {
		t.Error("NewSimulator accepted invalid config")
	}

	cfg := &Config{Seed: 5, Workers: 2}
	clone := cfg.Clone()
	clone.Seed = 6
	if cfg.Seed != 5 {
		t.Error("Clone() shares state")
	}
	if (&Config{}).seed() != DefaultSeed {
		t.Error("zero seed does not fall back to DefaultSeed")
	}
}
