// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package behavior

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/cinesynth/internal/calendar"
	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/logging"
	"github.com/tomtom215/cinesynth/internal/metrics"
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/preference"
	"github.com/tomtom215/cinesynth/internal/probability"
	"github.com/tomtom215/cinesynth/internal/satisfaction"
)

// ErrMissingPreferences is returned when a roster user has no bundle.
var ErrMissingPreferences = errors.New("missing preference bundle")

// Skip reasons reported in metrics.
const reasonNoEligibleMovie = "no_eligible_movie"

// Input is everything a run reads. All fields are treated as read-only.
type Input struct {
	Users       []models.User
	Catalog     *catalog.Catalog
	Preferences map[string]*preference.Bundle
	Days        []calendar.DayContext
}

// Failure describes a user-day that was skipped.
type Failure struct {
	DayNumber int
	Date      time.Time
	UserID    string
	Err       error
}

// Result is the outcome of a run.
type Result struct {
	// RunID is the run's correlation ID, if the context carried one.
	RunID string

	// Records are ordered by day, then roster order.
	Records []models.BehaviorRecord

	// Failures lists skipped user-days in the same order.
	Failures []Failure

	// Trials and Successes count Bernoulli watch trials.
	Trials    int
	Successes int
}

// Simulator runs the viewing simulation. It is safe for concurrent use;
// each Run is independent.
type Simulator struct {
	config *Config
	logger zerolog.Logger
}

// NewSimulator creates a simulator.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSimulator(cfg *Config, logger zerolog.Logger) (*Simulator, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Simulator{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "behavior").Logger(),
	}, nil
}

// viewer is a roster entry resolved once before the run.
type viewer struct {
	index      int
	user       *models.User
	bundle     *preference.Bundle
	constraint catalog.Constraint
}

// dayResult is the per-day output slot.
type dayResult struct {
	records   []models.BehaviorRecord
	failures  []Failure
	trials    int
	successes int
}

// Run simulates every day in in.Days for every user in in.Users.
func (s *Simulator) Run(ctx context.Context, in Input) (*Result, error) {
	start := time.Now()
	logger := s.logger
	runID := logging.RunIDFromContext(ctx)
	if runID != "" {
		logger = logger.With().Str("run_id", runID).Logger()
	}

	if in.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	viewers, err := s.resolveViewers(in, logger)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int("users", len(viewers)).
		Int("days", len(in.Days)).
		Int("movies", in.Catalog.Len()).
		Int("workers", s.config.workers()).
		Msg("starting behavior simulation")

	slots := make([]dayResult, len(in.Days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.workers())

	for i := range in.Days {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := s.simulateDay(in.Catalog, in.Days[i], viewers, logger)
			if err != nil {
				return fmt.Errorf("day %d: %w", in.Days[i].Index, err)
			}
			slots[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{RunID: runID}
	for i := range slots {
		result.Records = append(result.Records, slots[i].records...)
		result.Failures = append(result.Failures, slots[i].failures...)
		result.Trials += slots[i].trials
		result.Successes += slots[i].successes
	}
	metrics.RecordWatchTrials(result.Successes, result.Trials-result.Successes)

	logger.Info().
		Int("records", len(result.Records)).
		Int("skipped", len(result.Failures)).
		Int("trials", result.Trials).
		Dur("duration", time.Since(start)).
		Msg("behavior simulation complete")

	return result, nil
}

// resolveViewers pairs each user with its bundle and parsed constraint.
func (s *Simulator) resolveViewers(in Input, logger zerolog.Logger) ([]viewer, error) {
	viewers := make([]viewer, len(in.Users))
	for i := range in.Users {
		u := &in.Users[i]
		bundle, ok := in.Preferences[u.ID]
		if !ok || bundle == nil {
			return nil, fmt.Errorf("%w for user %s", ErrMissingPreferences, u.ID)
		}
		constraint, err := catalog.ParseConstraint(u.HardConstraint)
		if err != nil {
			logger.Warn().
				Str("user_id", u.ID).
				Str("hard_constraint", u.HardConstraint).
				Msg("unknown hard constraint, using no_constraint")
		}
		viewers[i] = viewer{index: i, user: u, bundle: bundle, constraint: constraint}
	}
	return viewers, nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (s *Simulator) simulateDay(cat *catalog.Catalog, day calendar.DayContext, viewers []viewer, logger zerolog.Logger) (dayResult, error) {
	var res dayResult
	seed := s.config.seed()

	for i := range viewers {
		v := &viewers[i]
		rng := probability.NewRand(seed, probability.StreamBehavior, uint64(day.Index), uint64(v.index))

		trials, watched := watchTrials(rng, v.bundle.WatchProbability(day.Season, day.DayOfWeek), v.bundle.WatchTendency)
		res.trials += trials
		if !watched {
			continue
		}
		res.successes++

		rec, err := watchEvent(rng, cat, day, v)
		if err != nil {
			var nem *catalog.NoEligibleMovieError
			if errors.As(err, &nem) {
				nem.UserID = v.user.ID
				logger.Warn().
					Err(err).
					Int("day", day.Index).
					Str("user_id", v.user.ID).
					Str("subset", nem.Subset.String()).
					Msg("skipping user-day")
				metrics.RecordSkippedUnit(reasonNoEligibleMovie)
				res.failures = append(res.failures, Failure{
					DayNumber: day.Index,
					Date:      day.Date,
					UserID:    v.user.ID,
					Err:       err,
				})
				continue
			}
			return dayResult{}, fmt.Errorf("user %s: %w", v.user.ID, err)
		}

		metrics.RecordBehavior(rec.Satisfaction)
		res.records = append(res.records, rec)
	}

	logger.Debug().
		Int("day", day.Index).
		Str("date", day.Date.Format(calendar.DateLayout)).
		Int("records", len(res.records)).
		Msg("simulated day")

	return res, nil
}

// watchTrials runs up to tendency Bernoulli trials with success probability
// p, stopping at the first success.
func watchTrials(rng *rand.Rand, p float64, tendency int) (trials int, watched bool) {
	for trials < tendency {
		trials++
		if probability.Bernoulli(rng, p) {
			return trials, true
		}
	}
	return trials, false
}

// watchEvent draws the context of a watch, selects a movie and scores it.
func watchEvent(rng *rand.Rand, cat *catalog.Catalog, day calendar.DayContext, v *viewer) (models.BehaviorRecord, error) {
	companions, err := probability.Pick(rng, v.bundle.Companion)
	if err != nil {
		return models.BehaviorRecord{}, fmt.Errorf("companion table: %w", err)
	}
	location, err := probability.Pick(rng, v.bundle.Location)
	if err != nil {
		return models.BehaviorRecord{}, fmt.Errorf("location table: %w", err)
	}
	timeOfDay, err := probability.Pick(rng, v.bundle.TimeOfDay)
	if err != nil {
		return models.BehaviorRecord{}, fmt.Errorf("time of day table: %w", err)
	}
	mood, err := probability.Choice(rng, models.Moods())
	if err != nil {
		return models.BehaviorRecord{}, err
	}

	movie, err := cat.PickForConstraint(rng, v.constraint, companions, timeOfDay)
	if err != nil {
		return models.BehaviorRecord{}, err
	}

	return models.BehaviorRecord{
		DayNumber:    day.Index,
		Date:         day.Date,
		Season:       day.Season,
		DayOfWeek:    day.DayOfWeek,
		TimeOfDay:    timeOfDay,
		UserID:       v.user.ID,
		MovieID:      movie.ID,
		Location:     location,
		Companions:   companions,
		Mood:         mood,
		Satisfaction: satisfaction.Score(satisfaction.InputFor(v.user, movie, mood), v.bundle.Satisfaction),
	}, nil
}
