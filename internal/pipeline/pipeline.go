// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinesynth/internal/behavior"
	"github.com/tomtom215/cinesynth/internal/calendar"
	"github.com/tomtom215/cinesynth/internal/catalog"
	"github.com/tomtom215/cinesynth/internal/config"
	"github.com/tomtom215/cinesynth/internal/dataio"
	"github.com/tomtom215/cinesynth/internal/demographics"
	"github.com/tomtom215/cinesynth/internal/logging"
	"github.com/tomtom215/cinesynth/internal/metrics"
	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/preference"
)

// Stage names a unit of work the CLI can run.
type Stage string

// Stages, in dependency order.
const (
	StageUsers       Stage = "users"
	StagePreferences Stage = "preferences"
	StageBehaviors   Stage = "behaviors"
	StageAll         Stage = "all"
)

// ParseStage validates a stage name.
func ParseStage(s string) (Stage, error) {
	switch st := Stage(s); st {
	case StageUsers, StagePreferences, StageBehaviors, StageAll:
		return st, nil
	default:
		return "", fmt.Errorf("unknown stage %q (want users, preferences, behaviors or all)", s)
	}
}

// Pipeline wires configuration, file I/O and the generators together.
type Pipeline struct {
	cfg *config.Config

	// base is handed to components, which add their own component field.
	base   zerolog.Logger
	logger zerolog.Logger
}

// New creates a pipeline for a validated configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *config.Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{
		cfg:    cfg,
		base:   logger,
		logger: logger.With().Str("component", "pipeline").Logger(),
	}
}

// seed returns the run seed. Zero selects the default seed.
func (p *Pipeline) seed() uint64 {
	if p.cfg.Generation.Seed == 0 {
		return behavior.DefaultSeed
	}
	return p.cfg.Generation.Seed
}

// stageLogger returns the pipeline logger with the run ID of ctx attached.
func (p *Pipeline) stageLogger(ctx context.Context) *zerolog.Logger {
	return logging.Ctx(logging.ContextWithLogger(ctx, p.logger))
}

// Run executes stage and, when configured, writes the metrics textfile.
// A run ID is attached to ctx if it does not carry one.
func (p *Pipeline) Run(ctx context.Context, stage Stage) error {
	if logging.RunIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewRunID(ctx)
	}
	logger := p.stageLogger(ctx)
	logger.Info().Str("stage", string(stage)).Uint64("seed", p.seed()).Msg("starting")
	start := time.Now()

	var err error
	switch stage {
	case StageUsers:
		_, err = p.Users(ctx)
	case StagePreferences:
		_, err = p.Preferences(ctx, nil)
	case StageBehaviors:
		_, err = p.Behaviors(ctx, nil, nil)
	case StageAll:
		err = p.all(ctx)
	default:
		err = fmt.Errorf("unknown stage %q", stage)
	}
	if err != nil {
		return err
	}

	if path := p.cfg.Paths.MetricsTextfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			return err
		}
		logger.Debug().Str("path", path).Msg("metrics textfile written")
	}

	logger.Info().Str("stage", string(stage)).Dur("duration", time.Since(start)).Msg("finished")
	return nil
}

func (p *Pipeline) all(ctx context.Context) error {
	users, err := p.Users(ctx)
	if err != nil {
		return err
	}
	bundles, err := p.Preferences(ctx, dataio.UserIDs(users))
	if err != nil {
		return err
	}
	_, err = p.Behaviors(ctx, users, bundles)
	return err
}

// Users generates the roster and writes the user table.
func (p *Pipeline) Users(ctx context.Context) ([]models.User, error) {
	defer metrics.TimeStage(string(StageUsers))()

	tables, err := demographics.LoadTables(p.cfg.Paths.UserProbabilities)
	if err != nil {
		return nil, err
	}
	gen := demographics.NewGenerator(tables, p.seed(), *logging.Ctx(logging.ContextWithLogger(ctx, p.base)))
	users, err := gen.Generate(ctx, p.cfg.Generation.NumUsers)
	if err != nil {
		return nil, fmt.Errorf("generate users: %w", err)
	}
	if err := dataio.SaveUsers(p.cfg.Paths.Users, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	metrics.RecordUsersGenerated(len(users))

	p.stageLogger(ctx).Info().Int("users", len(users)).Str("path", p.cfg.Paths.Users).Msg("users written")
	return users, nil
}

// Preferences generates one bundle per user ID and writes the preference
// file. With no IDs it covers U0001..UNNNN for the configured roster size.
func (p *Pipeline) Preferences(ctx context.Context, userIDs []string) ([]preference.Bundle, error) {
	defer metrics.TimeStage(string(StagePreferences))()

	if userIDs == nil {
		userIDs = make([]string, p.cfg.Generation.NumUsers)
		for i := range userIDs {
			userIDs[i] = demographics.UserID(i)
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundles, err := preference.GenerateMultipleUserPreferences(p.seed(), userIDs)
	if err != nil {
		return nil, fmt.Errorf("generate preferences: %w", err)
	}
	if err := dataio.SavePreferences(p.cfg.Paths.Preferences, bundles); err != nil {
		return nil, fmt.Errorf("save preferences: %w", err)
	}
	metrics.RecordPreferencesGenerated(len(bundles))

	p.stageLogger(ctx).Info().Int("bundles", len(bundles)).Str("path", p.cfg.Paths.Preferences).Msg("preferences written")
	return bundles, nil
}

// Behaviors simulates viewing and writes the behavior table. Nil users or
// bundles are loaded from the configured files.
func (p *Pipeline) Behaviors(ctx context.Context, users []models.User, bundles []preference.Bundle) (*behavior.Result, error) {
	defer metrics.TimeStage(string(StageBehaviors))()

	var err error
	if users == nil {
		if users, err = dataio.LoadUsers(p.cfg.Paths.Users); err != nil {
			return nil, fmt.Errorf("load users: %w", err)
		}
	}
	if bundles == nil {
		if bundles, err = dataio.LoadPreferences(p.cfg.Paths.Preferences); err != nil {
			return nil, fmt.Errorf("load preferences: %w", err)
		}
	}
	movies, err := dataio.LoadMovies(p.cfg.Paths.Movies)
	if err != nil {
		return nil, fmt.Errorf("load movies: %w", err)
	}

	cat := catalog.Build(movies, p.cfg.CatalogOptions())
	metrics.SetCatalogSubsetSizes(cat.Sizes())
	logger := p.stageLogger(ctx)
	logger.Debug().Str("catalog", cat.String()).Msg("catalog built")

	start, err := p.cfg.StartDate()
	if err != nil {
		return nil, err
	}
	days, err := calendar.BuildDayMapping(start, p.cfg.Generation.NumDays)
	if err != nil {
		return nil, err
	}

	sim, err := behavior.NewSimulator(p.cfg.BehaviorConfig(), p.base)
	if err != nil {
		return nil, err
	}
	result, err := sim.Run(ctx, behavior.Input{
		Users:       users,
		Catalog:     cat,
		Preferences: preference.Index(bundles),
		Days:        days,
	})
	if err != nil {
		return nil, fmt.Errorf("simulate: %w", err)
	}

	if err := dataio.SaveBehaviors(p.cfg.Paths.Behaviors, result.Records); err != nil {
		return nil, fmt.Errorf("save behaviors: %w", err)
	}

	logger.Info().
		Int("records", len(result.Records)).
		Int("skipped", len(result.Failures)).
		Str("path", p.cfg.Paths.Behaviors).
		Msg("behaviors written")
	return result, nil
}
