// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package main

import (
	"flag"

	"github.com/tomtom215/cinesynth/internal/config"
)

// flagValues holds the command line overrides. Only flags that were set
// on the command line are applied.
type flagValues struct {
	configPath string

	numUsers  int
	numDays   int
	startDate string
	seed      uint64
	workers   int

	movies            string
	users             string
	preferences       string
	behaviors         string
	userProbabilities string
	metricsTextfile   string

	caseInsensitive bool
	longMovie       int

	logLevel  string
	logFormat string
}

func registerFlags(fs *flag.FlagSet) *flagValues {
	v := &flagValues{}
	d := config.Default()

	fs.StringVar(&v.configPath, "config", "", "YAML config file (default: $CONFIG_PATH or ./cinesynth.yaml)")

	fs.IntVar(&v.numUsers, "num_users", d.Generation.NumUsers, "number of users to generate")
	fs.IntVar(&v.numDays, "num_days", d.Generation.NumDays, "number of days to simulate")
	fs.StringVar(&v.startDate, "start_date", d.Generation.StartDate, "first simulated day (YYYY-MM-DD)")
	fs.Uint64Var(&v.seed, "seed", d.Generation.Seed, "random seed")
	fs.IntVar(&v.workers, "workers", d.Generation.Workers, "days simulated concurrently (0 = GOMAXPROCS)")

	fs.StringVar(&v.movies, "movie_data_file", d.Paths.Movies, "movie table")
	fs.StringVar(&v.users, "user_output_file", d.Paths.Users, "user table")
	fs.StringVar(&v.preferences, "preference_output_file", d.Paths.Preferences, "preference JSON")
	fs.StringVar(&v.behaviors, "behavior_output_file", d.Paths.Behaviors, "behavior table")
	fs.StringVar(&v.userProbabilities, "user_probabilities_file", d.Paths.UserProbabilities, "demographic table overrides (JSON)")
	fs.StringVar(&v.metricsTextfile, "metrics_textfile", d.Paths.MetricsTextfile, "write Prometheus metrics to this file")

	fs.BoolVar(&v.caseInsensitive, "case_insensitive_genre_filter", d.Catalog.CaseInsensitiveGenreFilter, "match Thriller/Horror regardless of case")
	fs.IntVar(&v.longMovie, "long_movie_minutes", d.Catalog.LongMovieMinutes, "running time at which a movie counts as long")

	fs.StringVar(&v.logLevel, "log_level", d.Logging.Level, "log level")
	fs.StringVar(&v.logFormat, "log_format", d.Logging.Format, "log format (json or console)")
	return v
}

// loadConfig layers the set flags over the file and environment config.
func loadConfig(fs *flag.FlagSet, v *flagValues) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if v.configPath != "" {
		cfg, err = config.LoadFile(v.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "num_users":
			cfg.Generation.NumUsers = v.numUsers
		case "num_days":
			cfg.Generation.NumDays = v.numDays
		case "start_date":
			cfg.Generation.StartDate = v.startDate
		case "seed":
			cfg.Generation.Seed = v.seed
		case "workers":
			cfg.Generation.Workers = v.workers
		case "movie_data_file":
			cfg.Paths.Movies = v.movies
		case "user_output_file":
			cfg.Paths.Users = v.users
		case "preference_output_file":
			cfg.Paths.Preferences = v.preferences
		case "behavior_output_file":
			cfg.Paths.Behaviors = v.behaviors
		case "user_probabilities_file":
			cfg.Paths.UserProbabilities = v.userProbabilities
		case "metrics_textfile":
			cfg.Paths.MetricsTextfile = v.metricsTextfile
		case "case_insensitive_genre_filter":
			cfg.Catalog.CaseInsensitiveGenreFilter = v.caseInsensitive
		case "long_movie_minutes":
			cfg.Catalog.LongMovieMinutes = v.longMovie
		case "log_level":
			cfg.Logging.Level = v.logLevel
		case "log_format":
			cfg.Logging.Format = v.logFormat
		}
	})

	// flags may have broken what the loader validated
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
