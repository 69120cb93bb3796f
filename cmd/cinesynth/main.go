// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinesynth/internal/logging"
	"github.com/tomtom215/cinesynth/internal/pipeline"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run parses args, loads configuration and executes one stage.
func run(args []string, stderr io.Writer) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		usage(stderr)
		if len(args) == 0 {
			return exitUsage
		}
		return exitOK
	}

	stage, err := pipeline.ParseStage(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		usage(stderr)
		return exitUsage
	}

	fs := flag.NewFlagSet(string(stage), flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := registerFlags(fs)
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := loadConfig(fs, opts)
	if err != nil {
		fmt.Fprintf(stderr, "cinesynth: %v\n", err)
		return exitError
	}

	logging.Init(cfg.LoggerConfig())
	cliLog := logging.WithComponent("cli")
	cliLog.Info().
		Str("stage", string(stage)).
		Int("num_users", cfg.Generation.NumUsers).
		Int("num_days", cfg.Generation.NumDays).
		Str("start_date", cfg.Generation.StartDate).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.ContextWithNewRunID(ctx)

	if err := pipeline.New(cfg, logging.Logger()).Run(ctx, stage); err != nil {
		if errors.Is(err, context.Canceled) {
			cliLog.Warn().Msg("Interrupted")
		} else {
			cliLog.Error().Err(err).Str("stage", string(stage)).Msg("Generation failed")
		}
		return exitError
	}
	return exitOK
}

func usage(w io.Writer) {
	fmt.Fprint(w, `Usage: cinesynth <command> [flags]

Commands:
  users        generate the user table
  preferences  generate preference bundles for U0001..UNNNN
  behaviors    simulate viewing from existing users, preferences and movies
  all          run users, preferences and behaviors in sequence

Run "cinesynth <command> -h" for the flags of a command.
`)
}
