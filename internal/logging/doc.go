// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package logging provides centralized zerolog-based structured logging for Cinesynth.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from the loaded configuration
//   - Console output for interactive runs, JSON for pipelines
//   - Run IDs carried in context.Context and attached to every log line
//
// All output goes to stderr so generated data can be piped from stdout.
//
// # Quick Start
//
//	logging.Init(logging.Config{Level: "info", Format: "json"})
//
//	ctx := logging.ContextWithNewRunID(context.Background())
//	logging.Ctx(ctx).Info().Int("users", 100).Msg("users generated")
//
// Components receive a zerolog.Logger by value and add a component field.
// Entry points that log on their own take a component logger directly:
//
//	cliLog := logging.WithComponent("cli")
//
// Stages store their logger in the context so run IDs follow every line:
//
//	ctx = logging.ContextWithLogger(ctx, stageLogger)
//	logging.Ctx(ctx).Info().Str("path", p).Msg("users written")
//
// # Configuration
//
// Environment Variables (through internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error, disabled (default: info)
//   - LOG_FORMAT: json, console (default: console)
//   - LOG_CALLER: true/false (default: false)
//
// # Best Practices
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Ctx(ctx).Info().Str("path", p).Msg("wrote behaviors")  // Correct
//	logging.Ctx(ctx).Info().Str("path", p)                         // WRONG - not emitted
package logging
