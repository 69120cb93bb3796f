// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package behavior

import (
	"errors"
	"runtime"
)

// DefaultSeed is used when Config.Seed is zero.
const DefaultSeed uint64 = 42

// Config contains simulator settings.
type Config struct {
	// Seed is the run seed. If zero, DefaultSeed is used.
	Seed uint64 `json:"seed"`

	// Workers bounds the number of days simulated concurrently.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int `json:"workers"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Seed:    DefaultSeed,
		Workers: 0,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return errors.New("workers must be non-negative")
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

func (c *Config) seed() uint64 {
	if c.Seed == 0 {
		return DefaultSeed
	}
	return c.Seed
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
