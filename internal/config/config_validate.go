// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package config

import (
	"fmt"
	"path/filepath"

	"github.com/tomtom215/cinesynth/internal/validation"
)

// Validate checks struct tags and cross-field rules. Every failure wraps
// ErrConfiguration.
func (c *Config) Validate() error {
	if se := validation.ValidateStruct(c); se != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, se)
	}

	if err := c.validatePaths(); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	return nil
}

// validatePaths rejects configurations where a stage would overwrite one of
// its own inputs.
func (c *Config) validatePaths() error {
	outputs := map[string]string{
		"paths.users":       c.Paths.Users,
		"paths.preferences": c.Paths.Preferences,
		"paths.behaviors":   c.Paths.Behaviors,
	}
	seen := make(map[string]string, len(outputs)+1)
	seen[filepath.Clean(c.Paths.Movies)] = "paths.movies"

	for _, name := range []string{"paths.users", "paths.preferences", "paths.behaviors"} {
		clean := filepath.Clean(outputs[name])
		if other, dup := seen[clean]; dup {
			return fmt.Errorf("%s and %s point to the same file %q", other, name, outputs[name])
		}
		seen[clean] = name
	}
	return nil
}
