// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator and translates field
// failures into readable messages. Field names are reported by their koanf
// or JSON key, so configuration errors read "num_users must be at least 1"
// rather than quoting Go field names.
//
// It validates the loaded configuration and every user and movie row read
// by internal/dataio.
//
// # Custom Tags
//
//   - isodate: a YYYY-MM-DD calendar date
//
// # Usage
//
//	type GenerationConfig struct {
//	    NumUsers  int    `koanf:"num_users" validate:"min=1"`
//	    StartDate string `koanf:"start_date" validate:"required,isodate"`
//	}
//
//	if verr := validation.ValidateStruct(&cfg); verr != nil {
//	    for _, fe := range verr.Errors() {
//	        fmt.Println(fe.Field(), fe.Tag())
//	    }
//	}
package validation
