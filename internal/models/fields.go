// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package models

import (
	"math"
	"strconv"
	"strings"
)

// ListSeparator joins list-valued fields in CSV output.
const ListSeparator = ", "

// SplitList parses a comma or comma-space delimited field into trimmed,
// non-empty tokens. Token order is preserved.
func SplitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinList is the inverse of SplitList.
func JoinList(items []string) string {
	return strings.Join(items, ListSeparator)
}

// ParseRating parses an IMDb rating. Empty, non-numeric, NaN and out of
// range values yield nil so the scorer treats them as absent.
func ParseRating(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 10 {
		return nil
	}
	return &v
}

// ParseFlag parses 0/1 style boolean columns. Anything other than a
// positive number or a true literal is false.
func ParseFlag(s string) bool {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	v, err := strconv.ParseFloat(s, 64)
	return err == nil && v > 0
}

// FormatFlag renders a boolean as the 0/1 encoding used by the CSV files.
func FormatFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
