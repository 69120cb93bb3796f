// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tomtom215/cinesynth/internal/models"
)

// ErrUnknownConstraint is returned by ParseConstraint for unrecognized tags.
var ErrUnknownConstraint = errors.New("unknown hard constraint")

// Constraint is a user's hard constraint.
type Constraint uint8

// Hard constraints.
const (
	ConstraintNone Constraint = iota
	ConstraintUnder13
	ConstraintTeen
	ConstraintNoMorningThrillerHorror
	ConstraintNoLongMovie
	ConstraintStrictAwardHunter
)

var constraintNames = map[Constraint]string{
	ConstraintNone:                    "no_constraint",
	ConstraintUnder13:                 "under_13",
	ConstraintTeen:                    "13_17",
	ConstraintNoMorningThrillerHorror: "no_morning_thriller_horror",
	ConstraintNoLongMovie:             "no_long_movie",
	ConstraintStrictAwardHunter:       "strict_award_hunter",
}

// constraintAliases accepts the tag spellings found in existing user files.
var constraintAliases = map[string]Constraint{
	"":                           ConstraintNone,
	"none":                       ConstraintNone,
	"no_constraint":              ConstraintNone,
	"under_13":                   ConstraintUnder13,
	"13_17":                      ConstraintTeen,
	"13_17_constraint":           ConstraintTeen,
	"no_morning_thriller_horror": ConstraintNoMorningThrillerHorror,
	"no_long_movie":              ConstraintNoLongMovie,
	"no_long_movie_constraint":   ConstraintNoLongMovie,
	"strict_award_hunter":        ConstraintStrictAwardHunter,
}

// ParseConstraint parses a hard constraint tag. Unknown tags return
// ConstraintNone together with ErrUnknownConstraint so the caller can decide
// whether to fall back or fail.
func ParseConstraint(tag string) (Constraint, error) {
	if c, ok := constraintAliases[strings.TrimSpace(tag)]; ok {
		return c, nil
	}
	return ConstraintNone, fmt.Errorf("%w: %q", ErrUnknownConstraint, tag)
}

// String returns the canonical tag.
func (c Constraint) String() string {
	if name, ok := constraintNames[c]; ok {
		return name
	}
	return fmt.Sprintf("constraint(%d)", uint8(c))
}

// Resolve picks the subset that applies to c given today's context.
func (c Constraint) Resolve(companions, timeOfDay string) Subset {
	withFamily := companions == models.CompanionFamily

	switch c {
	case ConstraintUnder13:
		if withFamily {
			return SubsetUnder13WithParent
		}
		return SubsetUnder13
	case ConstraintTeen:
		if withFamily {
			return SubsetTeenWithParent
		}
		return SubsetTeen
	case ConstraintNoMorningThrillerHorror:
		if timeOfDay == models.TimeMorning {
			return SubsetNoMorningThrillerHorror
		}
		return SubsetNoConstraint
	case ConstraintNoLongMovie:
		return SubsetNoLongMovie
	case ConstraintStrictAwardHunter:
		return SubsetStrictAwardHunter
	case ConstraintNone:
		return SubsetNoConstraint
	default:
		return SubsetNoConstraint
	}
}

// Subset names one precomputed eligibility list.
type Subset uint8

// Eligibility subsets.
const (
	SubsetUnder13 Subset = iota
	SubsetUnder13WithParent
	SubsetTeen
	SubsetTeenWithParent
	SubsetNoMorningThrillerHorror
	SubsetNoLongMovie
	SubsetStrictAwardHunter
	SubsetNoConstraint

	subsetCount
)

var subsetNames = [subsetCount]string{
	SubsetUnder13:                 "under_13",
	SubsetUnder13WithParent:       "under_13_with_parent",
	SubsetTeen:                    "13_17",
	SubsetTeenWithParent:          "13_17_with_parent",
	SubsetNoMorningThrillerHorror: "no_morning_thriller_horror",
	SubsetNoLongMovie:             "no_long_movie",
	SubsetStrictAwardHunter:       "strict_award_hunter",
	SubsetNoConstraint:            "no_constraint",
}

// Subsets lists every subset in declaration order.
func Subsets() []Subset {
	out := make([]Subset, subsetCount)
	for i := range out {
		out[i] = Subset(i)
	}
	return out
}

func (s Subset) String() string {
	if s < subsetCount {
		return subsetNames[s]
	}
	return fmt.Sprintf("subset(%d)", uint8(s))
}
