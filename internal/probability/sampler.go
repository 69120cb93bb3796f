// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package probability

import (
	"fmt"
	"math/rand/v2"
)

// Pick draws one label from t with probability proportional to its weight.
// Weights need not sum to 1. Exactly one value is consumed from rng.
func Pick(rng *rand.Rand, t Table) (string, error) {
	if err := t.Validate(); err != nil {
		return "", err
	}

	target := rng.Float64() * t.Sum()
	var cumulative float64
	last := -1
	for i, e := range t.entries {
		if e.Weight == 0 {
			continue
		}
		cumulative += e.Weight
		last = i
		if target < cumulative {
			return e.Label, nil
		}
	}

	// Float accumulation can leave target just past the final boundary.
	if last < 0 {
		return "", fmt.Errorf("%w: no positive weight", ErrEmptyDistribution)
	}
	return t.entries[last].Label, nil
}

// Choice returns a uniformly random element of items.
func Choice(rng *rand.Rand, items []string) (string, error) {
	if len(items) == 0 {
		return "", fmt.Errorf("%w: no items to choose from", ErrEmptyDistribution)
	}
	return items[rng.IntN(len(items))], nil
}

// Bernoulli reports whether a trial with success probability p succeeds.
// p <= 0 never succeeds and p >= 1 always succeeds.
func Bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// UniformRange draws a float uniformly from [lo, hi).
func UniformRange(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
