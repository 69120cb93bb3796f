// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package preference

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tomtom215/cinesynth/internal/probability"
)

// ErrInvalidWeights is returned when a weight vector has the wrong signs or
// does not sum to 1.00 in absolute value.
var ErrInvalidWeights = errors.New("invalid satisfaction weights")

// weightTolerance absorbs float error when checking the absolute sum.
const weightTolerance = 1e-6

// Weights is the per-user satisfaction weight vector. Disliked is stored
// signed and is never positive; every other component is non-negative.
type Weights struct {
	Liked    float64 `json:"liked_genre"`
	Disliked float64 `json:"disliked_genre"`
	Language float64 `json:"language"`
	IMDb     float64 `json:"imdb_rating"`
	Mood     float64 `json:"mood"`
	Rewatch  float64 `json:"rewatch"`
	Award    float64 `json:"award"`
}

// weightRange is the draw interval for one component.
type weightRange struct {
	label  string
	lo, hi float64
}

// componentRanges lists components in vector order.
var componentRanges = [...]weightRange{
	{"liked_genre", 0.2, 0.4},
	{"disliked_genre", 0.3, 0.5},
	{"language", 0.05, 0.2},
	{"imdb_rating", 0.15, 0.3},
	{"mood", 0.05, 0.2},
	{"rewatch", 0.05, 0.2},
	{"award", 0.05, 0.15},
}

func (w Weights) vector() [7]float64 {
	return [7]float64{w.Liked, w.Disliked, w.Language, w.IMDb, w.Mood, w.Rewatch, w.Award}
}

func weightsFromVector(v [7]float64) Weights {
	return Weights{
		Liked:    v[0],
		Disliked: v[1],
		Language: v[2],
		IMDb:     v[3],
		Mood:     v[4],
		Rewatch:  v[5],
		Award:    v[6],
	}
}

// AbsSum returns the sum of absolute component values.
func (w Weights) AbsSum() float64 {
	var sum float64
	for _, v := range w.vector() {
		sum += math.Abs(v)
	}
	return sum
}

// Validate checks component signs and the absolute sum.
func (w Weights) Validate() error {
	for i, v := range w.vector() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is %v", ErrInvalidWeights, componentRanges[i].label, v)
		}
	}
	if w.Disliked > 0 {
		return fmt.Errorf("%w: disliked_genre must not be positive, got %v", ErrInvalidWeights, w.Disliked)
	}
	for i, v := range w.vector() {
		if i != 1 && v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidWeights, componentRanges[i].label, v)
		}
	}
	if sum := w.AbsSum(); math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: absolute values sum to %v", ErrInvalidWeights, sum)
	}
	return nil
}

// GenerateSatisfactionWeights draws a weight vector. Each component is drawn
// from its range and rounded to two decimals; disliked is negated. The vector
// is then rescaled by the sum of absolute values using the same truncate and
// shortfall rule as probability.Normalize, so signs are kept and the absolute
// values sum to exactly 1.00.
func GenerateSatisfactionWeights(rng *rand.Rand) (Weights, error) {
	var raw [7]float64
	for i, r := range componentRanges {
		raw[i] = probability.Round(probability.UniformRange(rng, r.lo, r.hi))
	}
	raw[1] = -raw[1]
	return NormalizeWeights(weightsFromVector(raw))
}

// NormalizeWeights rescales w so the absolute values sum to 1.00 while
// keeping each component's sign.
func NormalizeWeights(w Weights) (Weights, error) {
	v := w.vector()
	entries := make([]probability.Entry, len(v))
	for i, x := range v {
		entries[i] = probability.Entry{Label: componentRanges[i].label, Weight: math.Abs(x)}
	}

	scaled, err := probability.Normalize(probability.FromEntries(entries...))
	if err != nil {
		return Weights{}, fmt.Errorf("normalize satisfaction weights: %w", err)
	}

	var out [7]float64
	for i, e := range scaled.Entries() {
		out[i] = math.Copysign(e.Weight, v[i])
	}
	return weightsFromVector(out), nil
}
