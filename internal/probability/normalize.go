// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package probability

import (
	"fmt"
	"math"
	"strconv"

	"github.com/cockroachdb/apd/v3"
)

// Precision is the number of decimal places kept by Normalize and Round.
const Precision = 2

var (
	truncContext = newContext(apd.RoundDown)
	one          = apd.New(1, 0)
)

func newContext(mode apd.Rounder) *apd.Context {
	c := apd.BaseContext.WithPrecision(34)
	c.Rounding = mode
	return c
}

// Truncate cuts the shortest decimal form of x to two decimal places,
// rounding toward zero.
func Truncate(x float64) float64 {
	return quantize(truncContext, x)
}

// Round rounds the exact binary value of x to two decimal places. Only
// exactly representable ties (0.125, 0.375, ...) go to even; 0.665 is stored
// just above its tie and rounds to 0.67.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	f, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', Precision, 64), 64)
	if err != nil {
		return x
	}
	return f
}

func quantize(ctx *apd.Context, x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	var d, q apd.Decimal
	if _, err := d.SetFloat64(x); err != nil {
		return x
	}
	if _, err := ctx.Quantize(&q, &d, -Precision); err != nil {
		return x
	}
	f, err := q.Float64()
	if err != nil {
		return x
	}
	return f
}

// Normalize rescales t so its weights sum to exactly 1.00 at two-decimal
// granularity. Each share is truncated toward zero and the shortfall is
// added to the first category holding the largest truncated share.
func Normalize(t Table) (Table, error) {
	if err := t.Validate(); err != nil {
		return Table{}, err
	}
	total := t.Sum()

	shares := make([]apd.Decimal, len(t.entries))
	var sum apd.Decimal
	largest := 0
	for i, e := range t.entries {
		var raw apd.Decimal
		if _, err := raw.SetFloat64(e.Weight / total); err != nil {
			return Table{}, fmt.Errorf("normalize %q: %w", e.Label, err)
		}
		if _, err := truncContext.Quantize(&shares[i], &raw, -Precision); err != nil {
			return Table{}, fmt.Errorf("normalize %q: %w", e.Label, err)
		}
		if _, err := truncContext.Add(&sum, &sum, &shares[i]); err != nil {
			return Table{}, fmt.Errorf("normalize %q: %w", e.Label, err)
		}
		if shares[i].Cmp(&shares[largest]) > 0 {
			largest = i
		}
	}

	var shortfall apd.Decimal
	if _, err := truncContext.Sub(&shortfall, one, &sum); err != nil {
		return Table{}, fmt.Errorf("normalize shortfall: %w", err)
	}
	if !shortfall.IsZero() {
		if _, err := truncContext.Add(&shares[largest], &shares[largest], &shortfall); err != nil {
			return Table{}, fmt.Errorf("normalize shortfall: %w", err)
		}
	}

	out := make([]Entry, len(t.entries))
	for i, e := range t.entries {
		f, err := shares[i].Float64()
		if err != nil {
			return Table{}, fmt.Errorf("normalize %q: %w", e.Label, err)
		}
		out[i] = Entry{Label: e.Label, Weight: f}
	}
	return Table{entries: out}, nil
}
