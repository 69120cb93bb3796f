// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package probability

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/goccy/go-json"
)

var (
	// ErrEmptyDistribution is returned when a table has no entries or no
	// positive weight.
	ErrEmptyDistribution = errors.New("empty distribution")

	// ErrNegativeWeight is returned when a table holds a negative or NaN weight.
	ErrNegativeWeight = errors.New("negative weight")
)

// Entry is a single category and its weight.
type Entry struct {
	Label  string
	Weight float64
}

// Table is an ordered category-to-weight mapping. The zero value is an
// empty table. Tables are treated as immutable once built.
type Table struct {
	entries []Entry
}

// NewTable builds a table from parallel label and weight slices.
// It panics if the slices differ in length.
func NewTable(labels []string, weights []float64) Table {
	if len(labels) != len(weights) {
		panic(fmt.Sprintf("probability: %d labels but %d weights", len(labels), len(weights)))
	}
	entries := make([]Entry, len(labels))
	for i := range labels {
		entries[i] = Entry{Label: labels[i], Weight: weights[i]}
	}
	return Table{entries: entries}
}

// FromEntries builds a table from entries in the given order.
func FromEntries(entries ...Entry) Table {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return Table{entries: cp}
}

// Uniform builds a table giving every label weight 1.
func Uniform(labels []string) Table {
	weights := make([]float64, len(labels))
	for i := range weights {
		weights[i] = 1
	}
	return NewTable(labels, weights)
}

// Len returns the number of categories.
func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the entries in order.
func (t Table) Entries() []Entry {
	cp := make([]Entry, len(t.entries))
	copy(cp, t.entries)
	return cp
}

// Labels returns the category labels in order.
func (t Table) Labels() []string {
	labels := make([]string, len(t.entries))
	for i, e := range t.entries {
		labels[i] = e.Label
	}
	return labels
}

// Get returns the weight for label and whether it is present.
func (t Table) Get(label string) (float64, bool) {
	for _, e := range t.entries {
		if e.Label == label {
			return e.Weight, true
		}
	}
	return 0, false
}

// Weight returns the weight for label, or 0 when the label is missing.
func (t Table) Weight(label string) float64 {
	w, _ := t.Get(label)
	return w
}

// Sum returns the total weight.
func (t Table) Sum() float64 {
	var sum float64
	for _, e := range t.entries {
		sum += e.Weight
	}
	return sum
}

// Validate reports whether the table can be sampled.
func (t Table) Validate() error {
	if len(t.entries) == 0 {
		return fmt.Errorf("%w: no categories", ErrEmptyDistribution)
	}
	var total float64
	for _, e := range t.entries {
		if e.Weight < 0 || math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("%w: %q has weight %v", ErrNegativeWeight, e.Label, e.Weight)
		}
		total += e.Weight
	}
	if total <= 0 {
		return fmt.Errorf("%w: all %d weights are zero", ErrEmptyDistribution, len(t.entries))
	}
	return nil
}

// MarshalJSON encodes the table as a JSON object with keys in table order.
func (t Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range t.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Label)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(e.Weight)
		if err != nil {
			return nil, fmt.Errorf("weight for %q: %w", e.Label, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the key order of the document.
func (t *Table) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("probability table must be a JSON object, got %v", tok)
	}

	entries := make([]Entry, 0)
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		label, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", tok)
		}
		var weight float64
		if err := dec.Decode(&weight); err != nil {
			return fmt.Errorf("weight for %q: %w", label, err)
		}
		if _, dup := seen[label]; dup {
			return fmt.Errorf("duplicate category %q", label)
		}
		seen[label] = struct{}{}
		entries = append(entries, Entry{Label: label, Weight: weight})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	t.entries = entries
	return nil
}
