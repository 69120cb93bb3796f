// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package dataio

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinesynth/internal/preference"
)

// preferenceIndent matches the layout of the original preference files.
const preferenceIndent = "    "

// WritePreferences writes bundles as one JSON object keyed by user ID.
// Users and table categories keep their order.
func WritePreferences(w io.Writer, bundles []preference.Bundle) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i := range bundles {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(bundles[i].UserID)
		if err != nil {
			return err
		}
		body, err := json.Marshal(&bundles[i])
		if err != nil {
			return fmt.Errorf("preferences for %s: %w", bundles[i].UserID, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(body)
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", preferenceIndent); err != nil {
		return err
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(w)
	return err
}

// SavePreferences writes bundles to path.
func SavePreferences(path string, bundles []preference.Bundle) error {
	return writeFile(path, func(w io.Writer) error {
		return WritePreferences(w, bundles)
	})
}

// ReadPreferences parses a preference file, keeping document order. Every
// bundle is validated; duplicate user IDs are rejected.
func ReadPreferences(r io.Reader) ([]preference.Bundle, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("preferences must be a JSON object, got %v", tok)
	}

	var bundles []preference.Bundle
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		userID, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", tok)
		}
		if _, dup := seen[userID]; dup {
			return nil, fmt.Errorf("duplicate preferences for user %q", userID)
		}
		seen[userID] = struct{}{}

		var b preference.Bundle
		if err := dec.Decode(&b); err != nil {
			return nil, fmt.Errorf("preferences for %s: %w", userID, err)
		}
		b.UserID = userID
		if err := b.Validate(); err != nil {
			return nil, fmt.Errorf("preferences for %s: %w", userID, err)
		}
		bundles = append(bundles, b)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// LoadPreferences reads the preference file at path.
func LoadPreferences(path string) ([]preference.Bundle, error) {
	return readFile(path, ReadPreferences)
}
