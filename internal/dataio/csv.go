// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package dataio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Delimiter separates CSV fields in every table file.
const Delimiter = '|'

// ErrInvalidRow is matched by every RowError.
var ErrInvalidRow = errors.New("invalid row")

// RowError reports a rejected input row. Row is the 1-based line number in
// the source file.
type RowError struct {
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d, column %s: %v", e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// Is matches ErrInvalidRow.
func (e *RowError) Is(target error) bool {
	return target == ErrInvalidRow
}

func newReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = Delimiter
	cr.FieldsPerRecord = -1
	return cr
}

func newWriter(w io.Writer) *csv.Writer {
	cw := csv.NewWriter(w)
	cw.Comma = Delimiter
	return cw
}

// table is a header-indexed CSV stream.
type table struct {
	r      *csv.Reader
	header map[string]int
	row    int
}

// openTable reads the header and checks that every required column exists.
func openTable(r io.Reader, required ...string) (*table, error) {
	cr := newReader(r)
	names, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &RowError{Row: 1, Err: errors.New("missing header")}
	}
	if err != nil {
		return nil, &RowError{Row: 1, Err: err}
	}

	header := make(map[string]int, len(names))
	for i, name := range names {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		header[name] = i
	}
	for _, col := range required {
		if _, ok := header[col]; !ok {
			return nil, &RowError{Row: 1, Column: col, Err: errors.New("missing column")}
		}
	}
	return &table{r: cr, header: header, row: 1}, nil
}

// next returns the next row, or io.EOF. Blank lines are skipped by the
// csv reader itself.
func (t *table) next() ([]string, error) {
	rec, err := t.r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.EOF
		}
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, &RowError{Row: pe.Line, Err: pe.Err}
		}
		return nil, &RowError{Row: t.row + 1, Err: err}
	}
	t.row, _ = t.r.FieldPos(0)
	return rec, nil
}

// value returns the trimmed cell of column key, or "" when absent.
func (t *table) value(rec []string, key string) string {
	idx, ok := t.header[key]
	if !ok || idx >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[idx])
}

func (t *table) errorf(column, format string, args ...any) error {
	return &RowError{Row: t.row, Column: column, Err: fmt.Errorf(format, args...)}
}

// readFile opens path and hands it to read.
func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	f, err := os.Open(path)
	if err != nil {
		var zero T
		return zero, err
	}
	defer f.Close()

	v, err := read(f)
	if err != nil {
		return v, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// writeFile creates path, including missing parent directories, and hands
// it to write. The file is removed again if write fails.
func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
