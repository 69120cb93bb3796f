// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package dataio

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/validation"
)

// Movie table columns.
const (
	colMovieID        = "movieId"
	colTitle          = "title"
	colGenres         = "genres"
	colLanguage       = "language"
	colDuration       = "duration"
	colIMDbRating     = "imdbRating"
	colHavingAward    = "havingAward"
	colRewatches      = "numberOfRewatches"
	colMaturityRating = "maturityRating"
)

var movieColumns = []string{
	colMovieID, colTitle, colGenres, colLanguage, colDuration,
	colIMDbRating, colHavingAward, colRewatches, colMaturityRating,
}

// ReadMovies parses a movie table. Ratings that are missing or unparsable
// become nil; a missing or unparsable duration rejects the row.
func ReadMovies(r io.Reader) ([]models.Movie, error) {
	t, err := openTable(r, colMovieID, colGenres, colLanguage, colDuration, colMaturityRating)
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		m := models.Movie{
			ID:             t.value(rec, colMovieID),
			Title:          t.value(rec, colTitle),
			Genres:         models.SplitList(t.value(rec, colGenres)),
			Languages:      models.SplitList(t.value(rec, colLanguage)),
			IMDbRating:     models.ParseRating(t.value(rec, colIMDbRating)),
			HavingAward:    models.ParseFlag(t.value(rec, colHavingAward)),
			MaturityRating: t.value(rec, colMaturityRating),
		}

		if m.Duration, err = parseCount(t.value(rec, colDuration), false); err != nil {
			return nil, t.errorf(colDuration, "%w", err)
		}
		if m.NumberOfRewatches, err = parseCount(t.value(rec, colRewatches), true); err != nil {
			return nil, t.errorf(colRewatches, "%w", err)
		}
		if se := validation.ValidateStruct(&m); se != nil {
			return nil, t.errorf("", "%w", se)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

// LoadMovies reads the movie table at path.
func LoadMovies(path string) ([]models.Movie, error) {
	return readFile(path, ReadMovies)
}

// WriteMovies writes movies as a table ReadMovies accepts.
func WriteMovies(w io.Writer, movies []models.Movie) error {
	cw := newWriter(w)
	if err := cw.Write(movieColumns); err != nil {
		return err
	}
	for i := range movies {
		m := &movies[i]
		rating := ""
		if v, ok := m.Rating(); ok {
			rating = strconv.FormatFloat(v, 'f', -1, 64)
		}
		if err := cw.Write([]string{
			m.ID,
			m.Title,
			models.JoinList(m.Genres),
			models.JoinList(m.Languages),
			strconv.Itoa(m.Duration),
			rating,
			models.FormatFlag(m.HavingAward),
			strconv.Itoa(m.NumberOfRewatches),
			m.MaturityRating,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveMovies writes movies to path.
func SaveMovies(path string, movies []models.Movie) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteMovies(w, movies)
	})
}

// parseCount parses a non-negative whole number. Exported tables sometimes
// carry floats such as "120.0"; those are accepted when integral.
func parseCount(s string, optional bool) (int, error) {
	if s == "" || strings.EqualFold(s, "nan") {
		if optional {
			return 0, nil
		}
		return 0, errors.New("value is required")
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, errors.New("value must not be negative")
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("value is not a number")
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, errors.New("value must be a non-negative whole number")
	}
	return int(f), nil
}
