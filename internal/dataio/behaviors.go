// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package dataio

import (
	"errors"
	"io"
	"strconv"

	"github.com/tomtom215/cinesynth/internal/calendar"
	"github.com/tomtom215/cinesynth/internal/models"
)

// Behavior table columns, in output order.
const (
	colDayNumber    = "day_number"
	colDate         = "date"
	colSeason       = "season"
	colDayOfWeek    = "day_of_week"
	colTimeOfDay    = "time_of_movie_watch"
	colBehaviorUser = "userId"
	colLocationCtx  = "location"
	colCompanions   = "companions"
	colMood         = "user_mood"
	colSatisfaction = "satisfaction_score"
)

var behaviorColumns = []string{
	colDayNumber, colDate, colSeason, colDayOfWeek, colTimeOfDay,
	colBehaviorUser, colMovieID, colLocationCtx, colCompanions, colMood,
	colSatisfaction,
}

// WriteBehaviors writes records in the order given.
func WriteBehaviors(w io.Writer, records []models.BehaviorRecord) error {
	cw := newWriter(w)
	if err := cw.Write(behaviorColumns); err != nil {
		return err
	}
	for i := range records {
		r := &records[i]
		if err := cw.Write([]string{
			strconv.Itoa(r.DayNumber),
			r.Date.Format(calendar.DateLayout),
			r.Season,
			r.DayOfWeek,
			r.TimeOfDay,
			r.UserID,
			r.MovieID,
			r.Location,
			r.Companions,
			r.Mood,
			strconv.FormatFloat(r.Satisfaction, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveBehaviors writes records to path.
func SaveBehaviors(path string, records []models.BehaviorRecord) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteBehaviors(w, records)
	})
}

// ReadBehaviors parses a behavior table written by WriteBehaviors.
func ReadBehaviors(r io.Reader) ([]models.BehaviorRecord, error) {
	t, err := openTable(r, behaviorColumns...)
	if err != nil {
		return nil, err
	}

	var records []models.BehaviorRecord
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		b := models.BehaviorRecord{
			Season:     t.value(rec, colSeason),
			DayOfWeek:  t.value(rec, colDayOfWeek),
			TimeOfDay:  t.value(rec, colTimeOfDay),
			UserID:     t.value(rec, colBehaviorUser),
			MovieID:    t.value(rec, colMovieID),
			Location:   t.value(rec, colLocationCtx),
			Companions: t.value(rec, colCompanions),
			Mood:       t.value(rec, colMood),
		}
		if b.DayNumber, err = strconv.Atoi(t.value(rec, colDayNumber)); err != nil {
			return nil, t.errorf(colDayNumber, "%w", err)
		}
		if b.Date, err = calendar.ParseDate(t.value(rec, colDate)); err != nil {
			return nil, t.errorf(colDate, "%w", err)
		}
		if b.Satisfaction, err = strconv.ParseFloat(t.value(rec, colSatisfaction), 64); err != nil {
			return nil, t.errorf(colSatisfaction, "%w", err)
		}
		records = append(records, b)
	}
	return records, nil
}

// LoadBehaviors reads the behavior table at path.
func LoadBehaviors(path string) ([]models.BehaviorRecord, error) {
	return readFile(path, ReadBehaviors)
}
