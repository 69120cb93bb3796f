// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package dataio

import (
	"errors"
	"io"

	"github.com/tomtom215/cinesynth/internal/models"
	"github.com/tomtom215/cinesynth/internal/validation"
)

// User table columns, in output order.
const (
	colUserID         = "userID"
	colName           = "name"
	colSurname        = "surname"
	colGender         = "clinical_gender"
	colAgeRange       = "age_range"
	colLifestyle      = "lifestyle"
	colOrigin         = "country_of_origin"
	colLivingCountry  = "living_country"
	colLocation       = "current_location"
	colLikedGenres    = "liked_genres"
	colDislikedGenres = "disliked_genres"
	colWorkingStatus  = "current_working_status"
	colMaritalStatus  = "marital_status"
	colEthnicity      = "ethnicity"
	colLanguages      = "language_spoken"
	colAwardHunter    = "award_hunter"
	colHardConstraint = "hard_constraint"
)

var userColumns = []string{
	colUserID, colName, colSurname, colGender, colAgeRange, colLifestyle,
	colOrigin, colLivingCountry, colLocation, colLikedGenres, colDislikedGenres,
	colWorkingStatus, colMaritalStatus, colEthnicity, colLanguages,
	colAwardHunter, colHardConstraint,
}

// ReadUsers parses a user table. Only the columns the simulation reads are
// required; profile columns are optional. Duplicate IDs reject the row.
func ReadUsers(r io.Reader) ([]models.User, error) {
	t, err := openTable(r, colUserID, colLikedGenres, colDislikedGenres, colLanguages)
	if err != nil {
		return nil, err
	}

	var users []models.User
	seen := make(map[string]struct{})
	for {
		rec, err := t.next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		u := models.User{
			ID:                   t.value(rec, colUserID),
			Name:                 t.value(rec, colName),
			Surname:              t.value(rec, colSurname),
			ClinicalGender:       t.value(rec, colGender),
			AgeRange:             t.value(rec, colAgeRange),
			Lifestyle:            t.value(rec, colLifestyle),
			CountryOfOrigin:      t.value(rec, colOrigin),
			LivingCountry:        t.value(rec, colLivingCountry),
			CurrentLocation:      t.value(rec, colLocation),
			LikedGenres:          models.SplitList(t.value(rec, colLikedGenres)),
			DislikedGenres:       models.SplitList(t.value(rec, colDislikedGenres)),
			CurrentWorkingStatus: t.value(rec, colWorkingStatus),
			MaritalStatus:        t.value(rec, colMaritalStatus),
			Ethnicity:            t.value(rec, colEthnicity),
			LanguageSpoken:       models.SplitList(t.value(rec, colLanguages)),
			AwardHunter:          models.ParseFlag(t.value(rec, colAwardHunter)),
			HardConstraint:       t.value(rec, colHardConstraint),
		}

		if se := validation.ValidateStruct(&u); se != nil {
			return nil, t.errorf("", "%w", se)
		}
		if overlap := u.TasteOverlap(); len(overlap) > 0 {
			return nil, t.errorf(colLikedGenres, "genres both liked and disliked: %v", overlap)
		}
		if _, dup := seen[u.ID]; dup {
			return nil, t.errorf(colUserID, "duplicate user %q", u.ID)
		}
		seen[u.ID] = struct{}{}
		users = append(users, u)
	}
	return users, nil
}

// LoadUsers reads the user table at path.
func LoadUsers(path string) ([]models.User, error) {
	return readFile(path, ReadUsers)
}

// WriteUsers writes users with list fields joined by ", ".
func WriteUsers(w io.Writer, users []models.User) error {
	cw := newWriter(w)
	if err := cw.Write(userColumns); err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		if err := cw.Write([]string{
			u.ID,
			u.Name,
			u.Surname,
			u.ClinicalGender,
			u.AgeRange,
			u.Lifestyle,
			u.CountryOfOrigin,
			u.LivingCountry,
			u.CurrentLocation,
			models.JoinList(u.LikedGenres),
			models.JoinList(u.DislikedGenres),
			u.CurrentWorkingStatus,
			u.MaritalStatus,
			u.Ethnicity,
			models.JoinList(u.LanguageSpoken),
			models.FormatFlag(u.AwardHunter),
			u.HardConstraint,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveUsers writes users to path.
func SaveUsers(path string, users []models.User) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteUsers(w, users)
	})
}

// UserIDs returns the IDs of users in roster order.
func UserIDs(users []models.User) []string {
	ids := make([]string, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	return ids
}
