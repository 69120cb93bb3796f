// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package models

// MaxGenreTaste caps the liked and disliked genre lists.
const MaxGenreTaste = 3

// User is a synthetic viewer. The simulator only reads ID, the taste lists,
// LanguageSpoken, AwardHunter and HardConstraint; the demographic fields are
// carried for output.
type User struct {
	ID             string   `json:"userID" validate:"required"`
	LikedGenres    []string `json:"liked_genres" validate:"max=3,dive,required"`
	DislikedGenres []string `json:"disliked_genres" validate:"max=3,dive,required"`
	LanguageSpoken []string `json:"language_spoken" validate:"min=1,dive,required"`
	AwardHunter    bool     `json:"award_hunter"`
	HardConstraint string   `json:"hard_constraint"`

	Name                 string `json:"name,omitempty"`
	Surname              string `json:"surname,omitempty"`
	ClinicalGender       string `json:"clinical_gender,omitempty"`
	AgeRange             string `json:"age_range,omitempty"`
	Lifestyle            string `json:"lifestyle,omitempty"`
	CountryOfOrigin      string `json:"country_of_origin,omitempty"`
	LivingCountry        string `json:"living_country,omitempty"`
	CurrentLocation      string `json:"current_location,omitempty"`
	CurrentWorkingStatus string `json:"current_working_status,omitempty"`
	MaritalStatus        string `json:"marital_status,omitempty"`
	Ethnicity            string `json:"ethnicity,omitempty"`
}

// TasteOverlap returns the genres present in both taste lists.
// A well-formed user has none.
func (u *User) TasteOverlap() []string {
	if len(u.LikedGenres) == 0 || len(u.DislikedGenres) == 0 {
		return nil
	}
	liked := make(map[string]struct{}, len(u.LikedGenres))
	for _, g := range u.LikedGenres {
		liked[g] = struct{}{}
	}
	var overlap []string
	for _, g := range u.DislikedGenres {
		if _, ok := liked[g]; ok {
			overlap = append(overlap, g)
		}
	}
	return overlap
}
