// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package demographics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinesynth/internal/probability"
)

// Labels the per-user rules depend on.
const (
	AgeUnder18    = "Under 18"
	Age18To24     = "18-24"
	Age25To34     = "25-34"
	Age65Plus     = "65+"
	LifestyleBusy = "Busy"
	StatusStudent = "Student"
	StatusRetired = "Retired"
	StatusSingle  = "Single"
	UnknownCity   = "Unknown City"
)

// Override table names accepted in a user probabilities file.
const (
	TableGender        = "GENDER_PROBS"
	TableAgeRange      = "AGE_RANGE_PROBS"
	TableLifestyle     = "LIFESTYLE_PROBS"
	TableWorkingStatus = "WORKING_STATUS_PROBS"
	TableMaritalStatus = "MARITAL_STATUS_PROBS"
	TableEthnicity     = "ETHNICITY_PROBS"
	TableCountry       = "COUNTRY_PROBS"
	TableLanguage      = "LANGUAGE_PROBS"
	TableGenreLike     = "GENRE_LIKE_PROBS"
	TableGenreDislike  = "GENRE_DISLIKE_PROBS"
)

// ErrConfiguration is matched by every ConfigurationError.
var ErrConfiguration = errors.New("invalid user probabilities")

// ConfigurationError reports a bad override document. It is fatal: no users
// are generated from a partially applied override.
type ConfigurationError struct {
	Table string
	Key   string
	Err   error
}

func (e *ConfigurationError) Error() string {
	switch {
	case e.Table == "":
		return fmt.Sprintf("user probabilities: %v", e.Err)
	case e.Key == "":
		return fmt.Sprintf("user probabilities %s: %v", e.Table, e.Err)
	default:
		return fmt.Sprintf("user probabilities %s[%q]: %v", e.Table, e.Key, e.Err)
	}
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// Tables holds every lookup table the user generator reads. A Tables value
// is immutable once built; WithOverrides returns a new value.
type Tables struct {
	countries          []string
	citiesByCountry    map[string][]string
	languagesByCountry map[string][]string

	// categorical draws
	gender        probability.Table
	ageRange      probability.Table
	lifestyle     probability.Table
	workingStatus probability.Table
	maritalStatus probability.Table
	ethnicity     probability.Table
	country       probability.Table

	// independent Bernoulli probabilities per label
	language     probability.Table
	genreLike    probability.Table
	genreDislike probability.Table
}

// DefaultTables returns the built-in tables. Country of origin is uniform
// over the known countries.
func DefaultTables() *Tables {
	cities := make(map[string][]string, len(citiesByCountry))
	for k, v := range citiesByCountry {
		cities[k] = append([]string(nil), v...)
	}
	langs := make(map[string][]string, len(languagesByCountry))
	for k, v := range languagesByCountry {
		langs[k] = append([]string(nil), v...)
	}

	return &Tables{
		countries:          append([]string(nil), countries...),
		citiesByCountry:    cities,
		languagesByCountry: langs,
		gender:             probability.FromEntries(genderProbs...),
		ageRange:           probability.FromEntries(ageRangeProbs...),
		lifestyle:          probability.FromEntries(lifestyleProbs...),
		workingStatus:      probability.FromEntries(workingStatusProbs...),
		maritalStatus:      probability.FromEntries(maritalStatusProbs...),
		ethnicity:          probability.FromEntries(ethnicityProbs...),
		country:            probability.Uniform(countries),
		language:           probability.FromEntries(languageProbs...),
		genreLike:          probability.FromEntries(genreLikeProbs...),
		genreDislike:       probability.FromEntries(genreDislikeProbs...),
	}
}

// Countries returns the known countries in order.
func (t *Tables) Countries() []string {
	return append([]string(nil), t.countries...)
}

// Cities returns the cities of country, or nil when none are known.
func (t *Tables) Cities(country string) []string {
	return append([]string(nil), t.citiesByCountry[country]...)
}

// OfficialLanguages returns the official languages of country. Unknown
// countries default to English.
func (t *Tables) OfficialLanguages(country string) []string {
	if langs, ok := t.languagesByCountry[country]; ok && len(langs) > 0 {
		return append([]string(nil), langs...)
	}
	return []string{"English"}
}

// Table returns the table registered under an override name.
func (t *Tables) Table(name string) (probability.Table, bool) {
	p := t.slot(name)
	if p == nil {
		return probability.Table{}, false
	}
	return *p, true
}

// TableNames returns the accepted override names, sorted.
func TableNames() []string {
	names := []string{
		TableGender, TableAgeRange, TableLifestyle, TableWorkingStatus,
		TableMaritalStatus, TableEthnicity, TableCountry, TableLanguage,
		TableGenreLike, TableGenreDislike,
	}
	sort.Strings(names)
	return names
}

func (t *Tables) slot(name string) *probability.Table {
	switch name {
	case TableGender:
		return &t.gender
	case TableAgeRange:
		return &t.ageRange
	case TableLifestyle:
		return &t.lifestyle
	case TableWorkingStatus:
		return &t.workingStatus
	case TableMaritalStatus:
		return &t.maritalStatus
	case TableEthnicity:
		return &t.ethnicity
	case TableCountry:
		return &t.country
	case TableLanguage:
		return &t.language
	case TableGenreLike:
		return &t.genreLike
	case TableGenreDislike:
		return &t.genreDislike
	default:
		return nil
	}
}

func isBernoulliTable(name string) bool {
	return name == TableLanguage || name == TableGenreLike || name == TableGenreDislike
}

// LoadTables reads an override file and applies it to the built-in tables.
// An empty path returns the defaults.
func LoadTables(path string) (*Tables, error) {
	if path == "" {
		return DefaultTables(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigurationError{Err: err}
	}
	defer f.Close()
	return DefaultTables().WithOverrides(f)
}

// WithOverrides returns a copy of t with the tables named in the JSON
// document replaced. Each named table replaces the built-in one whole.
func (t *Tables) WithOverrides(r io.Reader) (*Tables, error) {
	var doc map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("decode: %w", err)}
	}

	out := t.clone()
	names := make([]string, 0, len(doc))
	for name := range doc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		slot := out.slot(name)
		if slot == nil {
			return nil, &ConfigurationError{Table: name, Err: errors.New("unknown table")}
		}
		var table probability.Table
		if err := json.Unmarshal(doc[name], &table); err != nil {
			return nil, &ConfigurationError{Table: name, Err: err}
		}
		if err := out.checkTable(name, table); err != nil {
			return nil, err
		}
		*slot = table
	}
	return out, nil
}

// checkTable validates one override table.
func (t *Tables) checkTable(name string, table probability.Table) error {
	if err := table.Validate(); err != nil {
		return &ConfigurationError{Table: name, Err: err}
	}
	for _, e := range table.Entries() {
		if isBernoulliTable(name) && e.Weight > 1 {
			return &ConfigurationError{Table: name, Key: e.Label, Err: fmt.Errorf("probability %v exceeds 1", e.Weight)}
		}
		if name == TableCountry {
			if _, ok := t.citiesByCountry[e.Label]; !ok {
				return &ConfigurationError{Table: name, Key: e.Label, Err: errors.New("unknown country")}
			}
		}
	}
	return nil
}

func (t *Tables) clone() *Tables {
	cp := *t
	return &cp
}
