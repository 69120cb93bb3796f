// Cinesynth - Synthetic Viewing Behavior Generator
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinesynth

package validation

import (
	"strings"
	"testing"
)

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

type testGeneration struct {
	NumUsers  int      `koanf:"num_users" validate:"min=1,max=1000"`
	StartDate string   `koanf:"start_date" validate:"required,isodate"`
	Format    string   `json:"format" validate:"oneof=json console"`
	Genres    []string `json:"genres" validate:"max=3"`
	Untagged  int      `validate:"gte=0"`
}

func validGeneration() testGeneration {
	return testGeneration{NumUsers: 10, StartDate: "2025-01-01", Format: "json"}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input testGeneration
	}{
		{"typical", validGeneration()},
		{"bounds", testGeneration{NumUsers: 1000, StartDate: "2024-02-29", Format: "console", Genres: []string{"a", "b", "c"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() returned unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*testGeneration)
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{"zero users", func(g *testGeneration) { g.NumUsers = 0 }, "num_users", "min", "num_users must be at least 1"},
		{"too many users", func(g *testGeneration) { g.NumUsers = 5000 }, "num_users", "max", "num_users must be at most 1000"},
		{"missing date", func(g *testGeneration) { g.StartDate = "" }, "start_date", "required", "start_date is required"},
		{"bad date", func(g *testGeneration) { g.StartDate = "2025-13-01" }, "start_date", "isodate", "start_date must be a date in YYYY-MM-DD format"},
		{"bad format", func(g *testGeneration) { g.Format = "xml" }, "format", "oneof", "format must be one of: json console"},
		{"too many genres", func(g *testGeneration) { g.Genres = []string{"a", "b", "c", "d"} }, "genres", "max", "genres must be at most 3 items"},
		{"untagged field", func(g *testGeneration) { g.Untagged = -1 }, "Untagged", "gte", "Untagged must be greater than or equal to 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validGeneration()
			tt.mutate(&input)

			err := ValidateStruct(&input)
			if err == nil {
				t.Fatal("ValidateStruct() should have returned an error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected one error, got %v", errs)
			}
			if errs[0].Field() != tt.wantField || errs[0].Tag() != tt.wantTag {
				t.Errorf("got field %s tag %s, want %s %s", errs[0].Field(), errs[0].Tag(), tt.wantField, tt.wantTag)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestStructError_CombinesMessages(t *testing.T) {
	input := testGeneration{}
	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) < 3 {
		t.Fatalf("expected several errors, got %v", err.Errors())
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("combined message = %q", err.Error())
	}
	if (&StructError{}).Error() != "validation failed" {
		t.Error("empty StructError message")
	}
}

type testNested struct {
	Generation testGeneration `koanf:"generation"`
}

func TestNestedStructValidation(t *testing.T) {
	input := testNested{Generation: validGeneration()}
	input.Generation.NumUsers = -3

	err := ValidateStruct(&input)
	if err == nil {
		t.Fatal("expected nested validation error")
	}
	if err.Errors()[0].Field() != "num_users" {
		t.Errorf("field = %q, want num_users", err.Errors()[0].Field())
	}
	if v, ok := err.Errors()[0].Value().(int); !ok || v != -3 {
		t.Errorf("value = %v", err.Errors()[0].Value())
	}
	if err.Errors()[0].Param() != "1" {
		t.Errorf("param = %q", err.Errors()[0].Param())
	}
}
