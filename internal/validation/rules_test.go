// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

func TestIsValidPersonName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"single word", "Eslam", true},
		{"two words", "Eslam Mohamed", true},
		{"single character", "A", true},
		{"mixed case inside word", "McDonald", true},
		{"very long", strings.Repeat("Abcdefghij ", 50) + "End", true},
		{"empty", "", false},
		{"leading space", " Eslam", false},
		{"trailing space", "Eslam ", false},
		{"double space", "Eslam  Mohamed", false},
		{"digit", "Eslam3 Mohamed", false},
		{"punctuation", "Eslam, Mohamed", false},
		{"lowercase word", "Eslam mohamed", false},
		{"lowercase first", "eslam", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsValidPersonName(tt.input); got != tt.want {
				t.Errorf("IsValidPersonName(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidUserID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"12345678X", true},
		{"12345678x", true},
		{"00000000Z", true},
		{"12345678", false},
		{"12345678901", false},
		{"12345678@", false},
		{"A23456789", false},
		{"423456789", true},
		{"123456789", true},
		{"1234567XY", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsValidUserID(tt.input); got != tt.want {
				t.Errorf("IsValidUserID(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsTitleCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{"Spider Man Into The Spider Verse", true},
		{"Spider-Man", true},
		{"Fight Club2", true},
		{"inception", false},
		{"", false},
		{"Blade Runner 2049", false},
		{"The  Matrix", false},
		{" The Matrix", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if got := IsTitleCase(tt.input); got != tt.want {
				t.Errorf("IsTitleCase(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExpectedIDPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title string
		want  string
	}{
		{"The Shawshank Redemption", "TSR"},
		{"inception", "I"},
		{"Blade Runner 2049", "BR"},
		{"Spider Man Into The Spider Verse", "SMITSV"},
		{"", ""},
		{"The  Matrix", "TM"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			t.Parallel()
			if got := ExpectedIDPrefix(tt.title); got != tt.want {
				t.Errorf("ExpectedIDPrefix(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMatchesTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		id    string
		want  bool
	}{
		{"exact", "Fight Club", "FC001", true},
		{"lowercase letters", "Fight Club", "fc001", false},
		{"missing letters", "Spider Man Into The Spider Verse", "SM002", false},
		{"extra letters", "Spider Man Into The Spider Verse", "SMITSVOP002", false},
		{"too few digits", "Interstellar", "I02", false},
		{"too many digits", "Inception", "I00001", false},
		{"empty title defers to title rule", "", "I003", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := MatchesTitle(tt.id, tt.title); got != tt.want {
				t.Errorf("MatchesTitle(%q, %q) = %v, want %v", tt.id, tt.title, got, tt.want)
			}
		})
	}
}

func TestCustomTagsViaVar(t *testing.T) {
	t.Parallel()

	v := GetValidator()
	if err := v.Var("Hassan Ali", TagPersonName); err != nil {
		t.Errorf("expected valid name, got %v", err)
	}
	if err := v.Var("12345678X", TagUserID); err != nil {
		t.Errorf("expected valid user id, got %v", err)
	}
	if err := v.Var("the matrix", TagTitleCase); err == nil {
		t.Error("expected title_case to reject lowercase title")
	}
}
