// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"strings"
	"testing"
)

// ===================================================================================================
// Singleton Validator Tests
// ===================================================================================================

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}

	if v1 == nil {
		t.Error("GetValidator() should not return nil")
	}
}

// ===================================================================================================
// ValidateStruct Tests
// ===================================================================================================

type testRecord struct {
	Name    string   `validate:"person_name"`
	ID      string   `validate:"user_id"`
	Title   string   `validate:"title_case"`
	Format  string   `validate:"oneof=text json"`
	Workers int      `validate:"gte=0,lte=64"`
	Genres  []string `validate:"required,min=1"`
}

func validRecord() testRecord {
	return testRecord{
		Name:    "Hassan Ali",
		ID:      "12345678X",
		Title:   "The Shawshank Redemption",
		Format:  "text",
		Workers: 4,
		Genres:  []string{"Drama"},
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	if err := ValidateStruct(&rec); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*testRecord)
		field    string
		tag      string
		contains string
	}{
		{
			name:     "lowercase name",
			mutate:   func(r *testRecord) { r.Name = "hassan" },
			field:    "testRecord.Name",
			tag:      TagPersonName,
			contains: "capitalized words",
		},
		{
			name:     "short user id",
			mutate:   func(r *testRecord) { r.ID = "1234" },
			field:    "testRecord.ID",
			tag:      TagUserID,
			contains: "8 digits",
		},
		{
			name:     "title word with digit",
			mutate:   func(r *testRecord) { r.Title = "Blade Runner 2049" },
			field:    "testRecord.Title",
			tag:      TagTitleCase,
			contains: "uppercase letter",
		},
		{
			name:     "unknown format",
			mutate:   func(r *testRecord) { r.Format = "xml" },
			field:    "testRecord.Format",
			tag:      "oneof",
			contains: "must be one of: text json",
		},
		{
			name:     "too many workers",
			mutate:   func(r *testRecord) { r.Workers = 65 },
			field:    "testRecord.Workers",
			tag:      "lte",
			contains: "less than or equal to 64",
		},
		{
			name:     "no genres",
			mutate:   func(r *testRecord) { r.Genres = nil },
			field:    "testRecord.Genres",
			tag:      "required",
			contains: "is required",
		},
		{
			name:     "empty genres",
			mutate:   func(r *testRecord) { r.Genres = []string{} },
			field:    "testRecord.Genres",
			tag:      "min",
			contains: "failed min validation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := validRecord()
			tt.mutate(&rec)

			err := ValidateStruct(&rec)
			if err == nil {
				t.Fatal("expected validation error")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.field {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.field)
			}
			if errs[0].Tag() != tt.tag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.tag)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("message %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestValidateStruct_MultipleErrorsJoined(t *testing.T) {
	t.Parallel()

	rec := validRecord()
	rec.Name = ""
	rec.Format = ""

	err := ValidateStruct(&rec)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected messages joined with '; ', got %q", err.Error())
	}
}

func TestStructError_Empty(t *testing.T) {
	t.Parallel()

	if got := (&StructError{}).Error(); got != "validation failed" {
		t.Errorf("Error() = %q", got)
	}
}
