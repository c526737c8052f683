// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/tomtom215/cinematch/internal/models"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestReadMovies(t *testing.T) {
	t.Parallel()

	input := "The Shawshank Redemption, TSR001\nDrama\nThe Godfather,TG002\n Crime , Drama \n\n\n"
	movies, err := ReadMovies(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadMovies() error = %v", err)
	}

	want := []models.Movie{
		models.NewMovie("The Shawshank Redemption", "TSR001", []string{"Drama"}),
		models.NewMovie("The Godfather", "TG002", []string{"Crime", "Drama"}),
	}
	if !reflect.DeepEqual(movies, want) {
		t.Errorf("ReadMovies() = %+v, want %+v", movies, want)
	}
}

func TestReadUsers(t *testing.T) {
	t.Parallel()

	input := "Ahmed Hassan, 12345678A\r\nTSR001, TG002\r\nSara Mohamed, 23456789B\r\n\r\n"
	users, err := ReadUsers(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadUsers() error = %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("got %d users, want 2", len(users))
	}
	if !users[0].Equal(models.NewUser("Ahmed Hassan", "12345678A", []string{"TSR001", "TG002"})) {
		t.Errorf("users[0] = %+v", users[0])
	}
	if users[1].FavouriteMovieIDs == nil || len(users[1].FavouriteMovieIDs) != 0 {
		t.Errorf("empty list line should give an empty list, got %#v", users[1].FavouriteMovieIDs)
	}
}

func TestReadEmpty(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n", "  \n\n"} {
		movies, err := ReadMovies(strings.NewReader(input))
		if err != nil {
			t.Errorf("ReadMovies(%q) error = %v", input, err)
		}
		if len(movies) != 0 {
			t.Errorf("ReadMovies(%q) = %v, want empty", input, movies)
		}
	}
}

func TestReadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"missing list line", "Inception, I001\nSci-Fi\nUp, U001\n", 3},
		{"missing id", "Inception\nSci-Fi\n", 1},
		{"missing id second record", "Inception, I001\nSci-Fi\nUp\nFamily\n", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ReadMovies(strings.NewReader(tt.input))
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", pe.Line, tt.wantLine)
			}
			if !IsIOError(err) {
				t.Error("IsIOError should accept a ParseError")
			}
		})
	}
}

func TestLoadMovies(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "movies.txt", "Inception, I001\nSci-Fi, Thriller\n")
	movies, err := LoadMovies(path)
	if err != nil {
		t.Fatalf("LoadMovies() error = %v", err)
	}
	if len(movies) != 1 || movies[0].ID != "I001" {
		t.Errorf("LoadMovies() = %+v", movies)
	}
}

func TestLoadUsers_ParseErrorCarriesPath(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "users.txt", "Ahmed Hassan\nTSR001\n")
	_, err := LoadUsers(path)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Path != path {
		t.Errorf("Path = %q, want %q", pe.Path, path)
	}
	if !strings.HasPrefix(err.Error(), path+":1:") {
		t.Errorf("Error() = %q, want path:line prefix", err.Error())
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "nope.txt")
	for name, load := range map[string]func(string) error{
		"movies": func(p string) error { _, err := LoadMovies(p); return err },
		"users":  func(p string) error { _, err := LoadUsers(p); return err },
	} {
		err := load(missing)
		var oe *OpError
		if !errors.As(err, &oe) {
			t.Fatalf("%s: expected *OpError, got %v", name, err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("%s: expected os.ErrNotExist in chain", name)
		}
		if !IsIOError(err) {
			t.Errorf("%s: IsIOError should accept an OpError", name)
		}
	}
}

func TestIsIOError_Other(t *testing.T) {
	t.Parallel()

	if IsIOError(errors.New("boom")) {
		t.Error("plain error should not be an IO error")
	}
	if IsIOError(nil) {
		t.Error("nil should not be an IO error")
	}
}
