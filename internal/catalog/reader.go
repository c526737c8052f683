// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/cinematch/internal/models"
)

// maxLineSize bounds a single catalog line.
const maxLineSize = 1 << 20

// record is one parsed two-line entry.
type record struct {
	name  string
	id    string
	items []string
}

// ReadMovies parses a movie catalog from r.
func ReadMovies(r io.Reader) ([]models.Movie, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	movies := make([]models.Movie, 0, len(records))
	for _, rec := range records {
		movies = append(movies, models.NewMovie(rec.name, rec.id, rec.items))
	}
	return movies, nil
}

// ReadUsers parses a user catalog from r.
func ReadUsers(r io.Reader) ([]models.User, error) {
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(records))
	for _, rec := range records {
		users = append(users, models.NewUser(rec.name, rec.id, rec.items))
	}
	return users, nil
}

// LoadMovies reads the movie catalog at path.
func LoadMovies(path string) ([]models.Movie, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &OpError{Op: "open movies", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	movies, err := ReadMovies(f)
	return movies, withPath(err, path)
}

// LoadUsers reads the user catalog at path.
func LoadUsers(path string) ([]models.User, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &OpError{Op: "open users", Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	users, err := ReadUsers(f)
	return users, withPath(err, path)
}

func withPath(err error, path string) error {
	switch e := err.(type) {
	case nil:
		return nil
	case *ParseError:
		e.Path = path
		return e
	case *OpError:
		e.Path = path
		return e
	default:
		return err
	}
}

func readRecords(r io.Reader) ([]record, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines)%2 != 0 {
		return nil, &ParseError{Line: len(lines), Reason: "record is missing its list line"}
	}

	records := make([]record, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		head := strings.Split(lines[i], ",")
		if len(head) < 2 {
			return nil, &ParseError{Line: i + 1, Reason: "expected \"<name>, <id>\""}
		}
		records = append(records, record{
			name:  strings.TrimSpace(head[0]),
			id:    strings.TrimSpace(head[1]),
			items: splitList(lines[i+1]),
		})
	}
	return records, nil
}

// readLines returns every line of r with trailing blank padding removed.
func readLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, &OpError{Op: "read catalog", Err: err}
	}

	n := len(lines)
	for n > 0 && strings.TrimSpace(lines[n-1]) == "" {
		n--
	}
	// A blank final list line is an empty list, not padding.
	if n%2 != 0 && n < len(lines) {
		n++
	}
	return lines[:n], nil
}

func splitList(line string) []string {
	items := make([]string, 0)
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
