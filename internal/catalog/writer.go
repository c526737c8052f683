// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/models"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Format selects the recommendation output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat converts a configuration value to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text or json)", s)
	}
}

// jsonReport is the JSON document written by WriteRecommendations.
type jsonReport struct {
	Users []jsonUser `json:"users"`
}

type jsonUser struct {
	Name            string         `json:"name"`
	ID              string         `json:"id"`
	Recommendations []models.Movie `json:"recommendations"`
}

// WriteRecommendations renders recs to w in the given format, one entry per
// user in the order users were added.
func WriteRecommendations(w io.Writer, recs *recommend.Recommendations, format Format) error {
	var entries []recommend.Entry
	if recs != nil {
		entries = recs.Entries()
	}

	switch format {
	case FormatJSON:
		return writeJSON(w, entries)
	case FormatText, "":
		return writeText(w, entries)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, entries []recommend.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		titles := make([]string, len(e.Movies))
		for i, m := range e.Movies {
			titles[i] = m.Title
		}
		fmt.Fprintf(bw, "%s, %s\n%s\n", e.User.Name, e.User.ID, strings.Join(titles, ", "))
	}
	if err := bw.Flush(); err != nil {
		return &OpError{Op: "write recommendations", Err: err}
	}
	return nil
}

func writeJSON(w io.Writer, entries []recommend.Entry) error {
	report := jsonReport{Users: make([]jsonUser, 0, len(entries))}
	for _, e := range entries {
		report.Users = append(report.Users, jsonUser{
			Name:            e.User.Name,
			ID:              e.User.ID,
			Recommendations: e.Movies,
		})
	}

	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return &OpError{Op: "write recommendations", Err: err}
	}
	return nil
}

// WriteError renders a validation failure as "ERROR: <message>".
func WriteError(w io.Writer, err error) error {
	if err == nil {
		return nil
	}
	if _, werr := io.WriteString(w, "ERROR: "+err.Error()); werr != nil {
		return &OpError{Op: "write error report", Err: werr}
	}
	return nil
}

// WriteFile renders fn into memory and replaces path with the result.
// The content is written to a temporary sibling first and renamed into
// place, so readers never observe a partial file.
func WriteFile(path string, fn func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := fn(&buf); err != nil {
		return withPath(err, path)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil { //nolint:gosec // reports are meant to be world readable
		return &OpError{Op: "write", Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &OpError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
