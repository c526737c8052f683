// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/cinematch/internal/models"
)

// Custom validation tags registered on the singleton validator.
const (
	TagPersonName = "person_name"
	TagUserID     = "user_id"
	TagTitleCase  = "title_case"
)

// UserIDLength is the exact length of a user ID.
const UserIDLength = 9

var (
	// personNamePattern: capitalized words of letters separated by single spaces.
	personNamePattern = regexp.MustCompile(`^\p{Lu}\p{L}*(?: \p{Lu}\p{L}*)*$`)

	// userIDPattern: 9 digits, or 8 digits and one letter of either case.
	userIDPattern = regexp.MustCompile(`^\d{8}[0-9A-Za-z]$`)
)

// IsValidPersonName reports whether name is non-empty, letters and single interior spaces only,
// with every word starting in uppercase.
func IsValidPersonName(name string) bool {
	return personNamePattern.MatchString(name)
}

// IsValidUserID reports whether id is exactly UserIDLength characters and matches the ID pattern.
func IsValidUserID(id string) bool {
	if utf8.RuneCountInString(id) != UserIDLength {
		return false
	}
	return userIDPattern.MatchString(id)
}

// IsTitleCase reports whether title is non-empty and every space-delimited word starts with
// an uppercase letter. Punctuation after the first letter is allowed ("Spider-Man").
func IsTitleCase(title string) bool {
	if title == "" {
		return false
	}
	for _, word := range strings.Split(title, " ") {
		r, _ := utf8.DecodeRuneInString(word)
		if word == "" || !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// ExpectedIDPrefix derives the letter prefix a movie ID must start with: the uppercased first
// letter of each space-delimited word. Words that are empty or do not begin with a letter
// contribute nothing; the title rule reports them.
func ExpectedIDPrefix(title string) string {
	var b strings.Builder
	for _, word := range strings.Split(title, " ") {
		r, _ := utf8.DecodeRuneInString(word)
		if word == "" || !unicode.IsLetter(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// MatchesTitle reports whether id is exactly the title prefix followed by models.IDSuffixLength characters.
// A title without any letter-initial word has no prefix and is left to the title rule.
func MatchesTitle(id, title string) bool {
	prefix := ExpectedIDPrefix(title)
	if prefix == "" {
		return true
	}
	if !strings.HasPrefix(id, prefix) {
		return false
	}
	return utf8.RuneCountInString(id) == utf8.RuneCountInString(prefix)+models.IDSuffixLength
}

// registerCatalogTags installs the catalog format rules as validator tags.
func registerCatalogTags(v *validator.Validate) error {
	rules := map[string]func(string) bool{
		TagPersonName: IsValidPersonName,
		TagUserID:     IsValidUserID,
		TagTitleCase:  IsTitleCase,
	}
	for tag, rule := range rules {
		check := rule
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return check(fl.Field().String())
		})
		if err != nil {
			return err
		}
	}
	return nil
}
