// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package models defines the catalog records used throughout Cinematch.

Key Components:

  - Movie: title, title-derived ID and genres
  - User: name, ID and favourite movie references

Equality:

Movie.Equal and User.Equal compare list fields (genres, favourite IDs) as sets:
order and repetition carry no meaning. Use these methods rather than
reflect.DeepEqual, which is order-sensitive.

Records are not self-validating. Format, uniqueness and referential rules are
enforced over whole catalogs by the validation package.
*/
package models
