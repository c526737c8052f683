// Cinematch - Movie Catalog Validation and Genre Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend produces movie recommendations for users of a validated catalog.
//
// # Architecture
//
// Recommendation is split into two layers:
//
//   - Strategy: computes the ordered list of movies for a single user.
//     GenreBased is the only strategy shipped today.
//   - Service: applies a Strategy to every user in a catalog, either
//     sequentially or fanned out over a bounded worker pool, and collects
//     the results into Recommendations.
//
// # Genre-Based Recommendation
//
// For each of the user's favourite movies (in declaration order) the strategy
// walks the favourite's genres (in declaration order) and scans the catalog
// (in catalog order), appending every movie that shares the genre, is not one
// of the user's favourites, and has not already been appended. The output is
// therefore deterministic for a given catalog.
//
// # Usage
//
//	svc, err := recommend.NewService(recommend.Config{Workers: 4}, recommend.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	recs, err := svc.GenerateConcurrent(ctx, users, movies)
//
//	for _, entry := range recs.Entries() {
//	    fmt.Println(entry.User.Name, len(entry.Movies))
//	}
//
// # Thread Safety
//
// Strategies and the Service hold no mutable state and are safe for concurrent
// use. A Recommendations value must not be modified while it is being read.
package recommend
