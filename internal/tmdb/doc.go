// Package tmdb is a minimal client for The Movie Database API, covering the
// two endpoints the enrichment step needs: movie search and movie details
// with credits.
package tmdb
