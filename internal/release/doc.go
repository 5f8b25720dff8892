// Package release provides the record types for upcoming cinema releases.
//
// A Release is one (date, title, venue) entry recovered from a venue's
// coming-soon listing, carrying whatever detail fields the scrape and the
// external enrichment source were able to supply. The package also owns the
// date-label grammars used by the listings and the dedup/merge helpers that
// turn per-venue scrapes into a single sorted run.
package release
