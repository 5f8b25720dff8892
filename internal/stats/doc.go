// Package stats computes rolling release counters over unique
// (date, title) pairs, so a film listed at several venues counts once.
package stats
