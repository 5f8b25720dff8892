// Package cache provides a time-boxed key→record store persisted as JSON.
//
// Two independent instances back the pipeline: the film detail cache, keyed
// by the canonical (query-stripped) detail URL with a 7-day expiry, and the
// enrichment cache, keyed by a normalized title slug with a 30-day expiry.
// Entries older than the expiry window are discarded at load time, so a hit
// is always fresh. A missing, unreadable or corrupt store degrades to an
// empty cache; refetching is always preferable to failing the run.
package cache
