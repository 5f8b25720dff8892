// Package pipeline runs the full scrape → enrich → serialize → stats flow.
//
// Execution is sequential and single-threaded: venues are scraped in turn,
// each venue's failure is logged and skipped rather than aborting the run,
// the two caches are saved at their well-defined points (detail cache after
// all venues, enrichment cache after all titles) and the history file after
// stats. The cache maps are not safe for concurrent use; anyone adding
// parallel venue fetches must serialize cache mutations first.
package pipeline
