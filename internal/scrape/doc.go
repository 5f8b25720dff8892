// Package scrape extracts upcoming release records from the venue chain's
// coming-soon listing pages and film detail pages.
//
// The markup is an untrusted third-party dependency with no schema. Listing
// entries are located through a structural marker class grouping one film's
// showtimes; detail fields are recovered by heuristic text mining over
// visible text nodes. Extraction never fails a run: an entry that cannot be
// parsed is logged and skipped, and a detail field that cannot be found is
// left empty.
package scrape
