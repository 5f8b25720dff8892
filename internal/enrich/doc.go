// Package enrich augments release records with metadata from The Movie
// Database: overview, genres, rating, director and a cleaner cast list.
//
// Titles are the identity here, not URLs: the same film may be listed at
// every venue under a different detail URL but always under one title. A
// normalized slug of the title keys the enrichment cache, and a confirmed
// miss is cached like any other result so unmatchable titles are not
// re-queried within the expiry window.
package enrich
