// Package history persists the set of (release date, title) pairs the
// pipeline has ever written, used solely for rolling release statistics.
// The set is unioned on every save, never replaced, and pruned to a
// two-year retention window. It plays no part in deduplicating the current
// run.
package history
