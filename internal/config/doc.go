// Package config loads and validates the TOML configuration: which venues
// to scrape, notification alarms, cache locations and expiries, the
// metadata API credentials and the output layout. Validation runs once at
// startup and fails fast before any network activity.
package config
