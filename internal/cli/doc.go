// Package cli implements the cinecal command: flag handling, logger setup
// and the run-summary output in text or JSON form.
package cli
