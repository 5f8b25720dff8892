package release

import (
	"regexp"
	"sort"
	"strings"
	"time"
)

// Details holds the per-film metadata attached to a release. The runtime,
// cast and synopsis fields come from the venue's own detail page; overview,
// genres, director and the vote average come from the external metadata
// source. Venue-sourced fields are never overwritten by enrichment except
// cast and director, which the external source may replace with cleaner
// name lists.
type Details struct {
	Runtime     string   `json:"runtime"`
	Cast        string   `json:"cast"`
	Synopsis    string   `json:"synopsis"`
	Director    string   `json:"director"`
	Overview    string   `json:"overview,omitempty"`
	Genres      []string `json:"genres,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
}

// Release represents one upcoming film release at one venue.
type Release struct {
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	VenueName string    `json:"venue_name"`
	DetailURL string    `json:"detail_url,omitempty"`
	Details   Details   `json:"details"`
}

// Identity is the tuple used for within-run deduplication.
type Identity struct {
	Date      string
	Title     string
	VenueName string
	DetailURL string
}

// Identity returns the dedup key for a release.
func (r *Release) Identity() Identity {
	return Identity{
		Date:      r.Date.Format("2006-01-02"),
		Title:     r.Title,
		VenueName: r.VenueName,
		DetailURL: r.DetailURL,
	}
}

// Enrichment is the partial set of fields the external metadata source can
// contribute for a title. The zero value means "no match"; a cached zero
// value records a confirmed miss so it is not re-queried.
type Enrichment struct {
	Overview    string   `json:"overview"`
	Genres      []string `json:"genres"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	Director    string   `json:"director"`
	Cast        string   `json:"cast"`
}

// Empty reports whether the enrichment carries no fields at all.
func (e Enrichment) Empty() bool {
	return e.Overview == "" && len(e.Genres) == 0 && e.VoteAverage == nil &&
		e.Director == "" && e.Cast == ""
}

// Apply merges enrichment fields into the release details. External fields
// are additive; of the venue-scraped fields only cast and director may be
// replaced, and only when the enrichment has a value for them.
func (d *Details) Apply(e Enrichment) {
	if e.Overview != "" {
		d.Overview = e.Overview
	}
	if len(e.Genres) > 0 {
		d.Genres = e.Genres
	}
	if e.VoteAverage != nil {
		d.VoteAverage = e.VoteAverage
	}
	if e.Director != "" {
		d.Director = e.Director
	}
	if e.Cast != "" {
		d.Cast = e.Cast
	}
}

// titleQualifier matches a trailing parenthesized qualifier such as a
// certification marker, e.g. "(TBC)" or "(12A)".
var titleQualifier = regexp.MustCompile(`\s*\([^)]*\)$`)

// CleanTitle strips a trailing parenthesized qualifier from a title,
// e.g. "Wicked (12A)" -> "Wicked".
func CleanTitle(title string) string {
	return strings.TrimSpace(titleQualifier.ReplaceAllString(strings.TrimSpace(title), ""))
}

// Sort orders releases by date, then venue name.
func Sort(releases []Release) {
	sort.SliceStable(releases, func(i, j int) bool {
		if !releases[i].Date.Equal(releases[j].Date) {
			return releases[i].Date.Before(releases[j].Date)
		}
		return releases[i].VenueName < releases[j].VenueName
	})
}

// GroupByVenue splits a merged release list into per-venue lists, preserving
// order within each group.
func GroupByVenue(releases []Release) map[string][]Release {
	groups := make(map[string][]Release)
	for _, r := range releases {
		groups[r.VenueName] = append(groups[r.VenueName], r)
	}
	return groups
}
