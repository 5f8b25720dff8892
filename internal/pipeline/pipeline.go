package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"cinecal/internal/cache"
	"cinecal/internal/config"
	"cinecal/internal/enrich"
	"cinecal/internal/fetch"
	"cinecal/internal/history"
	"cinecal/internal/ics"
	"cinecal/internal/release"
	"cinecal/internal/scrape"
	"cinecal/internal/stats"
	"cinecal/internal/tmdb"
)

// VenueResult records one venue's scrape outcome.
type VenueResult struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Found int    `json:"found"`
	Error string `json:"error,omitempty"`
}

// Result is the outcome of a full run.
type Result struct {
	Venues        []VenueResult     `json:"venues"`
	Releases      []release.Release `json:"releases"`
	Counters      stats.Counters    `json:"counters"`
	CalendarFiles []string          `json:"calendar_files"`
}

// Pipeline wires the components for one run.
type Pipeline struct {
	cfg    *config.Config
	logger zerolog.Logger
}

// New creates a pipeline for a validated configuration.
func New(cfg *config.Config, logger zerolog.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, logger: logger}
}

// Run scrapes every enabled venue, enriches the merged records, writes one
// calendar per venue and updates the release history and counters. A single
// venue's failure never aborts the run.
func (p *Pipeline) Run() (*Result, error) {
	result := &Result{}

	detailCache := cache.New[release.Details](
		p.cfg.Caches.DetailPath, days(p.cfg.Caches.DetailExpiryDays), p.logger)
	fetcher := fetch.New(p.logger)
	scraper := scrape.New(fetcher, detailCache, p.logger)

	var all []release.Release
	for _, venue := range p.cfg.EnabledVenues() {
		found, err := scraper.ScrapeVenue(venue.URL, venue.Name)
		vr := VenueResult{ID: venue.ID, Name: venue.Name, Found: len(found)}
		if err != nil {
			vr.Error = err.Error()
			p.logger.Error().Str("venue", venue.Name).Err(err).Msg("venue scrape failed")
		}
		result.Venues = append(result.Venues, vr)
		all = append(all, found...)
	}

	if err := detailCache.Save(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to save detail cache")
	}

	if len(all) == 0 {
		p.logger.Warn().Msg("no releases found across any venue")
		return result, nil
	}

	p.enrichAll(all)

	release.Sort(all)
	result.Releases = all

	files, err := p.writeCalendars(all)
	if err != nil {
		return result, err
	}
	result.CalendarFiles = files

	result.Counters = p.updateHistory(all)

	return result, nil
}

// enrichAll augments every record through the enrichment cache. Without an
// API key, enrichment is disabled and the records pass through untouched.
func (p *Pipeline) enrichAll(all []release.Release) {
	if p.cfg.TMDB.APIKey == "" {
		p.logger.Info().Msg("no metadata api key configured, skipping enrichment")
		return
	}

	client, err := tmdb.New(p.cfg.TMDB.APIKey, p.cfg.TMDB.BaseURL, p.cfg.TMDB.Language)
	if err != nil {
		p.logger.Warn().Err(err).Msg("metadata client unavailable, skipping enrichment")
		return
	}

	enrichCache := cache.New[release.Enrichment](
		p.cfg.Caches.EnrichPath, days(p.cfg.Caches.EnrichExpiryDays), p.logger)
	enricher := enrich.New(client, enrichCache, p.logger)

	for i := range all {
		enrichment := enricher.Enrich(all[i].Title)
		all[i].Details.Apply(enrichment)
	}

	if err := enrichCache.Save(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to save enrichment cache")
	}
}

// writeCalendars emits one .ics document per enabled venue, named after the
// venue's config key.
func (p *Pipeline) writeCalendars(all []release.Release) ([]string, error) {
	opts := ics.Options{
		NotificationsEnabled: p.cfg.Notifications.Enabled,
		NotificationTime:     p.cfg.Notifications.Time,
		Alarms:               alarmSpecs(p.cfg.Notifications.Alarms),
	}

	byVenue := release.GroupByVenue(all)

	var files []string
	for _, venue := range p.cfg.EnabledVenues() {
		releases := byVenue[venue.Name]

		events := make([]string, 0, len(releases))
		for _, rec := range releases {
			events = append(events, ics.Event(rec, opts))
		}

		desc := fmt.Sprintf("Upcoming film releases at %s", venue.Name)
		document := ics.Calendar(p.cfg.Output.CalendarName, desc, events)

		path := filepath.Join(p.cfg.Output.Dir, venue.ID+".ics")
		if err := os.WriteFile(path, []byte(document), 0644); err != nil {
			return files, fmt.Errorf("writing calendar for %s: %w", venue.Name, err)
		}
		files = append(files, path)

		p.logger.Info().Str("path", path).Int("events", len(events)).Msg("wrote calendar")
	}
	return files, nil
}

// updateHistory unions this run's (date, title) pairs into the persisted
// history, computes the rolling counters and saves the pruned set.
func (p *Pipeline) updateHistory(all []release.Release) stats.Counters {
	hist := history.Load(p.cfg.Output.HistoryPath, p.logger)
	for _, rec := range all {
		hist.Add(rec.Date, rec.Title)
	}

	counters := stats.Compute(hist.Pairs(), time.Now())

	if err := hist.Save(); err != nil {
		p.logger.Warn().Err(err).Msg("failed to save release history")
	}
	return counters
}

func alarmSpecs(specs []config.AlarmSpec) []ics.Alarm {
	alarms := make([]ics.Alarm, 0, len(specs))
	for _, spec := range specs {
		alarms = append(alarms, ics.Alarm{
			DaysBefore:  spec.DaysBefore,
			HoursBefore: spec.HoursBefore,
			Description: spec.Description,
			Time:        spec.Time,
		})
	}
	return alarms
}

func days(n int) time.Duration {
	return time.Duration(n) * 24 * time.Hour
}
