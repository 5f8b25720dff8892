package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"cinecal/internal/cache"
	"cinecal/internal/release"
)

// Fetcher fetches a page body for a URL.
type Fetcher interface {
	Fetch(url string) (string, error)
}

// Scraper extracts releases from one venue's coming-soon page, resolving
// film details through the shared detail cache.
type Scraper struct {
	fetcher Fetcher
	details *cache.Store[release.Details]
	logger  zerolog.Logger
}

// New creates a Scraper backed by the given fetcher and detail cache.
func New(fetcher Fetcher, details *cache.Store[release.Details], logger zerolog.Logger) *Scraper {
	return &Scraper{
		fetcher: fetcher,
		details: details,
		logger:  logger,
	}
}

// ScrapeVenue fetches a venue's listing page and extracts its releases.
func (s *Scraper) ScrapeVenue(url, venueName string) ([]release.Release, error) {
	s.logger.Info().Str("venue", venueName).Str("url", url).Msg("fetching listing")

	body, err := s.fetcher.Fetch(url)
	if err != nil {
		return nil, fmt.Errorf("fetching listing for %s: %w", venueName, err)
	}
	return s.ExtractListing(body, venueName)
}

// ExtractListing recovers (date, title, url) entries from a listing page
// body and fills each entry's details via the cache-mediated detail fetch.
//
// One film's showtimes are grouped inside a div with the "times" marker
// class; the title heading and the film link live in the enclosing listing
// item. Entries missing a title or failing date parsing are skipped.
func (s *Scraper) ExtractListing(body, venueName string) ([]release.Release, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing listing HTML: %w", err)
	}

	releases := make([]release.Release, 0)
	seen := make(map[release.Identity]bool)

	doc.Find("div.times").Each(func(_ int, times *goquery.Selection) {
		item := times.Parent()
		if item.Length() == 0 {
			return
		}

		title := release.CleanTitle(item.Find("h2").First().Text())
		if title == "" {
			return
		}

		dateLabel := strings.TrimSpace(times.Find("p").First().Text())
		date := release.ParseDate(dateLabel)
		if date.IsZero() {
			s.logger.Warn().
				Str("venue", venueName).
				Str("title", title).
				Str("label", dateLabel).
				Msg("skipping entry with unparseable date")
			return
		}

		filmURL := ""
		item.Find("a[href*='/film/']").EachWithBreak(func(_ int, link *goquery.Selection) bool {
			filmURL, _ = link.Attr("href")
			return false
		})

		rec := release.Release{
			Date:      date,
			Title:     title,
			VenueName: venueName,
			DetailURL: filmURL,
		}
		if seen[rec.Identity()] {
			return
		}
		seen[rec.Identity()] = true

		rec.Details = s.fetchDetails(filmURL)
		releases = append(releases, rec)

		s.logger.Info().
			Str("venue", venueName).
			Str("title", title).
			Str("date", date.Format("2006-01-02")).
			Str("url", filmURL).
			Msg("found release")
	})

	return releases, nil
}

// fetchDetails resolves a film's detail fields through the detail cache.
// The cache key is the URL without its query string, so every venue linking
// the same film shares one fetch. A network failure degrades to empty
// details and is not cached.
func (s *Scraper) fetchDetails(filmURL string) release.Details {
	if filmURL == "" {
		return release.Details{}
	}

	key := cache.CanonicalURL(filmURL)
	if details, ok := s.details.Get(key); ok {
		s.logger.Debug().Str("url", key).Msg("using cached film details")
		return details
	}

	body, err := s.fetcher.Fetch(filmURL)
	if err != nil {
		s.logger.Warn().Str("url", filmURL).Err(err).Msg("failed to fetch film details")
		return release.Details{}
	}

	details := ExtractDetails(body)
	s.details.Put(key, details)

	s.logger.Info().
		Str("url", key).
		Str("runtime", details.Runtime).
		Bool("cast", details.Cast != "").
		Int("synopsis_length", len(details.Synopsis)).
		Msg("film details extracted")

	return details
}
