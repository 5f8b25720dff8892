package enrich

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"cinecal/internal/cache"
	"cinecal/internal/release"
	"cinecal/internal/tmdb"
)

const (
	// courtesyDelay is slept before each outbound API call.
	courtesyDelay = 250 * time.Millisecond

	maxDirectors = 3
	maxCast      = 6
)

// genreNames maps TMDB numeric genre IDs to display names, used when the
// search result carries IDs but the details call returns no named genres.
var genreNames = map[int]string{
	28:    "Action",
	12:    "Adventure",
	16:    "Animation",
	35:    "Comedy",
	80:    "Crime",
	99:    "Documentary",
	18:    "Drama",
	10751: "Family",
	14:    "Fantasy",
	36:    "History",
	27:    "Horror",
	10402: "Music",
	9648:  "Mystery",
	10749: "Romance",
	878:   "Science Fiction",
	10770: "TV Movie",
	53:    "Thriller",
	10752: "War",
	37:    "Western",
}

// Enricher looks up titles against the external metadata source through the
// enrichment cache.
type Enricher struct {
	searcher tmdb.Searcher
	cache    *cache.Store[release.Enrichment]
	logger   zerolog.Logger
	delay    time.Duration
}

// New creates an Enricher.
func New(searcher tmdb.Searcher, store *cache.Store[release.Enrichment], logger zerolog.Logger) *Enricher {
	return &Enricher{
		searcher: searcher,
		cache:    store,
		logger:   logger,
		delay:    courtesyDelay,
	}
}

// SetDelay overrides the courtesy delay, for tests.
func (e *Enricher) SetDelay(d time.Duration) {
	e.delay = d
}

// Enrich returns the external metadata for a title, consulting the cache
// first. A cache hit is returned unconditionally, empty or not: a confirmed
// "no match" is itself a cached answer. Every failure path yields an empty
// enrichment that is still cached, so known failures are not re-attempted
// within the expiry window.
func (e *Enricher) Enrich(title string) release.Enrichment {
	clean := release.CleanTitle(title)
	key := Slug(clean)

	if cached, ok := e.cache.Get(key); ok {
		e.logger.Debug().Str("slug", key).Msg("using cached enrichment")
		return cached
	}

	enrichment := e.lookup(clean)
	e.cache.Put(key, enrichment)

	if enrichment.Empty() {
		e.logger.Info().Str("title", clean).Msg("no enrichment found")
	}
	return enrichment
}

func (e *Enricher) lookup(title string) release.Enrichment {
	time.Sleep(e.delay)

	resp, err := e.searcher.SearchMovie(title)
	if err != nil {
		e.logger.Warn().Str("title", title).Err(err).Msg("enrichment search failed")
		return release.Enrichment{}
	}
	if len(resp.Results) == 0 {
		return release.Enrichment{}
	}

	candidate := selectCandidate(title, resp.Results)
	if candidate == nil || candidate.ID <= 0 {
		return release.Enrichment{}
	}

	time.Sleep(e.delay)

	details, err := e.searcher.GetMovieDetails(candidate.ID)
	if err != nil {
		e.logger.Warn().Str("title", title).Int64("id", candidate.ID).Err(err).Msg("enrichment details failed")
		return release.Enrichment{}
	}

	return buildEnrichment(candidate, details)
}

// selectCandidate picks the best search result for a query title. Exact
// normalized equality wins immediately; otherwise candidates are scored by
// substring containment, with a recency heuristic when neither title
// contains the other. Ties keep the first-seen candidate.
func selectCandidate(query string, results []tmdb.Result) *tmdb.Result {
	normQuery := normalizeTitle(query)

	var best *tmdb.Result
	bestScore := -1

	for i := range results {
		normCand := normalizeTitle(results[i].Title)
		if normCand == normQuery {
			return &results[i]
		}

		score := 10
		switch {
		case normQuery != "" && strings.Contains(normCand, normQuery):
			score = 90
		case normCand != "" && strings.Contains(normQuery, normCand):
			score = 30
		case releaseYear(results[i].ReleaseDate) >= 2020:
			score = 50
		}

		if score > bestScore {
			bestScore = score
			best = &results[i]
		}
	}
	return best
}

func buildEnrichment(candidate *tmdb.Result, details *tmdb.MovieDetails) release.Enrichment {
	var enrichment release.Enrichment

	enrichment.Overview = strings.TrimSpace(details.Overview)
	if enrichment.Overview == "" {
		enrichment.Overview = strings.TrimSpace(candidate.Overview)
	}

	if len(details.Genres) > 0 {
		for _, g := range details.Genres {
			if g.Name != "" {
				enrichment.Genres = append(enrichment.Genres, g.Name)
			}
		}
	} else {
		for _, id := range candidate.GenreIDs {
			if name, ok := genreNames[id]; ok {
				enrichment.Genres = append(enrichment.Genres, name)
			}
		}
	}

	vote := details.VoteAverage
	enrichment.VoteAverage = &vote

	var directors []string
	seen := make(map[string]bool)
	for _, crew := range details.Credits.Crew {
		if crew.Job != "Director" || crew.Name == "" || seen[crew.Name] {
			continue
		}
		seen[crew.Name] = true
		directors = append(directors, crew.Name)
		if len(directors) == maxDirectors {
			break
		}
	}
	enrichment.Director = strings.Join(directors, ", ")

	var cast []string
	for _, member := range details.Credits.Cast {
		if member.Name == "" {
			continue
		}
		cast = append(cast, member.Name)
		if len(cast) == maxCast {
			break
		}
	}
	enrichment.Cast = strings.Join(cast, ", ")

	return enrichment
}

func releaseYear(releaseDate string) int {
	if len(releaseDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(releaseDate[:4])
	if err != nil {
		return 0
	}
	return year
}
