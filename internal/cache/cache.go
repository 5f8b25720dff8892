package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DetailExpiry is the detail-cache retention window.
	DetailExpiry = 7 * 24 * time.Hour

	// EnrichExpiry is the enrichment-cache retention window. Metadata for a
	// title changes far less often than the venue's own detail pages.
	EnrichExpiry = 30 * 24 * time.Hour
)

// Entry wraps a cached payload with its write timestamp.
type Entry[T any] struct {
	Payload  T         `json:"payload"`
	CachedAt time.Time `json:"cached_at"`
}

// Store is a time-boxed key→record cache persisted as a single JSON file.
// It owns its map exclusively; callers read through Get and write through
// Put with whole-value replace semantics.
type Store[T any] struct {
	path    string
	ttl     time.Duration
	logger  zerolog.Logger
	entries map[string]Entry[T]
}

// New loads a store from path, discarding entries older than ttl. A missing
// file yields an empty store; an unreadable or malformed one is logged as a
// warning and likewise yields an empty store.
func New[T any](path string, ttl time.Duration, logger zerolog.Logger) *Store[T] {
	s := &Store[T]{
		path:    path,
		ttl:     ttl,
		logger:  logger,
		entries: make(map[string]Entry[T]),
	}
	s.load()
	return s
}

func (s *Store[T]) load() {
	if s.path == "" {
		return
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn().Str("path", s.path).Err(err).Msg("failed to read cache file, starting fresh")
		}
		return
	}

	var entries map[string]Entry[T]
	if err := json.Unmarshal(data, &entries); err != nil {
		s.logger.Warn().Str("path", s.path).Err(err).Msg("cache file is corrupted, starting fresh")
		return
	}

	cutoff := time.Now().Add(-s.ttl)
	for key, entry := range entries {
		if entry.CachedAt.After(cutoff) {
			s.entries[key] = entry
		}
	}

	s.logger.Info().Str("path", s.path).Int("entries", len(s.entries)).Msg("loaded cache")
}

// Get returns the payload for key. Expired entries were discarded at load,
// so a hit is always fresh.
func (s *Store[T]) Get(key string) (T, bool) {
	entry, ok := s.entries[key]
	return entry.Payload, ok
}

// Put stores payload under key, stamping it with the current time. Any
// previous value is replaced wholesale.
func (s *Store[T]) Put(key string, payload T) {
	s.entries[key] = Entry[T]{Payload: payload, CachedAt: time.Now()}
}

// Len returns the number of live entries.
func (s *Store[T]) Len() int {
	return len(s.entries)
}

// Save rewrites the full store to disk.
func (s *Store[T]) Save() error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(s.entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding cache: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing cache: %w", err)
	}

	s.logger.Info().Str("path", s.path).Int("entries", len(s.entries)).Msg("saved cache")
	return nil
}

// CanonicalURL strips the query string from a detail URL. The same film page
// is linked with a different query parameter per venue; sharing the stripped
// URL means the detail is fetched once however many venues list it.
func CanonicalURL(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		return url[:i]
	}
	return url
}
