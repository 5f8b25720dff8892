package history

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rs/zerolog"
)

// RetentionWindow bounds how far back saved history reaches.
const RetentionWindow = 2 * 365 * 24 * time.Hour

// Pair is one (release date, title) history entry.
type Pair struct {
	Date  string // "2006-01-02"
	Title string
}

// Set is the persisted release-history set.
type Set struct {
	path   string
	logger zerolog.Logger
	pairs  map[Pair]bool
}

// Load reads the history file at path. A missing file yields an empty set;
// an unreadable or malformed one is logged as a warning and likewise
// degrades to empty.
func Load(path string, logger zerolog.Logger) *Set {
	s := &Set{
		path:   path,
		logger: logger,
		pairs:  make(map[Pair]bool),
	}

	if path == "" {
		return s
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn().Str("path", path).Err(err).Msg("failed to read history file, starting fresh")
		}
		return s
	}

	// Persisted as a list of [date, title] pairs.
	var raw [][2]string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn().Str("path", path).Err(err).Msg("history file is corrupted, starting fresh")
		return s
	}

	for _, entry := range raw {
		s.pairs[Pair{Date: entry[0], Title: entry[1]}] = true
	}
	return s
}

// Add unions a pair into the set.
func (s *Set) Add(date time.Time, title string) {
	s.pairs[Pair{Date: date.Format("2006-01-02"), Title: title}] = true
}

// Pairs returns the current set contents.
func (s *Set) Pairs() []Pair {
	out := make([]Pair, 0, len(s.pairs))
	for p := range s.pairs {
		out = append(out, p)
	}
	return out
}

// Len returns the number of pairs held.
func (s *Set) Len() int {
	return len(s.pairs)
}

// Save prunes the set to the retention window and rewrites the file. The
// pruned pairs are dropped from memory as well so repeated saves converge.
func (s *Set) Save() error {
	if s.path == "" {
		return nil
	}

	cutoff := time.Now().Add(-RetentionWindow).Format("2006-01-02")
	raw := make([][2]string, 0, len(s.pairs))
	for p := range s.pairs {
		if p.Date < cutoff {
			delete(s.pairs, p)
			continue
		}
		raw = append(raw, [2]string{p.Date, p.Title})
	}

	sort.Slice(raw, func(i, j int) bool {
		if raw[i][0] != raw[j][0] {
			return raw[i][0] < raw[j][0]
		}
		return raw[i][1] < raw[j][1]
	})

	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}

	s.logger.Info().Str("path", s.path).Int("entries", len(raw)).Msg("saved release history")
	return nil
}
