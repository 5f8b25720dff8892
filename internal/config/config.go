package config

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Venue is one cinema location with its own listing URL and calendar file.
type Venue struct {
	Enabled bool   `toml:"enabled"`
	Name    string `toml:"name"`
	URL     string `toml:"url"`
}

// AlarmSpec configures one calendar reminder. Exactly one of DaysBefore or
// HoursBefore must be set; Time overrides the global notification time for
// this alarm only.
type AlarmSpec struct {
	DaysBefore  *int   `toml:"days_before"`
	HoursBefore *int   `toml:"hours_before"`
	Description string `toml:"description"`
	Time        string `toml:"time"`
}

// Notifications configures calendar alarms for release events.
type Notifications struct {
	Enabled bool        `toml:"enabled"`
	Time    string      `toml:"time"` // default time of day, "HH:MM"
	Alarms  []AlarmSpec `toml:"alarms"`
}

// Caches configures the two cache tiers.
type Caches struct {
	DetailPath       string `toml:"detail_path"`
	DetailExpiryDays int    `toml:"detail_expiry_days"`
	EnrichPath       string `toml:"enrich_path"`
	EnrichExpiryDays int    `toml:"enrich_expiry_days"`
}

// TMDB configures the external metadata source. An empty API key disables
// enrichment entirely without error.
type TMDB struct {
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
	Language string `toml:"language"`
}

// Output configures where calendars and the history file are written.
type Output struct {
	Dir          string `toml:"dir"`
	CalendarName string `toml:"calendar_name"`
	HistoryPath  string `toml:"history_path"`
}

// Config is the full pipeline configuration.
type Config struct {
	Venues        map[string]Venue `toml:"venues"`
	Notifications Notifications    `toml:"notifications"`
	Caches        Caches           `toml:"caches"`
	TMDB          TMDB             `toml:"tmdb"`
	Output        Output           `toml:"output"`
}

// Load reads the TOML file at path over the defaults and applies
// environment overrides. The result is not yet validated; callers run
// Validate before using it.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the API key come from the environment, taking precedence
// over the file so the key never has to live on disk.
func (c *Config) applyEnv() {
	if key := os.Getenv("TMDB_API_KEY"); key != "" {
		c.TMDB.APIKey = key
	}
}

// EnabledVenue is a venue entry paired with its config key.
type EnabledVenue struct {
	ID string
	Venue
}

// EnabledVenues returns the enabled venues sorted by their config key, so
// runs are deterministic regardless of map order.
func (c *Config) EnabledVenues() []EnabledVenue {
	ids := make([]string, 0, len(c.Venues))
	for id, v := range c.Venues {
		if v.Enabled {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	out := make([]EnabledVenue, 0, len(ids))
	for _, id := range ids {
		out = append(out, EnabledVenue{ID: id, Venue: c.Venues[id]})
	}
	return out
}
