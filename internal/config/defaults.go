package config

// Default returns the baseline configuration a file is loaded over.
func Default() *Config {
	return &Config{
		Venues: make(map[string]Venue),
		Notifications: Notifications{
			Enabled: false,
			Time:    "09:00",
		},
		Caches: Caches{
			DetailPath:       ".film_cache.json",
			DetailExpiryDays: 7,
			EnrichPath:       ".enrich_cache.json",
			EnrichExpiryDays: 30,
		},
		TMDB: TMDB{
			Language: "en-GB",
		},
		Output: Output{
			Dir:          ".",
			CalendarName: "Cinema Film Releases",
			HistoryPath:  ".release_history.json",
		},
	}
}
