package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

type payload struct {
	Runtime string `json:"runtime"`
}

func TestStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	store := New[payload](path, DetailExpiry, zerolog.Nop())
	store.Put("https://example.com/film/wicked/", payload{Runtime: "119 min"})
	if err := store.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	reloaded := New[payload](path, DetailExpiry, zerolog.Nop())
	got, ok := reloaded.Get("https://example.com/film/wicked/")
	if !ok {
		t.Fatal("expected cache hit after reload")
	}
	if got.Runtime != "119 min" {
		t.Errorf("payload = %+v", got)
	}
}

func TestStoreDiscardsExpiredEntriesOnLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	entries := map[string]Entry[payload]{
		"fresh": {Payload: payload{Runtime: "100 min"}, CachedAt: time.Now().Add(-time.Hour)},
		"stale": {Payload: payload{Runtime: "90 min"}, CachedAt: time.Now().Add(-8 * 24 * time.Hour)},
	}
	data, err := json.Marshal(entries)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	store := New[payload](path, DetailExpiry, zerolog.Nop())
	if _, ok := store.Get("fresh"); !ok {
		t.Error("fresh entry should survive the load")
	}
	if _, ok := store.Get("stale"); ok {
		t.Error("stale entry should be discarded at load")
	}
	if store.Len() != 1 {
		t.Errorf("Len = %d, want 1", store.Len())
	}
}

func TestStoreMissingFileStartsEmpty(t *testing.T) {
	store := New[payload](filepath.Join(t.TempDir(), "nope.json"), DetailExpiry, zerolog.Nop())
	if store.Len() != 0 {
		t.Errorf("Len = %d, want 0", store.Len())
	}
}

func TestStoreCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	store := New[payload](path, DetailExpiry, zerolog.Nop())
	if store.Len() != 0 {
		t.Errorf("corrupt cache should start empty, Len = %d", store.Len())
	}

	// The store must still be usable and savable afterwards.
	store.Put("key", payload{Runtime: "80 min"})
	if err := store.Save(); err != nil {
		t.Fatalf("Save after corruption: %v", err)
	}
}

func TestStorePutReplacesWholeValue(t *testing.T) {
	store := New[payload]("", DetailExpiry, zerolog.Nop())
	store.Put("key", payload{Runtime: "100 min"})
	store.Put("key", payload{})

	got, ok := store.Get("key")
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Runtime != "" {
		t.Errorf("Put should replace wholesale, got %+v", got)
	}
}

func TestCanonicalURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://example.com/film/wicked/?screen=st-austell", "https://example.com/film/wicked/"},
		{"https://example.com/film/wicked/", "https://example.com/film/wicked/"},
		{"", ""},
		{"https://example.com/film/a/?x=1&y=2", "https://example.com/film/a/"},
	}

	for _, tt := range tests {
		if got := CanonicalURL(tt.in); got != tt.want {
			t.Errorf("CanonicalURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
