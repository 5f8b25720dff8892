package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func testClient() *Client {
	c := New(zerolog.Nop())
	c.SetRetryDelay(time.Millisecond)
	return c
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ua := r.Header.Get("User-Agent"); ua != UserAgent {
			t.Errorf("User-Agent = %q, want %q", ua, UserAgent)
		}
		w.Write([]byte("<html>listing</html>"))
	}))
	defer server.Close()

	body, err := testClient().Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != "<html>listing</html>" {
		t.Errorf("body = %q", body)
	}
}

func TestFetchRetriesThenSucceeds(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer server.Close()

	body, err := testClient().Fetch(server.URL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if body != "ok" {
		t.Errorf("body = %q", body)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestFetchExhaustsRetries(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	if _, err := testClient().Fetch(server.URL); err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if attempts != Retries {
		t.Errorf("attempts = %d, want %d", attempts, Retries)
	}
}

func TestFetchNonRetryableStatusStillRetried(t *testing.T) {
	// The policy makes no distinction between status codes: a 404 is
	// retried exactly like a 503.
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	if _, err := testClient().Fetch(server.URL); err == nil {
		t.Fatal("expected error")
	}
	if attempts != Retries {
		t.Errorf("attempts = %d, want %d", attempts, Retries)
	}
}
