package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public TMDB API root.
const DefaultBaseURL = "https://api.themoviedb.org/3"

// Result is a single movie search match.
type Result struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	GenreIDs    []int   `json:"genre_ids"`
	VoteAverage float64 `json:"vote_average"`
}

// SearchResponse models the paginated search payload.
type SearchResponse struct {
	Page         int      `json:"page"`
	Results      []Result `json:"results"`
	TotalResults int      `json:"total_results"`
}

// Genre is a named genre from the details payload.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CastMember is one credited cast entry.
type CastMember struct {
	Name      string `json:"name"`
	Character string `json:"character"`
	Order     int    `json:"order"`
}

// CrewMember is one crew entry with its job title.
type CrewMember struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// Credits holds a movie's cast and crew lists.
type Credits struct {
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MovieDetails is the full movie payload including credits.
type MovieDetails struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
	Genres      []Genre `json:"genres"`
	VoteAverage float64 `json:"vote_average"`
	Credits     Credits `json:"credits"`
}

// Searcher defines the TMDB operations the enrichment step uses.
type Searcher interface {
	SearchMovie(query string) (*SearchResponse, error)
	GetMovieDetails(movieID int64) (*MovieDetails, error)
}

// Client provides access to the TMDB API.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	httpClient *http.Client
}

var _ Searcher = (*Client)(nil)

// New creates a TMDB client. The API key is required; base URL and language
// fall back to sensible defaults when empty.
func New(apiKey, baseURL, language string) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// SetHTTPClient overrides the default HTTP client, for tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	if hc != nil {
		c.httpClient = hc
	}
}

// SearchMovie searches TMDB for the supplied title.
func (c *Client) SearchMovie(query string) (*SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New("query must not be empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("api_key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	var payload SearchResponse
	if err := c.getJSON(c.baseURL+"/search/movie", params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb search: %w", err)
	}
	return &payload, nil
}

// GetMovieDetails fetches movie details by TMDB ID, credits included.
func (c *Client) GetMovieDetails(movieID int64) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, errors.New("movie id must be positive")
	}

	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("append_to_response", "credits")
	if c.language != "" {
		params.Set("language", c.language)
	}

	var payload MovieDetails
	endpoint := fmt.Sprintf("%s/movie/%d", c.baseURL, movieID)
	if err := c.getJSON(endpoint, params, &payload); err != nil {
		return nil, fmt.Errorf("tmdb movie details: %w", err)
	}
	return &payload, nil
}

func (c *Client) getJSON(endpoint string, params url.Values, out any) error {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	parsed.RawQuery = params.Encode()

	req, err := http.NewRequest(http.MethodGet, parsed.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
