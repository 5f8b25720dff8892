package fetch

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

const (
	// UserAgent is the fixed browser identity sent with every request.
	UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/119.0.0.0 Safari/537.36"

	// Timeout bounds a single attempt, including reading the body.
	Timeout = 60 * time.Second

	// Retries is the total number of attempts per URL.
	Retries = 3

	// RetryDelay is the sleep before the second attempt; it doubles each
	// attempt after that.
	RetryDelay = 1 * time.Second
)

// Client fetches pages with retries.
type Client struct {
	httpClient *http.Client
	logger     zerolog.Logger
	retries    uint64
	delay      time.Duration
}

// New creates a fetch client with the default timeout and retry policy.
func New(logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: Timeout},
		logger:     logger,
		retries:    Retries,
		delay:      RetryDelay,
	}
}

// SetHTTPClient overrides the underlying HTTP client, for tests.
func (c *Client) SetHTTPClient(hc *http.Client) {
	c.httpClient = hc
}

// SetRetryDelay overrides the initial retry delay, for tests.
func (c *Client) SetRetryDelay(d time.Duration) {
	c.delay = d
}

// Fetch issues a GET for url and returns the response body. Each failure is
// retried after a doubling delay; the last failure is returned wrapped.
func (c *Client) Fetch(url string) (string, error) {
	var body string
	attempt := 0

	operation := func() error {
		attempt++
		b, err := c.get(url)
		if err != nil {
			c.logger.Warn().
				Str("url", url).
				Int("attempt", attempt).
				Err(err).
				Msg("fetch attempt failed")
			return err
		}
		body = b
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.delay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	if err := backoff.Retry(operation, backoff.WithMaxRetries(policy, c.retries-1)); err != nil {
		return "", fmt.Errorf("fetching %s: %w", url, err)
	}
	return body, nil
}

func (c *Client) get(url string) (string, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}
	return string(data), nil
}
