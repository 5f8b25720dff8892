// Package fetch provides the retrying HTTP fetcher used for listing pages
// and film detail pages.
//
// All requests carry a fixed browser User-Agent and a generous timeout.
// Transport errors and non-2xx statuses are retried identically with
// exponentially doubling delays; there is no distinction between retryable
// and non-retryable status codes.
package fetch
