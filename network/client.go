// Package network provides the pre-configured HTTP client used to reach the Literal API.
package network

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = time.Minute

// New returns an HTTP client with the given overall request timeout.
// Non-positive timeouts fall back to DefaultTimeout.
func New(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// newTransport clones the default transport with conservative pool settings for a short-lived CLI.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 4
	t.MaxIdleConnsPerHost = 4
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
