package client

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a Client
type Option func(*Client)

// WithHTTPClient replaces the transport used to issue requests
func WithHTTPClient(doer Doer) Option {
	return func(c *Client) {
		c.http = doer
	}
}

// WithTimeout bounds every request made by the client.
// Zero means no client-side timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithLogger sets the logger for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}
