package battlenet

import (
	"maps"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	logger     zerolog.Logger
	hosts      map[Region]string
}

func defaultOptions() clientOptions {
	return clientOptions{
		timeout:   30 * time.Second,
		userAgent: "armory",
		logger:    zerolog.Nop(),
		hosts:     hosts,
	}
}

// WithHTTPClient sets the underlying http.Client used by the transport.
// The client is copied; WithTimeout does not change the caller's value.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		o.userAgent = userAgent
	}
}

// WithLogger sets the logger used for request tracing. The default is silent.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *clientOptions) {
		o.logger = logger
	}
}

// WithHosts replaces the region to host table.
// Useful for proxies and for tests pointing at a local TLS server.
func WithHosts(table map[Region]string) Option {
	return func(o *clientOptions) {
		o.hosts = maps.Clone(table)
	}
}
