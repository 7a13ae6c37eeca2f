package provider

import (
	"log/slog"
	"time"
)

// Option configures a Client at construction time.
type Option func(*Client)

// WithModel sets the default model for calls that do not name one.
func WithModel(name string) Option {
	return func(c *Client) { c.model = name }
}

// WithBaseURL points the default transports at a different endpoint.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = url }
}

// WithTemperature sets the default sampling temperature, used when a call
// supplies none.
func WithTemperature(t float64) Option {
	return func(c *Client) { c.encoder.DefaultTemperature = &t }
}

// WithTopP sets the default nucleus sampling value, used when a call
// supplies none.
func WithTopP(p float64) Option {
	return func(c *Client) { c.encoder.DefaultTopP = &p }
}

// WithTimeout bounds each request made by the default transports.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent overrides the User-Agent product token sent by the default
// transports.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithLogger attaches a structured logger. Without it the client logs
// nowhere.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithParallelToolCalls permits responses to carry more than one tool call.
// Off by default: excess calls are dropped, keeping the first.
func WithParallelToolCalls() Option {
	return func(c *Client) { c.parallelToolCalls = true }
}

// WithTransport replaces the blocking transport handle.
func WithTransport(t Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithStreamTransport replaces the streaming transport handle.
func WithStreamTransport(t StreamTransport) Option {
	return func(c *Client) { c.streamer = t }
}
