// Package provider implements the Gradient AI serverless inference client.
//
// The client is a thin, stateless shell around the wire codec: it encodes
// canonical messages into chat-completion request bodies, hands them to a
// transport, and decodes whatever comes back. Transport concerns beyond the
// single round trip (retry, rate limiting, credential refresh) are left to
// the transport implementation or the caller.
//
// # Calling modes
//
// Blocking calls (Chat, Complete) and streaming calls (StreamChat,
// StreamComplete) have full behavioral parity and use distinct transport
// handles; one call never touches both. No state is shared across concurrent
// calls: each call owns its own accumulation state, so a single Client may
// be used from many goroutines without locking. A streaming call is
// cancelled by cancelling the context or simply ceasing to consume the
// returned sequence.
//
// # Usage
//
//	client, err := provider.New(accessKey,
//	    provider.WithModel("llama3.3-70b-instruct"),
//	    provider.WithTemperature(0.2),
//	)
//	if err != nil {
//	    // handle error
//	}
//	resp, err := client.Chat(ctx, provider.ChatRequest{
//	    Messages: []model.Message{model.NewTextMessage(model.RoleUser, "Hello")},
//	})
package provider

import (
	"context"
	"errors"
	"iter"
)

// Identification reported to the endpoint with every request.
const (
	PackageName    = "gradientai-go"
	PackageVersion = "0.1.0"
)

// Defaults applied when the caller does not override them.
const (
	DefaultBaseURL = "https://inference.do-ai.run/v1"
	DefaultModel   = "llama3.3-70b-instruct"
)

// ErrMissingAccessKey is returned by New when no model access key is given.
var ErrMissingAccessKey = errors.New("gradientai: model access key is required")

// ErrNoToolCalls is returned by ExtractToolCalls when the caller requires at
// least one tool call and the message contains none. It is surfaced
// unchanged and never retried.
var ErrNoToolCalls = errors.New("gradientai: expected at least one tool call")

// Transport performs one blocking request round trip. Implementations own
// the connection; errors propagate to the caller unchanged.
type Transport interface {
	RoundTrip(ctx context.Context, body []byte) ([]byte, error)
}

// StreamTransport performs one streaming request. The returned sequence
// yields raw wire chunks paired with read errors; a non-nil error is
// terminal and arrives after the last good chunk, so a mid-stream
// connection failure is never mistaken for a clean end of stream. The
// sequence is finite and non-restartable; it owns the underlying
// connection and releases it when the sequence ends, the consumer stops
// iterating, or ctx is cancelled. A caller that abandons the sequence
// without iterating must cancel ctx to release the connection.
type StreamTransport interface {
	Stream(ctx context.Context, body []byte) (iter.Seq2[[]byte, error], error)
}
