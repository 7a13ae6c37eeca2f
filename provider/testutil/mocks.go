// Package testutil provides transport mocks and wire fixtures for tests
// that exercise the client without a live endpoint.
package testutil

import (
	"context"
	"iter"
)

// MockTransport implements provider.Transport for testing.
type MockTransport struct {
	// RoundTripFunc handles each blocking call. When nil, Response is
	// returned as-is.
	RoundTripFunc func(ctx context.Context, body []byte) ([]byte, error)

	// Response is the canned reply used by the default behavior.
	Response []byte

	// Requests records every body sent through the transport.
	Requests [][]byte
}

func (m *MockTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	m.Requests = append(m.Requests, body)
	if m.RoundTripFunc != nil {
		return m.RoundTripFunc(ctx, body)
	}
	return m.Response, nil
}

// MockStreamTransport implements provider.StreamTransport for testing.
type MockStreamTransport struct {
	// StreamFunc handles each streaming call. When nil, Chunks are
	// yielded in order.
	StreamFunc func(ctx context.Context, body []byte) (iter.Seq2[[]byte, error], error)

	// Chunks are the canned wire chunks used by the default behavior.
	Chunks [][]byte

	// Err, when set, is yielded as a terminal read failure after Chunks,
	// simulating a connection lost mid-stream.
	Err error

	// Requests records every body sent through the transport.
	Requests [][]byte
}

func (m *MockStreamTransport) Stream(ctx context.Context, body []byte) (iter.Seq2[[]byte, error], error) {
	m.Requests = append(m.Requests, body)
	if m.StreamFunc != nil {
		return m.StreamFunc(ctx, body)
	}
	return func(yield func([]byte, error) bool) {
		for _, chunk := range m.Chunks {
			if !yield(chunk, nil) {
				return
			}
		}
		if m.Err != nil {
			yield(nil, m.Err)
		}
	}, nil
}
