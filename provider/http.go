package provider

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"strings"
	"time"
)

// httpTransport is the default Transport and StreamTransport: one POST to
// the chat-completions endpoint per call, no retries, no credential
// refresh. Failures propagate to the caller unchanged.
type httpTransport struct {
	endpoint  string
	accessKey string
	userAgent string
	client    *http.Client
}

// newHTTPTransport builds a transport for baseURL. A zero timeout leaves
// the request bounded only by its context, which is what streaming calls
// want.
func newHTTPTransport(baseURL, accessKey, userAgent string, timeout time.Duration) *httpTransport {
	return &httpTransport{
		endpoint:  strings.TrimRight(baseURL, "/") + "/chat/completions",
		accessKey: accessKey,
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
	}
}

func (t *httpTransport) post(ctx context.Context, body []byte, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("gradientai: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+t.accessKey)
	req.Header.Set("User-Agent", t.userAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("gradientai: HTTP %d: %s", resp.StatusCode, bytes.TrimSpace(payload))
	}
	return resp, nil
}

// RoundTrip implements Transport.
func (t *httpTransport) RoundTrip(ctx context.Context, body []byte) ([]byte, error) {
	resp, err := t.post(ctx, body, "")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gradientai: read response: %w", err)
	}
	return raw, nil
}

// Stream implements StreamTransport by parsing the server-sent event lines
// of a streaming response. The returned sequence owns the response body and
// closes it when the stream ends or the consumer stops iterating; the body
// is also closed when ctx ends, so an abandoned sequence does not hold the
// connection open.
func (t *httpTransport) Stream(ctx context.Context, body []byte) (iter.Seq2[[]byte, error], error) {
	resp, err := t.post(ctx, body, "text/event-stream")
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() { resp.Body.Close() })
	return func(yield func([]byte, error) bool) {
		defer stop()
		defer resp.Body.Close()
		scanner := bufio.NewScanner(resp.Body)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Text()
			if !strings.HasPrefix(line, "data:") {
				continue
			}
			data := strings.TrimSpace(line[len("data:"):])
			if data == "" {
				continue
			}
			if data == "[DONE]" {
				return
			}
			if !yield([]byte(data), nil) {
				return
			}
		}
		// A scan stopped by a read failure must not look like a clean end
		// of stream: the caller could not otherwise tell a truncated reply
		// from a complete one.
		if err := scanner.Err(); err != nil {
			if ctx.Err() != nil {
				yield(nil, ctx.Err())
				return
			}
			yield(nil, fmt.Errorf("gradientai: read stream: %w", err))
		}
	}, nil
}
