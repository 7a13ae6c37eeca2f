package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/digitalocean/gradientai-go/model"
	"github.com/digitalocean/gradientai-go/stream"
	"github.com/digitalocean/gradientai-go/wire"
)

// Client talks to the Gradient AI serverless inference endpoint. Construct
// it with New; the zero value is not usable.
type Client struct {
	model     string
	baseURL   string
	userAgent string
	timeout   time.Duration
	encoder   wire.Encoder
	transport Transport
	streamer  StreamTransport
	logger    *slog.Logger

	parallelToolCalls bool
}

// New creates a client authenticated with a model access key. Reading the
// key from wherever it lives (file, env, secret store) is the caller's
// business; see the config package for one option.
func New(accessKey string, opts ...Option) (*Client, error) {
	if accessKey == "" {
		return nil, ErrMissingAccessKey
	}
	c := &Client{
		model:     DefaultModel,
		baseURL:   DefaultBaseURL,
		userAgent: PackageName + "/" + PackageVersion,
		timeout:   60 * time.Second,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	// Blocking and streaming calls get distinct handles; a single call
	// never mixes them.
	if c.transport == nil {
		c.transport = newHTTPTransport(c.baseURL, accessKey, c.userAgent, c.timeout)
	}
	if c.streamer == nil {
		// No client-level timeout on the streaming handle: a stream may
		// legitimately outlive any fixed deadline, and the context already
		// bounds it.
		c.streamer = newHTTPTransport(c.baseURL, accessKey, c.userAgent, 0)
	}
	return c, nil
}

// ChatRequest carries the per-call inputs of one chat exchange.
type ChatRequest struct {
	// Model overrides the client default when non-empty.
	Model    string
	Messages []model.Message

	// Tools advertised to the model. ToolChoice and ToolRequired are
	// ignored when Tools is empty, since the endpoint rejects a
	// tool_choice without tools.
	Tools        []model.ToolSpec
	ToolChoice   any
	ToolRequired bool

	// AllowParallelToolCalls permits multi-call responses for this call
	// even when the client-wide setting is off.
	AllowParallelToolCalls bool

	Temperature *float64
	TopP        *float64
}

func (r ChatRequest) encodeOptions(streaming bool) wire.EncodeOptions {
	return wire.EncodeOptions{
		Tools:        r.Tools,
		ToolChoice:   r.ToolChoice,
		ToolRequired: r.ToolRequired,
		Temperature:  r.Temperature,
		TopP:         r.TopP,
		Stream:       streaming,
	}
}

func (c *Client) modelFor(req ChatRequest) string {
	if req.Model != "" {
		return req.Model
	}
	return c.model
}

// Chat sends a message sequence and blocks until the full response arrives.
func (c *Client) Chat(ctx context.Context, req ChatRequest) (model.ChatResponse, error) {
	requestID := uuid.NewString()
	body, err := json.Marshal(c.encoder.EncodeChat(c.modelFor(req), req.Messages, req.encodeOptions(false)))
	if err != nil {
		return model.ChatResponse{}, fmt.Errorf("gradientai: encode chat request: %w", err)
	}

	c.logger.Debug("chat request",
		"request_id", requestID,
		"model", c.modelFor(req),
		"messages", len(req.Messages),
		"tools", len(req.Tools))

	raw, err := c.transport.RoundTrip(ctx, body)
	if err != nil {
		return model.ChatResponse{}, err
	}

	msg := wire.DecodeResponseMessage(raw)
	msg = c.validateParallel(msg, req.AllowParallelToolCalls, requestID)
	return model.ChatResponse{Message: msg}, nil
}

// Complete sends a bare prompt and blocks until the full response arrives.
func (c *Client) Complete(ctx context.Context, prompt string) (model.CompletionResponse, error) {
	resp, err := c.Chat(ctx, ChatRequest{
		Messages: []model.Message{model.NewTextMessage(model.RoleUser, prompt)},
	})
	if err != nil {
		return model.CompletionResponse{}, err
	}
	return model.CompletionResponse{Text: resp.Message.Text()}, nil
}

// StreamChat sends a message sequence and returns a lazy sequence of
// growing assistant-message snapshots, one per non-empty delta. The
// sequence is finite and non-restartable; stop consuming it (or cancel
// ctx) to cancel. A transport failure mid-stream arrives as the final
// element's error, after every snapshot built from the chunks received
// before it.
func (c *Client) StreamChat(ctx context.Context, req ChatRequest) (iter.Seq2[model.ChatResponse, error], error) {
	chunks, err := c.openStream(ctx, c.encoder.EncodeChat(c.modelFor(req), req.Messages, req.encodeOptions(true)))
	if err != nil {
		return nil, err
	}
	return stream.Apply(chunks, stream.Messages), nil
}

// StreamComplete sends a bare prompt and returns a lazy sequence of growing
// completion snapshots. Error behavior matches StreamChat.
func (c *Client) StreamComplete(ctx context.Context, prompt string) (iter.Seq2[model.CompletionResponse, error], error) {
	chunks, err := c.openStream(ctx, c.encoder.EncodeCompletion(c.modelFor(ChatRequest{}), prompt, wire.EncodeOptions{Stream: true}))
	if err != nil {
		return nil, err
	}
	return stream.Apply(chunks, stream.Completions), nil
}

func (c *Client) openStream(ctx context.Context, req wire.Request) (iter.Seq2[[]byte, error], error) {
	requestID := uuid.NewString()
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("gradientai: encode stream request: %w", err)
	}

	c.logger.Debug("stream request",
		"request_id", requestID,
		"model", req.Model,
		"messages", len(req.Messages))

	return c.streamer.Stream(ctx, body)
}

// validateParallel applies the single-call policy and logs what it drops.
// The drop stays silent toward the caller.
func (c *Client) validateParallel(msg model.Message, allowParallel bool, requestID string) model.Message {
	allow := allowParallel || c.parallelToolCalls
	validated := ValidateParallel(msg, allow)
	if dropped := len(msg.ToolCallBlocks()) - len(validated.ToolCallBlocks()); dropped > 0 {
		c.logger.Warn("dropped parallel tool calls",
			"request_id", requestID,
			"kept", 1,
			"dropped", dropped)
	}
	return validated
}
