// Package wire translates between the canonical model types and the JSON
// chat-completions protocol spoken by the Gradient AI serverless inference
// endpoint.
//
// Encoding is strict and deterministic: the same canonical input always
// produces the same request body. Decoding is deliberately lenient: response
// bodies arrive either as structured objects or as loose key-value mappings
// depending on how the upstream was invoked, and the adapter cannot observe
// which, so every field read tolerates both shapes and a response matching
// neither decodes to an empty message rather than an error.
package wire

// Request is the outbound chat-completions request body.
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Tools       []Tool    `json:"tools,omitempty"`
	ToolChoice  any       `json:"tool_choice,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	TopP        *float64  `json:"top_p,omitempty"`
	Stream      bool      `json:"stream,omitempty"`
}

// Message is one role/content entry in a request body. Content is a pointer
// so that a message carrying only tool calls serializes with a null content
// field rather than an empty string.
type Message struct {
	Role      string     `json:"role"`
	Content   *string    `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// ToolCall is the wire form of one tool invocation. Arguments is always a
// compact JSON string on the wire, even when held as a map internally.
type ToolCall struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction carries the invoked function name and its JSON-encoded
// arguments.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool is the wire form of one advertised tool definition.
type Tool struct {
	Type     string       `json:"type"`
	Function ToolFunction `json:"function"`
}

// ToolFunction carries the tool name, description and JSON-schema parameter
// definition. The schema passes through unvalidated; the encoder is not a
// schema gatekeeper.
type ToolFunction struct {
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Parameters  map[string]any `json:"parameters,omitempty"`
}
