package wire

import (
	"encoding/json"

	"github.com/digitalocean/gradientai-go/model"
)

// Encoder builds request bodies from canonical messages. The zero value is
// usable; DefaultTemperature and DefaultTopP apply only when a call supplies
// neither value itself.
//
// Encoding is a pure function of its inputs: no I/O, fully deterministic.
type Encoder struct {
	DefaultTemperature *float64
	DefaultTopP        *float64
}

// EncodeOptions carries the per-call knobs of one encode.
type EncodeOptions struct {
	Tools        []model.ToolSpec
	ToolChoice   any
	ToolRequired bool
	Temperature  *float64
	TopP         *float64
	Stream       bool
}

// EncodeChat converts a canonical message sequence into a request body.
func (e Encoder) EncodeChat(modelName string, messages []model.Message, opts EncodeOptions) Request {
	req := Request{
		Model:       modelName,
		Messages:    make([]Message, 0, len(messages)),
		Temperature: pick(opts.Temperature, e.DefaultTemperature),
		TopP:        pick(opts.TopP, e.DefaultTopP),
		Stream:      opts.Stream,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, encodeMessage(m))
	}
	req.Tools = encodeTools(opts.Tools)
	// The endpoint rejects tool_choice without tools, so it is omitted
	// entirely in that case regardless of what the caller asked for.
	if len(req.Tools) > 0 {
		req.ToolChoice = ResolveToolChoice(opts.ToolChoice, opts.ToolRequired)
	}
	return req
}

// EncodeCompletion synthesizes a single user message from a bare prompt and
// encodes it as a chat request.
func (e Encoder) EncodeCompletion(modelName, prompt string, opts EncodeOptions) Request {
	return e.EncodeChat(modelName, []model.Message{model.NewTextMessage(model.RoleUser, prompt)}, opts)
}

// encodeMessage flattens one canonical message to its wire form. Block-based
// and flat inputs with the same meaning produce identical output: the flat
// Content and ToolCalls fields are consulted only when the message carries no
// blocks.
func encodeMessage(m model.Message) Message {
	wm := Message{Role: m.Role}

	if len(m.Blocks) > 0 {
		text := m.Text()
		for _, blk := range m.ToolCallBlocks() {
			wm.ToolCalls = append(wm.ToolCalls, encodeToolCall(blk.ID, blk.Name, blk.Arguments))
		}
		if text == "" && len(wm.ToolCalls) > 0 {
			wm.Content = nil
		} else {
			wm.Content = &text
		}
		return wm
	}

	text := m.Content
	for _, tc := range m.ToolCalls {
		wm.ToolCalls = append(wm.ToolCalls, encodeToolCall(tc.ID, tc.Name, tc.Arguments))
	}
	if text == "" && len(wm.ToolCalls) > 0 {
		wm.Content = nil
	} else {
		wm.Content = &text
	}
	return wm
}

func encodeToolCall(id, name string, args map[string]any) ToolCall {
	return ToolCall{
		ID:   id,
		Type: "function",
		Function: ToolCallFunction{
			Name:      name,
			Arguments: encodeArguments(args),
		},
	}
}

// encodeArguments renders an argument map as the compact JSON string the
// wire expects. Go's map marshaling sorts keys, keeping output deterministic.
func encodeArguments(args map[string]any) string {
	if len(args) == 0 {
		return "{}"
	}
	b, err := json.Marshal(args)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func encodeTools(specs []model.ToolSpec) []Tool {
	if len(specs) == 0 {
		return nil
	}
	tools := make([]Tool, len(specs))
	for i, spec := range specs {
		tools[i] = Tool{
			Type: "function",
			Function: ToolFunction{
				Name:        spec.Name,
				Description: spec.Description,
				Parameters:  spec.Parameters,
			},
		}
	}
	return tools
}

// ResolveToolChoice maps a caller-supplied tool-choice directive to its wire
// value. A nil directive resolves to "required" or "auto" depending on
// whether a tool call is mandatory. The reserved strings "none", "auto" and
// "required" pass through unchanged, as does any pre-structured value. Any
// other string is treated as a tool name and wrapped into a named-function
// choice.
func ResolveToolChoice(choice any, required bool) any {
	if choice == nil {
		if required {
			return model.ToolChoiceRequired
		}
		return model.ToolChoiceAuto
	}
	s, ok := choice.(string)
	if !ok {
		return choice
	}
	switch s {
	case model.ToolChoiceNone, model.ToolChoiceAuto, model.ToolChoiceRequired:
		return s
	default:
		return model.ToolChoiceFunction(s)
	}
}

func pick(v, fallback *float64) *float64 {
	if v != nil {
		return v
	}
	return fallback
}
