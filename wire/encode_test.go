package wire

import (
	"encoding/json"
	"testing"

	"github.com/digitalocean/gradientai-go/model"
)

func f64(v float64) *float64 { return &v }

func TestEncodeChatTextMessages(t *testing.T) {
	enc := Encoder{}
	req := enc.EncodeChat("llama3.3-70b-instruct", []model.Message{
		model.NewTextMessage(model.RoleSystem, "You are terse."),
		model.NewTextMessage(model.RoleUser, "Hello"),
	}, EncodeOptions{})

	if req.Model != "llama3.3-70b-instruct" {
		t.Errorf("model = %q", req.Model)
	}
	if len(req.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
		t.Errorf("roles = %q, %q", req.Messages[0].Role, req.Messages[1].Role)
	}
	if req.Messages[1].Content == nil || *req.Messages[1].Content != "Hello" {
		t.Errorf("content = %v", req.Messages[1].Content)
	}
	if req.Tools != nil || req.ToolChoice != nil {
		t.Error("tools and tool_choice should be absent")
	}
}

func TestEncodeChatBlockOrderConcatenation(t *testing.T) {
	enc := Encoder{}
	req := enc.EncodeChat("m", []model.Message{
		{
			Role: model.RoleAssistant,
			Blocks: []model.Block{
				model.TextBlock{Text: "part one, "},
				model.TextBlock{Text: "part two"},
			},
		},
	}, EncodeOptions{})

	if got := *req.Messages[0].Content; got != "part one, part two" {
		t.Errorf("content = %q", got)
	}
}

func TestEncodeChatToolCallMessage(t *testing.T) {
	enc := Encoder{}
	msg := model.Message{
		Role: model.RoleAssistant,
		Blocks: []model.Block{
			model.ToolCallBlock{
				ID:        "call_1",
				Name:      "add",
				Arguments: map[string]any{"a": 1, "b": 2},
			},
		},
	}
	req := enc.EncodeChat("m", []model.Message{msg}, EncodeOptions{})

	wm := req.Messages[0]
	if wm.Content != nil {
		t.Errorf("content should be null when only tool calls exist, got %q", *wm.Content)
	}
	if len(wm.ToolCalls) != 1 {
		t.Fatalf("expected 1 tool call, got %d", len(wm.ToolCalls))
	}
	tc := wm.ToolCalls[0]
	if tc.ID != "call_1" || tc.Type != "function" || tc.Function.Name != "add" {
		t.Errorf("tool call = %+v", tc)
	}
	if tc.Function.Arguments != `{"a":1,"b":2}` {
		t.Errorf("arguments = %q, want compact JSON string", tc.Function.Arguments)
	}
}

// Flat and block-shaped inputs carrying the same data must serialize to
// byte-identical request bodies.
func TestEncodeChatFlatAndBlockEquivalence(t *testing.T) {
	enc := Encoder{}
	args := map[string]any{"city": "Berlin"}

	blockMsg := model.Message{
		Role: model.RoleAssistant,
		Blocks: []model.Block{
			model.TextBlock{Text: "checking"},
			model.ToolCallBlock{ID: "c9", Name: "weather", Arguments: args},
		},
	}
	flatMsg := model.Message{
		Role:      model.RoleAssistant,
		Content:   "checking",
		ToolCalls: []model.ToolCall{{ID: "c9", Name: "weather", Arguments: args}},
	}

	blockReq := enc.EncodeChat("m", []model.Message{blockMsg}, EncodeOptions{})
	flatReq := enc.EncodeChat("m", []model.Message{flatMsg}, EncodeOptions{})

	blockJSON, err := json.Marshal(blockReq)
	if err != nil {
		t.Fatal(err)
	}
	flatJSON, err := json.Marshal(flatReq)
	if err != nil {
		t.Fatal(err)
	}
	if string(blockJSON) != string(flatJSON) {
		t.Errorf("wire output differs:\nblocks: %s\nflat:   %s", blockJSON, flatJSON)
	}
}

func TestEncodeChatTools(t *testing.T) {
	enc := Encoder{}
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
		},
	}
	req := enc.EncodeChat("m",
		[]model.Message{model.NewTextMessage(model.RoleUser, "add")},
		EncodeOptions{
			Tools: []model.ToolSpec{{Name: "add", Description: "Add two numbers", Parameters: schema}},
		})

	if len(req.Tools) != 1 {
		t.Fatalf("expected 1 tool, got %d", len(req.Tools))
	}
	tool := req.Tools[0]
	if tool.Type != "function" || tool.Function.Name != "add" || tool.Function.Description != "Add two numbers" {
		t.Errorf("tool = %+v", tool)
	}
	// Tools present with no explicit choice resolves to auto.
	if req.ToolChoice != model.ToolChoiceAuto {
		t.Errorf("tool_choice = %v, want auto", req.ToolChoice)
	}
}

func TestEncodeChatToolChoiceOmittedWithoutTools(t *testing.T) {
	enc := Encoder{}
	req := enc.EncodeChat("m",
		[]model.Message{model.NewTextMessage(model.RoleUser, "hi")},
		EncodeOptions{ToolChoice: "add"})

	if req.ToolChoice != nil {
		t.Errorf("tool_choice must be omitted when no tools are supplied, got %v", req.ToolChoice)
	}
}

func TestEncodeChatSamplingDefaults(t *testing.T) {
	enc := Encoder{DefaultTemperature: f64(0.7), DefaultTopP: f64(0.9)}

	tests := []struct {
		name     string
		opts     EncodeOptions
		wantTemp float64
		wantTopP float64
	}{
		{"defaults apply", EncodeOptions{}, 0.7, 0.9},
		{"per-call overrides", EncodeOptions{Temperature: f64(0.1), TopP: f64(0.2)}, 0.1, 0.2},
		{"partial override", EncodeOptions{Temperature: f64(0.3)}, 0.3, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := enc.EncodeChat("m", []model.Message{model.NewTextMessage(model.RoleUser, "x")}, tt.opts)
			if req.Temperature == nil || *req.Temperature != tt.wantTemp {
				t.Errorf("temperature = %v, want %v", req.Temperature, tt.wantTemp)
			}
			if req.TopP == nil || *req.TopP != tt.wantTopP {
				t.Errorf("top_p = %v, want %v", req.TopP, tt.wantTopP)
			}
		})
	}
}

func TestEncodeCompletionSynthesizesUserMessage(t *testing.T) {
	enc := Encoder{}
	req := enc.EncodeCompletion("m", "What is 2+2?", EncodeOptions{Stream: true})

	if len(req.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(req.Messages))
	}
	if req.Messages[0].Role != model.RoleUser {
		t.Errorf("role = %q, want user", req.Messages[0].Role)
	}
	if *req.Messages[0].Content != "What is 2+2?" {
		t.Errorf("content = %q", *req.Messages[0].Content)
	}
	if !req.Stream {
		t.Error("stream flag not set")
	}
}

func TestResolveToolChoice(t *testing.T) {
	tests := []struct {
		name     string
		choice   any
		required bool
		want     any
	}{
		{"nil not required", nil, false, "auto"},
		{"nil required", nil, true, "required"},
		{"reserved none", "none", true, "none"},
		{"reserved auto", "auto", true, "auto"},
		{"reserved required", "required", false, "required"},
		{"tool name", "add", false, model.ToolChoiceFunction("add")},
		{"structured passthrough", model.ToolChoiceFunction("mul"), true, model.ToolChoiceFunction("mul")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveToolChoice(tt.choice, tt.required)
			if got != tt.want {
				t.Errorf("ResolveToolChoice(%v, %v) = %v, want %v", tt.choice, tt.required, got, tt.want)
			}
		})
	}
}
