package mcptool

import (
	"reflect"
	"testing"

	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"github.com/digitalocean/gradientai-go/model"
)

func TestFromMCPTools(t *testing.T) {
	tests := []struct {
		name     string
		input    []mcptypes.Tool
		expected int // expected spec count
		validate func(t *testing.T, result []model.ToolSpec)
	}{
		{
			name:     "empty tools",
			input:    []mcptypes.Tool{},
			expected: 0,
			validate: func(t *testing.T, result []model.ToolSpec) {
				if result != nil {
					t.Errorf("expected nil, got %d specs", len(result))
				}
			},
		},
		{
			name: "single simple tool",
			input: []mcptypes.Tool{
				{
					Name:        "get_weather",
					Description: "Get current weather",
					InputSchema: mcptypes.ToolInputSchema{
						Type:       "object",
						Properties: map[string]any{},
						Required:   []string{},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []model.ToolSpec) {
				if result[0].Name != "get_weather" {
					t.Errorf("expected name 'get_weather', got %q", result[0].Name)
				}
				if result[0].Description != "Get current weather" {
					t.Errorf("expected description 'Get current weather', got %q", result[0].Description)
				}
				if result[0].Parameters["type"] != "object" {
					t.Errorf("expected parameters type 'object', got %v", result[0].Parameters["type"])
				}
				if _, ok := result[0].Parameters["required"]; ok {
					t.Error("empty required list should be omitted")
				}
			},
		},
		{
			name: "tool with properties and required",
			input: []mcptypes.Tool{
				{
					Name:        "calculate",
					Description: "Perform calculation",
					InputSchema: mcptypes.ToolInputSchema{
						Type: "object",
						Properties: map[string]any{
							"operation": map[string]any{
								"type":        "string",
								"description": "The operation to perform",
								"enum":        []any{"add", "subtract", "multiply", "divide"},
							},
							"a": map[string]any{
								"type":        "number",
								"description": "First operand",
							},
							"b": map[string]any{
								"type":        "number",
								"description": "Second operand",
							},
						},
						Required: []string{"operation", "a", "b"},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []model.ToolSpec) {
				params := result[0].Parameters
				props, ok := params["properties"].(map[string]any)
				if !ok {
					t.Fatalf("properties has type %T", params["properties"])
				}
				if len(props) != 3 {
					t.Errorf("expected 3 properties, got %d", len(props))
				}
				required, ok := params["required"].([]string)
				if !ok || len(required) != 3 {
					t.Errorf("expected 3 required fields, got %v", params["required"])
				}

				// The property schemas pass through untouched.
				opProp, ok := props["operation"].(map[string]any)
				if !ok {
					t.Fatal("operation property not found")
				}
				if opProp["description"] != "The operation to perform" {
					t.Errorf("operation description mismatch")
				}
			},
		},
		{
			name: "tool with $defs",
			input: []mcptypes.Tool{
				{
					Name: "create_item",
					InputSchema: mcptypes.ToolInputSchema{
						Type: "object",
						Properties: map[string]any{
							"item": map[string]any{"$ref": "#/$defs/Item"},
						},
						Defs: map[string]any{
							"Item": map[string]any{"type": "object"},
						},
					},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []model.ToolSpec) {
				defs, ok := result[0].Parameters["$defs"].(map[string]any)
				if !ok {
					t.Fatalf("$defs has type %T", result[0].Parameters["$defs"])
				}
				if _, ok := defs["Item"]; !ok {
					t.Error("Item definition not carried over")
				}
			},
		},
		{
			name: "schema with empty type defaults to object",
			input: []mcptypes.Tool{
				{
					Name:        "ping",
					InputSchema: mcptypes.ToolInputSchema{},
				},
			},
			expected: 1,
			validate: func(t *testing.T, result []model.ToolSpec) {
				if result[0].Parameters["type"] != "object" {
					t.Errorf("expected type 'object', got %v", result[0].Parameters["type"])
				}
				props, ok := result[0].Parameters["properties"].(map[string]any)
				if !ok || len(props) != 0 {
					t.Errorf("expected empty properties map, got %v", result[0].Parameters["properties"])
				}
			},
		},
		{
			name: "multiple tools preserve order",
			input: []mcptypes.Tool{
				{Name: "tool1", Description: "First tool"},
				{Name: "tool2", Description: "Second tool"},
			},
			expected: 2,
			validate: func(t *testing.T, result []model.ToolSpec) {
				if result[0].Name != "tool1" {
					t.Errorf("first tool name mismatch")
				}
				if result[1].Name != "tool2" {
					t.Errorf("second tool name mismatch")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FromMCPTools(tt.input)

			if len(result) != tt.expected {
				t.Fatalf("expected %d specs, got %d", tt.expected, len(result))
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestCallToMCPRequest(t *testing.T) {
	tests := []struct {
		name         string
		input        model.ToolCall
		expectedName string
		expectedArgs map[string]any
	}{
		{
			name: "simple tool call",
			input: model.ToolCall{
				ID:   "call_1",
				Name: "get_weather",
				Arguments: map[string]any{
					"city": "San Francisco",
				},
			},
			expectedName: "get_weather",
			expectedArgs: map[string]any{
				"city": "San Francisco",
			},
		},
		{
			name: "tool call with multiple arguments",
			input: model.ToolCall{
				Name: "calculate",
				Arguments: map[string]any{
					"operation": "add",
					"a":         float64(5),
					"b":         float64(3),
				},
			},
			expectedName: "calculate",
			expectedArgs: map[string]any{
				"operation": "add",
				"a":         float64(5),
				"b":         float64(3),
			},
		},
		{
			name:         "nil arguments become empty map",
			input:        model.ToolCall{Name: "ping"},
			expectedName: "ping",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, args := CallToMCPRequest(tt.input)

			if name != tt.expectedName {
				t.Errorf("expected name %q, got %q", tt.expectedName, name)
			}
			if args == nil {
				t.Fatal("arguments must never be nil")
			}
			if !reflect.DeepEqual(args, tt.expectedArgs) {
				t.Errorf("expected arguments %v, got %v", tt.expectedArgs, args)
			}
		})
	}
}

func TestCallRequest(t *testing.T) {
	req := CallRequest(model.ToolCall{
		ID:        "call_7",
		Name:      "search_files",
		Arguments: map[string]any{"pattern": "*.go"},
	})

	if req.Params.Name != "search_files" {
		t.Errorf("expected name 'search_files', got %q", req.Params.Name)
	}
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		t.Fatalf("arguments have type %T", req.Params.Arguments)
	}
	if args["pattern"] != "*.go" {
		t.Errorf("expected pattern '*.go', got %v", args["pattern"])
	}
}
