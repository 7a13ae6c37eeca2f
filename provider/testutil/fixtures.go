package testutil

import (
	"fmt"

	"github.com/digitalocean/gradientai-go/model"
)

// Conversation returns a sample multi-turn conversation for testing.
func Conversation() []model.Message {
	return []model.Message{
		model.NewTextMessage(model.RoleSystem, "You are helpful."),
		model.NewTextMessage(model.RoleUser, "Hello, how are you?"),
		model.NewTextMessage(model.RoleAssistant, "I'm doing well, thank you!"),
		model.NewTextMessage(model.RoleUser, "Can you help me with a task?"),
	}
}

// SingleUserMessage returns a one-message conversation for simple tests.
func SingleUserMessage(content string) []model.Message {
	return []model.Message{model.NewTextMessage(model.RoleUser, content)}
}

// WeatherTool returns a sample tool spec for testing.
func WeatherTool() model.ToolSpec {
	return model.ToolSpec{
		Name:        "get_weather",
		Description: "Get the current weather for a location",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"location": map[string]any{
					"type":        "string",
					"description": "The city and state, e.g. San Francisco, CA",
				},
			},
			"required": []string{"location"},
		},
	}
}

// TextResponseBody returns a complete response body carrying text content.
func TextResponseBody(content string) []byte {
	return fmt.Appendf(nil, `{"choices":[{"message":{"role":"assistant","content":%q}}]}`, content)
}

// ToolCallResponseBody returns a complete response body carrying one tool
// call with string-encoded arguments.
func ToolCallResponseBody(id, name, arguments string) []byte {
	return fmt.Appendf(nil,
		`{"choices":[{"message":{"role":"assistant","content":null,"tool_calls":[{"id":%q,"function":{"name":%q,"arguments":%q}}]}}]}`,
		id, name, arguments)
}

// ChunkBody returns one streaming chunk carrying delta text.
func ChunkBody(delta string) []byte {
	return fmt.Appendf(nil, `{"choices":[{"delta":{"content":%q}}]}`, delta)
}
