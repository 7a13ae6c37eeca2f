// Package mcptool bridges MCP tool definitions and the canonical tool
// model, so tools discovered over MCP can be offered to the inference
// endpoint and its tool calls routed back to MCP servers.
package mcptool

import (
	mcptypes "github.com/mark3labs/mcp-go/mcp"

	"github.com/digitalocean/gradientai-go/model"
)

// FromMCPTools converts MCP tool definitions to tool specs accepted by
// the chat encoder.
func FromMCPTools(mcpTools []mcptypes.Tool) []model.ToolSpec {
	if len(mcpTools) == 0 {
		return nil
	}

	specs := make([]model.ToolSpec, len(mcpTools))
	for i, tool := range mcpTools {
		specs[i] = FromMCPTool(tool)
	}
	return specs
}

// FromMCPTool converts a single MCP tool definition. Both sides carry
// JSON Schema, so the input schema struct flattens into the parameters
// map as-is.
func FromMCPTool(tool mcptypes.Tool) model.ToolSpec {
	params := map[string]any{
		"type":       tool.InputSchema.Type,
		"properties": tool.InputSchema.Properties,
	}
	if params["type"] == "" {
		params["type"] = "object"
	}
	if params["properties"] == nil {
		params["properties"] = map[string]any{}
	}

	if len(tool.InputSchema.Required) > 0 {
		params["required"] = tool.InputSchema.Required
	}

	if tool.InputSchema.Defs != nil {
		params["$defs"] = tool.InputSchema.Defs
	}

	return model.ToolSpec{
		Name:        tool.Name,
		Description: tool.Description,
		Parameters:  params,
	}
}

// CallToMCPRequest maps a decoded tool call onto the name/arguments pair
// an MCP client call expects. Arguments are already a map after decoding;
// a nil map becomes an empty one so the MCP request is always well formed.
func CallToMCPRequest(call model.ToolCall) (string, map[string]any) {
	args := call.Arguments
	if args == nil {
		args = map[string]any{}
	}
	return call.Name, args
}

// CallRequest builds a complete MCP CallToolRequest from a decoded tool
// call, for callers talking to an MCP client directly.
func CallRequest(call model.ToolCall) mcptypes.CallToolRequest {
	name, args := CallToMCPRequest(call)
	return mcptypes.CallToolRequest{
		Params: mcptypes.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}
