package provider

import (
	"github.com/digitalocean/gradientai-go/jsonx"
	"github.com/digitalocean/gradientai-go/model"
)

// ExtractToolCalls pulls the tool invocations out of a message.
//
// The primary path scans the content blocks in order. Only when that yields
// nothing is the flat ToolCalls list consulted; the two representations are
// not substitutable, so the fallback is strictly ordered rather than merged.
// IDs pass through exactly as assigned, even when empty, and arguments go
// through the lenient parser so a nil map comes out empty rather than nil.
//
// With errorOnNone set, a message containing no tool calls at all fails
// with ErrNoToolCalls; otherwise the result is simply empty.
func ExtractToolCalls(msg model.Message, errorOnNone bool) ([]model.ToolCall, error) {
	var calls []model.ToolCall
	for _, blk := range msg.ToolCallBlocks() {
		calls = append(calls, model.ToolCall{
			ID:        blk.ID,
			Name:      blk.Name,
			Arguments: jsonx.ParseArguments(blk.Arguments),
		})
	}
	if len(calls) == 0 {
		for _, tc := range msg.ToolCalls {
			calls = append(calls, model.ToolCall{
				ID:        tc.ID,
				Name:      tc.Name,
				Arguments: jsonx.ParseArguments(tc.Arguments),
			})
		}
	}
	if len(calls) == 0 && errorOnNone {
		return nil, ErrNoToolCalls
	}
	return calls, nil
}

// ValidateParallel enforces the single-tool-call policy. It is a no-op when
// allowParallel is set or the message carries at most one tool call.
// Otherwise only the first tool-call block (in original order) survives;
// every non-tool-call block is preserved, and the flat ToolCalls list is
// trimmed to match. A legacy message carrying its calls only in the flat
// list gets the same first-call trim. Excess calls are dropped without
// error.
func ValidateParallel(msg model.Message, allowParallel bool) model.Message {
	if allowParallel {
		return msg
	}
	if len(msg.ToolCallBlocks()) <= 1 {
		if len(msg.ToolCallBlocks()) == 0 && len(msg.ToolCalls) > 1 {
			out := msg
			out.ToolCalls = msg.ToolCalls[:1]
			return out
		}
		return msg
	}

	out := msg
	out.Blocks = make([]model.Block, 0, len(msg.Blocks))
	kept := false
	for _, blk := range msg.Blocks {
		if _, ok := blk.(model.ToolCallBlock); ok {
			if kept {
				continue
			}
			kept = true
		}
		out.Blocks = append(out.Blocks, blk)
	}
	if len(msg.ToolCalls) > 1 {
		out.ToolCalls = msg.ToolCalls[:1]
	}
	return out
}
