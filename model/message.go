// Package model defines the provider-agnostic chat types shared by every
// other package in this module.
//
// A Message is the canonical representation of one chat turn, independent of
// the wire format spoken by the inference endpoint. Messages are built either
// from an ordered list of content blocks (TextBlock, ToolCallBlock) or, for
// older callers, from a flat Content string plus an auxiliary ToolCalls list.
// Both shapes encode to identical wire output when they carry the same data.
//
// Messages are created by the caller (outbound) or by the wire decoder
// (inbound) and are treated as immutable once handed over.
package model

import "strings"

// Chat roles understood by the inference endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Block is a typed fragment of a message payload: text or a tool invocation.
type Block interface {
	block()
}

// TextBlock carries a fragment of user- or assistant-visible text.
type TextBlock struct {
	Text string
}

func (TextBlock) block() {}

// ToolCallBlock carries a model-initiated request to invoke a tool. ID is
// preserved exactly as assigned, even when empty.
type ToolCallBlock struct {
	ID        string
	Name      string
	Arguments map[string]any
}

func (ToolCallBlock) block() {}

// ToolCall is the flat representation of a tool invocation, used by the
// auxiliary Message.ToolCalls list and returned by tool-call extraction.
type ToolCall struct {
	ID        string
	Name      string
	Arguments map[string]any
}

// Message represents a chat message in the conversation.
//
// Blocks is the primary payload. Content and ToolCalls exist for callers
// still on the flat representation; they are only consulted when Blocks is
// empty.
type Message struct {
	Role      string
	Blocks    []Block
	Content   string
	ToolCalls []ToolCall
}

// NewTextMessage builds a single-text-block message.
func NewTextMessage(role, text string) Message {
	return Message{Role: role, Blocks: []Block{TextBlock{Text: text}}}
}

// Text returns the concatenation, in block order, of all text-block text.
// When the message has no blocks at all it falls back to the flat Content
// field.
func (m Message) Text() string {
	if len(m.Blocks) == 0 {
		return m.Content
	}
	var b strings.Builder
	for _, blk := range m.Blocks {
		if t, ok := blk.(TextBlock); ok {
			b.WriteString(t.Text)
		}
	}
	return b.String()
}

// ToolCallBlocks returns the tool-call blocks of the message in order.
func (m Message) ToolCallBlocks() []ToolCallBlock {
	var calls []ToolCallBlock
	for _, blk := range m.Blocks {
		if c, ok := blk.(ToolCallBlock); ok {
			calls = append(calls, c)
		}
	}
	return calls
}
