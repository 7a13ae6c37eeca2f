package wire

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/digitalocean/gradientai-go/jsonx"
	"github.com/digitalocean/gradientai-go/model"
)

// doc is a decoded-once view of one wire node. Responses reach the adapter
// either as structured values or as loose key-value mappings, and the origin
// protocol mode is not observable here, so every field read goes through
// this one shape-agnostic accessor instead of per-call-site branching.
type doc struct {
	m    map[string]any
	json gjson.Result
}

// docOf normalizes a wire node into a doc. Maps are used directly; raw JSON
// is parsed with gjson; any other value (a transport SDK struct, say) is
// marshaled once and then treated as JSON. The second return is false when
// the value has no object shape at all.
func docOf(v any) (doc, bool) {
	switch t := v.(type) {
	case nil:
		return doc{}, false
	case doc:
		return t, true
	case map[string]any:
		if t == nil {
			return doc{}, false
		}
		return doc{m: t}, true
	case json.RawMessage:
		return docOfJSON(gjson.ParseBytes(t))
	case []byte:
		return docOfJSON(gjson.ParseBytes(t))
	case string:
		return docOfJSON(gjson.Parse(t))
	case gjson.Result:
		return docOfJSON(t)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return doc{}, false
		}
		return docOfJSON(gjson.ParseBytes(b))
	}
}

func docOfJSON(r gjson.Result) (doc, bool) {
	if !r.IsObject() {
		return doc{}, false
	}
	return doc{json: r}, true
}

// field reads one named field. ok is the absence sentinel: false when the
// field does not exist under either shape.
func (d doc) field(key string) (any, bool) {
	if d.m != nil {
		v, ok := d.m[key]
		return v, ok
	}
	r := d.json.Get(key)
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

func (d doc) stringField(key string) string {
	v, ok := d.field(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func (d doc) arrayField(key string) []any {
	v, ok := d.field(key)
	if !ok {
		return nil
	}
	if arr, ok := v.([]any); ok {
		return arr
	}
	// A mapping shape can hold typed slices ([]map[string]any, say);
	// reparse them generically rather than dropping the field.
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	arr, _ := gjson.ParseBytes(b).Value().([]any)
	return arr
}

func (d doc) docField(key string) (doc, bool) {
	v, ok := d.field(key)
	if !ok {
		return doc{}, false
	}
	return docOf(v)
}

// DecodeMessage converts one wire message of either shape into a canonical
// message. It never fails: the role defaults to assistant when absent,
// tool-call IDs default to the empty string, arguments go through the
// lenient parser, and a value matching neither shape decodes to an
// empty-content, block-less message. Tolerating partial or malformed vendor
// responses is the whole point of this layer.
func DecodeMessage(raw any) model.Message {
	msg := model.Message{Role: model.RoleAssistant}

	d, ok := docOf(raw)
	if !ok {
		return msg
	}

	if role := d.stringField("role"); role != "" {
		msg.Role = role
	}
	if content := d.stringField("content"); content != "" {
		msg.Content = content
		msg.Blocks = append(msg.Blocks, model.TextBlock{Text: content})
	}

	for _, entry := range d.arrayField("tool_calls") {
		td, ok := docOf(entry)
		if !ok {
			continue
		}
		blk := model.ToolCallBlock{
			ID:        td.stringField("id"),
			Arguments: map[string]any{},
		}
		if fn, ok := td.docField("function"); ok {
			blk.Name = fn.stringField("name")
			// Arguments are never assumed pre-parsed: a string is parsed
			// (with repair if truncated) and a map passes through.
			args, _ := fn.field("arguments")
			blk.Arguments = jsonx.ParseArguments(args)
		}
		msg.Blocks = append(msg.Blocks, blk)
		msg.ToolCalls = append(msg.ToolCalls, model.ToolCall(blk))
	}
	return msg
}

// DecodeResponseMessage extracts choices[0].message from a complete response
// body and decodes it. A body with no usable choice decodes to an empty
// assistant message.
func DecodeResponseMessage(raw any) model.Message {
	d, ok := docOf(raw)
	if !ok {
		return model.Message{Role: model.RoleAssistant}
	}
	choices := d.arrayField("choices")
	if len(choices) == 0 {
		return model.Message{Role: model.RoleAssistant}
	}
	choice, ok := docOf(choices[0])
	if !ok {
		return model.Message{Role: model.RoleAssistant}
	}
	m, _ := choice.field("message")
	return DecodeMessage(m)
}

// DecodeChunkDelta extracts the text delta from one streaming chunk,
// reading choices[0].delta.content under either shape. A malformed chunk
// yields an empty delta, never an error; one bad chunk must not abort an
// otherwise good stream.
func DecodeChunkDelta(raw any) string {
	d, ok := docOf(raw)
	if !ok {
		return ""
	}
	choices := d.arrayField("choices")
	if len(choices) == 0 {
		return ""
	}
	choice, ok := docOf(choices[0])
	if !ok {
		return ""
	}
	delta, ok := choice.docField("delta")
	if !ok {
		return ""
	}
	return delta.stringField("content")
}
