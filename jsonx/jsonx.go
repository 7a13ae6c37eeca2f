// Package jsonx parses tool-call argument payloads leniently.
//
// Models emit arguments as a JSON object, but during streaming the string is
// frequently truncated mid-token, and some endpoints hand arguments over
// pre-parsed as a map. ParseArguments accepts all of those shapes and always
// produces a usable map: robustness outranks strictness here, so a payload
// that cannot be recovered degrades to an empty map instead of an error.
package jsonx

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseArguments converts a tool-call argument value into a map.
//
// A map passes through unchanged. A complete JSON string is parsed strictly.
// An incomplete string is run through Repair first, keeping the longest valid
// prefix. Anything unparseable yields an empty map, never an error.
func ParseArguments(v any) map[string]any {
	switch args := v.(type) {
	case nil:
		return map[string]any{}
	case map[string]any:
		if args == nil {
			return map[string]any{}
		}
		return args
	case string:
		return parseArgumentString(args)
	case []byte:
		return parseArgumentString(string(args))
	case json.RawMessage:
		return parseArgumentString(string(args))
	default:
		return map[string]any{}
	}
}

func parseArgumentString(s string) map[string]any {
	s = strings.TrimSpace(s)
	if s == "" {
		return map[string]any{}
	}
	if !gjson.Valid(s) {
		s = Repair(s)
	}
	var args map[string]any
	if err := json.Unmarshal([]byte(s), &args); err != nil || args == nil {
		return map[string]any{}
	}
	return args
}

// Repair completes a truncated JSON document by closing any unterminated
// string and any open objects or arrays. When the tail of the input cannot
// be completed (a dangling key, a half-written literal), the tail is trimmed
// until the remainder validates, so the longest valid prefix survives.
// Input that cannot be recovered at all repairs to "{}".
func Repair(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "{}"
	}
	if gjson.Valid(s) {
		return s
	}
	for len(s) > 0 {
		if candidate := s + closers(s); gjson.Valid(candidate) {
			return candidate
		}
		s = strings.TrimRight(s[:len(s)-1], " \t\r\n")
	}
	return "{}"
}

// closers returns the characters needed to terminate every construct still
// open at the end of s: a quote for an unterminated string, then one closing
// bracket per open object or array, innermost first.
func closers(s string) string {
	var stack []byte
	inString, escaped := false, false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			if escaped {
				escaped = false
				continue
			}
			switch c {
			case '\\':
				escaped = true
			case '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, c)
		case '}', ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var b strings.Builder
	if inString {
		b.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			b.WriteByte('}')
		} else {
			b.WriteByte(']')
		}
	}
	return b.String()
}
