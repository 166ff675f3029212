// Package response turns raw model output text into a parsed JSON value.
// Models frequently wrap their JSON in Markdown code fences or a sentence
// of prose even when told not to; extraction handles both before giving up.
package response

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// braceBlock matches the first '{' through the last '}' including newlines.
var braceBlock = regexp.MustCompile(`(?s)\{.*\}`)

// StripFences removes a leading Markdown code fence pair from text.
// A "```json" fence is preferred over a bare "```" fence; text without a
// fence passes through trimmed. An unterminated fence keeps the remainder.
func StripFences(text string) string {
	if _, after, ok := strings.Cut(text, "```json"); ok {
		if body, _, closed := strings.Cut(after, "```"); closed {
			return strings.TrimSpace(body)
		}
		return strings.TrimSpace(after)
	}
	if _, after, ok := strings.Cut(text, "```"); ok {
		if body, _, closed := strings.Cut(after, "```"); closed {
			return strings.TrimSpace(body)
		}
		return strings.TrimSpace(after)
	}
	return strings.TrimSpace(text)
}

// Extract parses model output text into a JSON value. It strips fencing,
// attempts a direct parse, then falls back to the first {...} block found
// in the text. The returned error carries the parser's message so callers
// can surface it alongside the raw text.
func Extract(text string) (any, error) {
	candidate := StripFences(text)

	var v any
	directErr := json.Unmarshal([]byte(candidate), &v)
	if directErr == nil {
		return v, nil
	}

	if block := braceBlock.FindString(candidate); block != "" {
		if err := json.Unmarshal([]byte(block), &v); err == nil {
			return v, nil
		}
	}

	return nil, fmt.Errorf("no parsable JSON in model output: %w", directErr)
}
