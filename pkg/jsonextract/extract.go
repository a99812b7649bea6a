// Package jsonextract pulls a JSON object out of free-form model output.
//
// Models are asked for JSON but routinely wrap it in prose or markdown fences,
// so the text is treated as untrusted: the first balanced {...} object is
// parsed, and callers get either the decoded value or their fallback through
// the same Result type.
package jsonextract

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoText      = errors.New("model returned no text")
	ErrNoJSON      = errors.New("no JSON object found in model output")
	ErrInvalidJSON = errors.New("model output contains invalid JSON")
)

// Result carries a decoded value, or the fallback that replaced it
type Result[T any] struct {
	Value T
	// Raw is the extracted object as it appeared in the text, or the
	// marshalled fallback.
	Raw      json.RawMessage
	Fallback bool
	// Reason is why the fallback was used; nil otherwise.
	Reason error
}

// Extract returns the first balanced JSON object in text. Braces inside
// string literals are ignored.
func Extract(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}

	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", ErrNoJSON
	}
	end := matchingBrace(text, start)
	if end < 0 {
		return "", ErrNoJSON
	}
	return text[start : end+1], nil
}

// Decode extracts and unmarshals the first JSON object in text into T
func Decode[T any](text string) (T, json.RawMessage, error) {
	var v T

	span, err := Extract(text)
	if err != nil {
		return v, nil, err
	}
	if err := json.Unmarshal([]byte(span), &v); err != nil {
		return v, nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return v, json.RawMessage(span), nil
}

// ParseOrDefault decodes T from text and runs validate on it. Any failure,
// including validation, yields fallback() instead. It never returns an error.
func ParseOrDefault[T any](text string, validate func(*T) error, fallback func() T) Result[T] {
	v, raw, err := Decode[T](text)
	if err == nil && validate != nil {
		err = validate(&v)
	}
	if err == nil {
		return Result[T]{Value: v, Raw: raw}
	}

	fb := fallback()
	fbRaw, mErr := json.Marshal(fb)
	if mErr != nil {
		fbRaw = nil
	}
	return Result[T]{Value: fb, Raw: fbRaw, Fallback: true, Reason: err}
}

// matchingBrace returns the index of the '}' closing the '{' at start, or -1
func matchingBrace(text string, start int) int {
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		c := text[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
