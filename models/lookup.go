package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// Field is one key/value pair of a lookup response, with the value already
// rendered as display text.
type Field struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// LookupResult holds the fields of a successful lookup in response order
type LookupResult struct {
	Fields []Field `json:"fields"`
}

var errNotObject = errors.New("response body is not a JSON object")

// ParseLookupResult decodes a JSON object into a LookupResult, keeping keys in
// the order they appear. A repeated key keeps its first position and its last value.
func ParseLookupResult(body []byte) (*LookupResult, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errNotObject
	}

	result := &LookupResult{Fields: make([]Field, 0, 8)}
	index := make(map[string]int)

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("failed to read key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected key token %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to read value for %q: %w", key, err)
		}

		value, err := renderValue(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to render value for %q: %w", key, err)
		}

		if i, seen := index[key]; seen {
			result.Fields[i].Value = value
			continue
		}
		index[key] = len(result.Fields)
		result.Fields = append(result.Fields, Field{Key: key, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("failed to read end of object: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after response object")
	}

	return result, nil
}

// renderValue turns a raw JSON value into display text. Scalars render as
// their literal text; nested objects and arrays render as compact JSON.
func renderValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	// numbers, true, false, null
	return string(trimmed), nil
}

// Lines renders one "Key: value" line per field
func (r *LookupResult) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, len(r.Fields))
	for _, f := range r.Fields {
		lines = append(lines, DisplayKey(f.Key)+": "+f.Value)
	}
	return lines
}

// Len returns the number of fields
func (r *LookupResult) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Fields)
}

// DisplayKey upper-cases the first character of key and leaves the rest alone
func DisplayKey(key string) string {
	first, size := utf8.DecodeRuneInString(key)
	if first == utf8.RuneError {
		return key
	}
	return string(unicode.ToUpper(first)) + key[size:]
}
