package remote

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelopeKeys are the wrapper fields the authority has been seen to use.
var envelopeKeys = []string{"content", "data", "items"}

// unwrapList returns the elements of a list response. It accepts a bare array,
// or an object wrapping one under any of envelopeKeys or extra (nested
// envelopes are followed). A null or empty body is an empty list.
func unwrapList(raw []byte, extra ...string) ([]json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	switch raw[0] {
	case '[':
		var out []json.RawMessage
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("decode list: %w", err)
		}
		return out, nil
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
		keys := append(append([]string(nil), extra...), envelopeKeys...)
		for _, key := range keys {
			if inner, ok := obj[key]; ok {
				return unwrapList(inner, extra...)
			}
		}
		return nil, fmt.Errorf("decode list: object has none of %v", keys)
	default:
		return nil, fmt.Errorf("decode list: unexpected body %.32q", raw)
	}
}

// unwrapObject returns the single object of an object response, unwrapping
// one envelope level when the body is {"data": {...}} or similar.
func unwrapObject(raw []byte) (json.RawMessage, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}
	if raw[0] != '{' {
		return nil, fmt.Errorf("decode object: unexpected body %.32q", raw)
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("decode object: %w", err)
	}
	for _, key := range envelopeKeys {
		if inner, ok := obj[key]; ok {
			inner = bytes.TrimSpace(inner)
			if len(inner) > 0 && inner[0] == '{' {
				return inner, nil
			}
		}
	}
	return raw, nil
}

// decodeEmbedded decodes a field that may hold either a JSON value or a string
// containing the JSON-encoded value.
func decodeEmbedded(raw json.RawMessage, out any) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		if len(bytes.TrimSpace([]byte(s))) == 0 {
			return nil
		}
		return json.Unmarshal([]byte(s), out)
	}
	return json.Unmarshal(raw, out)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
