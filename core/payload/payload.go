package payload

import (
	"bytes"
	"encoding/json"
)

// FieldError reports a missing or malformed request body field. Handlers
// map it to a 400 response carrying the message verbatim.
type FieldError string

func (e FieldError) Error() string { return string(e) }

// Parse decodes a JSON request body into a generic map. Numbers are kept as
// json.Number so callers can tell integers and floats apart when applying
// type-checked patches.
func Parse(body []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return m, nil
}

// Int returns the value under key as an int. The second return is false when
// the key is absent, non-numeric, or carries a fractional part.
func Int(m map[string]any, key string) (int, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return asInt(v)
}

// Number returns the value under key as a float64, accepting both integer
// and fractional JSON numbers.
func Number(m map[string]any, key string) (float64, bool) {
	v, ok := m[key]
	if !ok {
		return 0, false
	}
	return asFloat(v)
}

// Bool returns the value under key only when it is a JSON boolean.
func Bool(m map[string]any, key string) (bool, bool) {
	v, ok := m[key]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// String returns the value under key only when it is a JSON string.
func String(m map[string]any, key string) (string, bool) {
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Slice returns the value under key only when it is a JSON array.
func Slice(m map[string]any, key string) ([]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	s, ok := v.([]any)
	return s, ok
}

// Object returns the value under key only when it is a JSON object.
func Object(m map[string]any, key string) (map[string]any, bool) {
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	o, ok := v.(map[string]any)
	return o, ok
}

// AsInt converts a decoded JSON value to an int, rejecting fractional
// numbers. It accepts native ints so callers can feed test fixtures
// directly.
func AsInt(v any) (int, bool) {
	return asInt(v)
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int64(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return f, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
