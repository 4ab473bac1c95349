package gateway

import (
	"bytes"
	"encoding/json"
)

// Result is the payload of a successful call. The zero Result is the null
// outcome of a 204.
type Result struct {
	raw      json.RawMessage
	endpoint string
}

// IsNull reports whether the call produced no payload (204) or a JSON null.
func (r Result) IsNull() bool {
	trimmed := bytes.TrimSpace(r.raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Raw returns the undecoded payload, nil for a 204.
func (r Result) Raw() json.RawMessage { return r.raw }

// Decode unmarshals the payload into v. A null Result leaves v untouched.
func (r Result) Decode(v any) error {
	if r.IsNull() {
		return nil
	}
	if err := json.Unmarshal(r.raw, v); err != nil {
		return &DecodeError{Endpoint: r.endpoint, Err: err}
	}
	return nil
}

// Value decodes the payload into generic JSON values (map[string]any,
// []any, float64, string, bool or nil).
func (r Result) Value() (any, error) {
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeAs decodes a Result into a fresh T.
func DecodeAs[T any](r Result) (T, error) {
	var v T
	err := r.Decode(&v)
	return v, err
}
