package dpapi

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// EncodeEnvelope wraps a request body under the resource collection's
// envelope key, producing the wire shape {"creditors": {...}}.
func EncodeEnvelope(key string, body any) map[string]any {
	return map[string]any{key: body}
}

// DecodeResource unwraps a single-object envelope response into T.
// A missing key or a wrapped value that is not an object fails with an
// *EnvelopeError.
func DecodeResource[T any](raw []byte, key string) (*T, error) {
	inner, err := envelopeValue(raw, key)
	if err != nil {
		return nil, err
	}

	if firstByte(inner) != '{' {
		return nil, &EnvelopeError{Envelope: key, Reason: "expected a single object"}
	}

	var resource T
	if err := json.Unmarshal(inner, &resource); err != nil {
		return nil, &EnvelopeError{Envelope: key, Reason: "decoding resource: " + err.Error()}
	}

	return &resource, nil
}

// DecodeList unwraps an array-with-metadata envelope response into one
// page of T. The wrapped value must be an array; the sibling "meta"
// block carries the continuation cursors and the applied limit.
func DecodeList[T any](raw []byte, key string) (*Page[T], error) {
	inner, err := envelopeValue(raw, key)
	if err != nil {
		return nil, err
	}

	if firstByte(inner) != '[' {
		return nil, &EnvelopeError{Envelope: key, Reason: "expected an array of resources"}
	}

	page := &Page[T]{}
	if err := json.Unmarshal(inner, &page.Items); err != nil {
		return nil, &EnvelopeError{Envelope: key, Reason: "decoding resources: " + err.Error()}
	}

	var wire struct {
		Meta *ListMeta `json:"meta"`
	}

	if err := json.Unmarshal(raw, &wire); err == nil && wire.Meta != nil {
		page.Meta = *wire.Meta
	}

	return page, nil
}

func envelopeValue(raw []byte, key string) (json.RawMessage, error) {
	var wire map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, &EnvelopeError{Envelope: key, Reason: "response is not a JSON object"}
	}

	inner, ok := wire[key]
	if !ok {
		return nil, &EnvelopeError{Envelope: key, Reason: "envelope key missing"}
	}

	return inner, nil
}

func firstByte(raw json.RawMessage) byte {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return 0
	}

	return trimmed[0]
}
