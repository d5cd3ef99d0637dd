package api

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/mitchellh/mapstructure"
)

// fallbackErrorMessage is used when a failed response has neither an error
// object nor a body.
const fallbackErrorMessage = "Request failed"

// envelope is a received response. The backend wraps successful payloads as
// {"data": ...} and failures as {"error": {"code": ..., "message": ...}}, but
// neither shape is guaranteed.
type envelope struct {
	status int
	body   []byte
	doc    any
	valid  bool
}

func newEnvelope(status int, body []byte) *envelope {
	env := &envelope{status: status, body: body}
	if err := json.Unmarshal(body, &env.doc); err == nil {
		env.valid = true
	}
	return env
}

// payload returns the value under "data" when the body is an object carrying
// that key, otherwise the parsed body itself. It is nil for unparseable bodies.
func (e *envelope) payload() any {
	if !e.valid {
		return nil
	}
	if _, ok := e.doc.(map[string]any); ok {
		if data, err := jsonpath.Get("$.data", e.doc); err == nil {
			return data
		}
	}
	return e.doc
}

// object returns the payload when it is a JSON object.
func (e *envelope) object() (map[string]any, bool) {
	obj, ok := e.payload().(map[string]any)
	return obj, ok
}

// errorMessage extracts the human-readable failure reason: error.message, the
// error object itself when it has no message, the raw body, or a fixed fallback.
func (e *envelope) errorMessage() string {
	if e.valid {
		if _, ok := e.doc.(map[string]any); ok {
			if errObj, err := jsonpath.Get("$.error", e.doc); err == nil {
				if _, isObj := errObj.(map[string]any); isObj {
					if msg, err := jsonpath.Get("$.error.message", e.doc); err == nil && msg != nil {
						return stringify(msg)
					}
					return stringify(errObj)
				}
			}
		}
	}
	if len(e.body) > 0 {
		return string(e.body)
	}
	return fallbackErrorMessage
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(raw)
}

// field returns obj[key] using the same probing as the envelope.
func field(obj map[string]any, key string) (any, bool) {
	v, err := jsonpath.Get("$."+key, obj)
	if err != nil {
		return nil, false
	}
	return v, true
}

// decode maps a loosely typed JSON value onto out. Missing keys keep their zero
// value and numeric strings are accepted.
func decode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

// decodeList decodes every object element of raw into T, skipping elements
// that are not objects or do not fit. A nil or non-list raw yields an empty slice.
func decodeList[T any](raw any) []T {
	items, _ := raw.([]any)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if _, ok := item.(map[string]any); !ok {
			continue
		}
		var v T
		if err := decode(item, &v); err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
