package value

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/francoispqt/gojay"
)

// ErrEmptyJSON is returned by [ParseJSON] for blank input.
var ErrEmptyJSON = errors.New("value: empty JSON document")

// ParseJSON decodes a JSON document into dynamic values: objects become
// [*Object] with their key order preserved, arrays become []any, numbers
// float64, and null nil.
func ParseJSON(data []byte) (any, error) {
	return decodeRaw(data)
}

// MarshalJSONObject implements gojay.MarshalerJSONObject, writing keys in
// enumeration order.
func (o *Object) MarshalJSONObject(enc *gojay.Encoder) {
	for _, k := range o.keys {
		raw, err := json.Marshal(o.values[k])
		if err != nil {
			raw = []byte("null")
		}
		embedded := gojay.EmbeddedJSON(raw)
		enc.AddEmbeddedJSONKey(k, &embedded)
	}
}

// IsNil implements gojay.MarshalerJSONObject.
func (o *Object) IsNil() bool { return o == nil }

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject.
func (o *Object) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	v, err := decodeRaw(raw)
	if err != nil {
		return err
	}
	o.Set(key, v)
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject; zero decodes every key.
func (o *Object) NKeys() int { return 0 }

// MarshalJSON implements [json.Marshaler].
func (o *Object) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(o)
}

// UnmarshalJSON implements [json.Unmarshaler], appending decoded keys in
// document order.
func (o *Object) UnmarshalJSON(data []byte) error {
	if o.values == nil {
		o.values = make(map[string]any)
	}
	return gojay.UnmarshalJSONObject(data, o)
}

type jsonArray []any

func (a *jsonArray) UnmarshalJSONArray(dec *gojay.Decoder) error {
	var raw gojay.EmbeddedJSON
	if err := dec.EmbeddedJSON(&raw); err != nil {
		return err
	}
	v, err := decodeRaw(raw)
	if err != nil {
		return err
	}
	*a = append(*a, v)
	return nil
}

func decodeRaw(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyJSON
	}
	switch data[0] {
	case '{':
		o := NewObject()
		if err := gojay.UnmarshalJSONObject(data, o); err != nil {
			return nil, err
		}
		return o, nil
	case '[':
		a := jsonArray{}
		if err := gojay.UnmarshalJSONArray(data, &a); err != nil {
			return nil, err
		}
		return []any(a), nil
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
