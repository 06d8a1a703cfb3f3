package udo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

const jsonCodecName = "json"

// JSONCodec stores a Udo as a JSON object.
//
// Decode accepts string, number and boolean members; numbers and booleans are
// kept in their text form. Null, arrays and nested objects are rejected.
type JSONCodec struct{}

// Name returns "json".
func (JSONCodec) Name() string { return jsonCodecName }

// Encode renders u as an indented JSON object with sorted keys.
func (JSONCodec) Encode(u Udo) (string, error) {
	for k, v := range u {
		if !utf8.ValidString(k) {
			return "", &EncodeError{Codec: jsonCodecName, Err: fmt.Errorf("key %q is not valid UTF-8", k)}
		}
		if !utf8.ValidString(v) {
			return "", &EncodeError{Codec: jsonCodecName, Err: fmt.Errorf("value of %q is not valid UTF-8", k)}
		}
	}
	if u == nil {
		u = Udo{}
	}

	b, err := json.MarshalIndent(map[string]string(u), "", "  ")
	if err != nil {
		return "", &EncodeError{Codec: jsonCodecName, Err: err}
	}
	return string(b), nil
}

// Decode parses text as a single JSON object.
func (JSONCodec) Decode(text string) (Udo, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, &DecodeError{Codec: jsonCodecName, Err: err}
	}
	if raw == nil {
		return nil, &DecodeError{Codec: jsonCodecName, Err: errors.New("document is not an object")}
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return nil, &DecodeError{Codec: jsonCodecName, Err: errors.New("trailing data after object")}
	}

	u := make(Udo, len(raw))
	for k, v := range raw {
		s, err := scalarText(v)
		if err != nil {
			return nil, &DecodeError{Codec: jsonCodecName, Err: fmt.Errorf("member %q: %w", k, err)}
		}
		u[k] = s
	}
	return u, nil
}

func scalarText(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	case bool:
		return strconv.FormatBool(t), nil
	case nil:
		return "", errors.New("null is not a text value")
	default:
		return "", fmt.Errorf("%s is not a text value", jsonKind(v))
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
