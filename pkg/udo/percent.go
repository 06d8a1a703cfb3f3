package udo

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const percentCodecName = "percent"

// PercentCodec stores a Udo as percent-encoded key=value pairs joined by '&',
// e.g. "a=1&b=hello+world". This is the legacy on-disk format; it is kept for
// reading files written before the switch to JSON.
//
// Decode is strict: every pair must contain '=' and a non-empty key, escapes
// must be valid and keys must not repeat.
type PercentCodec struct{}

// Name returns "percent".
func (PercentCodec) Name() string { return percentCodecName }

// Encode renders u as pairs in ascending key order.
func (PercentCodec) Encode(u Udo) (string, error) {
	pairs := make([]string, 0, len(u))
	for _, k := range u.Keys() {
		if k == "" {
			return "", &EncodeError{Codec: percentCodecName, Err: errors.New("empty key")}
		}
		pairs = append(pairs, url.QueryEscape(k)+"="+url.QueryEscape(u[k]))
	}
	return strings.Join(pairs, "&"), nil
}

// Decode parses percent-encoded pairs.
func (PercentCodec) Decode(text string) (Udo, error) {
	if text == "" {
		return nil, &DecodeError{Codec: percentCodecName, Err: errors.New("empty input")}
	}

	u := Udo{}
	for i, pair := range strings.Split(text, "&") {
		rawKey, rawValue, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, &DecodeError{Codec: percentCodecName, Err: fmt.Errorf("pair %d has no '='", i)}
		}
		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, &DecodeError{Codec: percentCodecName, Err: fmt.Errorf("pair %d key: %w", i, err)}
		}
		if key == "" {
			return nil, &DecodeError{Codec: percentCodecName, Err: fmt.Errorf("pair %d has an empty key", i)}
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, &DecodeError{Codec: percentCodecName, Err: fmt.Errorf("pair %d value: %w", i, err)}
		}
		if _, dup := u[key]; dup {
			return nil, &DecodeError{Codec: percentCodecName, Err: fmt.Errorf("duplicate key %q", key)}
		}
		u[key] = value
	}
	return u, nil
}
