// Package udo defines the universal data object (UDO) and the text codecs used
// to persist it.
//
// A [Udo] is a flat mapping from text keys to text values. Two codecs are
// provided:
//
//   - [JSONCodec]: the current format, a JSON object. Used for all writes.
//   - [PercentCodec]: the legacy format, percent-encoded key=value pairs
//     joined by '&'. Accepted on read for backward compatibility.
//
// # Usage
//
//	text, err := udo.JSON.Encode(udo.Udo{"a": "1"})
//	if err != nil {
//	    return err
//	}
//
//	u, err := udo.Percent.Decode("a=1&b=2")
//	if errors.Is(err, udo.ErrDecode) {
//	    // not valid percent-encoded text
//	}
//
// # Version
//
// Current version: 1.0.0
// Minimum compatible version: 1.0.0
//
// See version.go for version constants that can be used programmatically.
package udo
